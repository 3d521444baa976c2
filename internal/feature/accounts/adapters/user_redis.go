package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"nexuscare_backend/internal/feature/accounts/domain/entity"
	"nexuscare_backend/internal/feature/accounts/usecase"
)

// userRedis is the key-value implementation of usecase.UserRepository.
// Each user is stored as a JSON document keyed by normalized email.
//
// The legacy deployment probed GET before PUT, leaving a race window under
// concurrent identical-email signups. Create uses SETNX instead so the
// existence check and the insert are a single atomic operation.
type userRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.UserRepository = (*userRedis)(nil)

// NewUserRedis creates a userRedis with the given key prefix.
func NewUserRedis(client *redis.Client, prefix string) *userRedis {
	return &userRedis{client: client, prefix: prefix}
}

// userKey returns the key holding the user document for an email.
func (r *userRedis) userKey(email string) string {
	return fmt.Sprintf("%s:user:%s", r.prefix, email)
}

// Create persists the user, returning usecase.ErrEmailTaken when the email
// key already exists.
func (r *userRedis) Create(ctx context.Context, u *entity.User) error {
	data, err := json.Marshal(toUserDoc(u))
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.userKey(u.Email), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return usecase.ErrEmailTaken
	}
	return nil
}

// FindByEmail retrieves a user by email.
func (r *userRedis) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	data, err := r.client.Get(ctx, r.userKey(email)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}

	var doc userDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return doc.toEntity(), nil
}
