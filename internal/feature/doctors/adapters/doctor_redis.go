package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"nexuscare_backend/internal/feature/doctors/domain/entity"
	"nexuscare_backend/internal/feature/doctors/usecase"
)

// doctorRedis is the key-value implementation of usecase.DoctorRepository.
// Each doctor is a JSON document keyed by ID; a companion set holds the IDs
// so ListAll can scan the collection.
type doctorRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.DoctorRepository = (*doctorRedis)(nil)

// NewDoctorRedis creates a doctorRedis with the given key prefix.
func NewDoctorRedis(client *redis.Client, prefix string) *doctorRedis {
	return &doctorRedis{client: client, prefix: prefix}
}

// doctorKey returns the key holding a single doctor document.
func (r *doctorRedis) doctorKey(id string) string {
	return fmt.Sprintf("%s:doctor:%s", r.prefix, id)
}

// indexKey returns the key of the set holding all doctor IDs.
func (r *doctorRedis) indexKey() string {
	return fmt.Sprintf("%s:doctors", r.prefix)
}

// Create persists the doctor document and records its ID in the index set.
func (r *doctorRedis) Create(ctx context.Context, d *entity.Doctor) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal doctor: %w", err)
	}

	if err := r.client.Set(ctx, r.doctorKey(d.ID), data, 0).Err(); err != nil {
		return err
	}
	return r.client.SAdd(ctx, r.indexKey(), d.ID).Err()
}

// ListAll returns every doctor document. Index entries whose document has
// disappeared are dropped from the set on the way through.
func (r *doctorRedis) ListAll(ctx context.Context) ([]entity.Doctor, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, err
	}

	doctors := make([]entity.Doctor, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, r.doctorKey(id)).Bytes()
		if err != nil {
			if err == redis.Nil {
				r.client.SRem(ctx, r.indexKey(), id)
				continue
			}
			return nil, err
		}

		var d entity.Doctor
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal doctor %s: %w", id, err)
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}
