package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"nexuscare_backend/internal/feature/appointments/domain/entity"
	"nexuscare_backend/internal/feature/appointments/usecase"
)

// appointmentRedis is the key-value implementation of
// usecase.AppointmentRepository. Each appointment is a JSON document keyed by
// ID with a companion index set, mirroring the doctors layout.
type appointmentRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.AppointmentRepository = (*appointmentRedis)(nil)

// NewAppointmentRedis creates an appointmentRedis with the given key prefix.
func NewAppointmentRedis(client *redis.Client, prefix string) *appointmentRedis {
	return &appointmentRedis{client: client, prefix: prefix}
}

// appointmentKey returns the key holding a single appointment document.
func (r *appointmentRedis) appointmentKey(id string) string {
	return fmt.Sprintf("%s:appointment:%s", r.prefix, id)
}

// indexKey returns the key of the set holding all appointment IDs.
func (r *appointmentRedis) indexKey() string {
	return fmt.Sprintf("%s:appointments", r.prefix)
}

// Create persists the appointment document and records its ID in the index
// set.
func (r *appointmentRedis) Create(ctx context.Context, a *entity.Appointment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal appointment: %w", err)
	}

	if err := r.client.Set(ctx, r.appointmentKey(a.ID), data, 0).Err(); err != nil {
		return err
	}
	return r.client.SAdd(ctx, r.indexKey(), a.ID).Err()
}

// ListAll returns every appointment sorted by timestamp descending, most
// recent first. RFC3339 timestamps sort correctly as strings.
func (r *appointmentRedis) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	ids, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, err
	}

	appointments := make([]entity.Appointment, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, r.appointmentKey(id)).Bytes()
		if err != nil {
			if err == redis.Nil {
				r.client.SRem(ctx, r.indexKey(), id)
				continue
			}
			return nil, err
		}

		var a entity.Appointment
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal appointment %s: %w", id, err)
		}
		appointments = append(appointments, a)
	}

	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].Timestamp > appointments[j].Timestamp
	})
	return appointments, nil
}
