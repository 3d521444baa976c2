package adapters

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client
}

func TestDoctorRedis_Create(t *testing.T) {
	client := setupTestRedis(t)
	repo := NewDoctorRedis(client, "nexuscare")

	doc := newTestDoctor("DOC-0AB12C", "Dr. One")
	err := repo.Create(context.Background(), doc)

	assert.NoError(t, err, "failed to create doctor")

	// Document stored and indexed
	data, err := client.Get(context.Background(), repo.doctorKey("DOC-0AB12C")).Result()
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	isMember, err := client.SIsMember(context.Background(), repo.indexKey(), "DOC-0AB12C").Result()
	assert.NoError(t, err)
	assert.True(t, isMember, "id missing from index set")
}

func TestDoctorRedis_ListAll(t *testing.T) {
	t.Run("empty directory returns no records", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewDoctorRedis(client, "nexuscare")

		doctors, err := repo.ListAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, doctors, 0)
	})

	t.Run("availability survives as a native list", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewDoctorRedis(client, "nexuscare")

		expected := newTestDoctor("DOC-0AB12C", "Dr. One")
		require.NoError(t, repo.Create(context.Background(), expected))

		doctors, err := repo.ListAll(context.Background())

		assert.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, []string{"Mon 9-5", "Wed 9-5"}, doctors[0].Availability)
	})

	t.Run("drops index entries whose document is gone", func(t *testing.T) {
		client := setupTestRedis(t)
		repo := NewDoctorRedis(client, "nexuscare")

		require.NoError(t, repo.Create(context.Background(), newTestDoctor("DOC-000001", "Dr. One")))
		require.NoError(t, repo.Create(context.Background(), newTestDoctor("DOC-000002", "Dr. Two")))

		// Simulate a manually deleted document
		require.NoError(t, client.Del(context.Background(), repo.doctorKey("DOC-000001")).Err())

		doctors, err := repo.ListAll(context.Background())

		assert.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "DOC-000002", doctors[0].ID)

		isMember, err := client.SIsMember(context.Background(), repo.indexKey(), "DOC-000001").Result()
		assert.NoError(t, err)
		assert.False(t, isMember, "stale id should be pruned from index")
	})
}
