package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nexuscare_backend/internal/feature/doctors/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Doctor{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func newTestDoctor(id, name string) *entity.Doctor {
	return &entity.Doctor{
		ID:           id,
		Name:         name,
		Specialty:    "Cardiology",
		Experience:   "12 years",
		Bio:          "Senior consultant",
		ImageURL:     "https://example.com/doc.png",
		Availability: []string{"Mon 9-5", "Wed 9-5"},
	}
}

func TestDoctorGorm_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDoctorGorm(db)

	err := repo.Create(context.Background(), newTestDoctor("DOC-0AB12C", "Dr. One"))

	assert.NoError(t, err, "failed to create doctor")
}

func TestDoctorGorm_ListAll(t *testing.T) {
	t.Run("empty directory returns no records", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorGorm(db)

		doctors, err := repo.ListAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, doctors, 0)
	})

	t.Run("availability survives the JSON column round-trip", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorGorm(db)

		expected := newTestDoctor("DOC-0AB12C", "Dr. One")
		require.NoError(t, repo.Create(context.Background(), expected))

		doctors, err := repo.ListAll(context.Background())

		assert.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, expected.ID, doctors[0].ID)
		// Stored as a JSON string in the column, but must come back as the
		// same ordered list.
		assert.Equal(t, []string{"Mon 9-5", "Wed 9-5"}, doctors[0].Availability)
	})

	t.Run("returns every registered doctor", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDoctorGorm(db)

		require.NoError(t, repo.Create(context.Background(), newTestDoctor("DOC-000001", "Dr. One")))
		require.NoError(t, repo.Create(context.Background(), newTestDoctor("DOC-000002", "Dr. Two")))

		doctors, err := repo.ListAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, doctors, 2)
	})
}
