package postgres

import (
	"errors"
	"testing"

	"github.com/VitaminP8/blogery/models"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction(t *testing.T) {
	t.Run("Commit on success", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		err := withTransaction(func(tx *gorm.DB) error {
			return tx.Create(&models.User{Name: "Alice", Email: "alice@example.com"}).Error
		})
		assert.NoError(t, err)

		var count int
		require.NoError(t, DB.Model(&models.User{}).Count(&count).Error)
		assert.Equal(t, 1, count)
	})

	t.Run("Rollback on error", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		wantErr := errors.New("boom")
		err := withTransaction(func(tx *gorm.DB) error {
			if err := tx.Create(&models.User{Name: "Alice", Email: "alice@example.com"}).Error; err != nil {
				return err
			}
			return wantErr
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, wantErr)

		// Запись не должна была закоммититься
		var count int
		require.NoError(t, DB.Model(&models.User{}).Count(&count).Error)
		assert.Equal(t, 0, count)
	})
}
