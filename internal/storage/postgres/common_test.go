package postgres

import (
	"testing"

	"github.com/VitaminP8/blogery/models"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // Импортируем драйвер SQLite
	"github.com/stretchr/testify/require"
)

// setupTestDB создает тестовую БД в памяти и выполняет миграции
func setupTestDB(t *testing.T) *gorm.DB {
	// Сохраняем оригинальное соединение (если оно есть)
	oldDB := GetDB()

	// Создаем SQLite в памяти
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to connect to in-memory SQLite")

	// Включаем foreign keys в SQLite
	db.Exec("PRAGMA foreign_keys = ON")
	// Отключаем логирование запросов для тестов
	db.LogMode(false)
	// Выполняем миграцию схемы базы данных
	err = db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}).Error
	require.NoError(t, err, "Failed to migrate database schema")
	// Устанавливаем SQLite в качестве глобальной DB
	InitDBWithConnection(db)

	return oldDB
}

// teardownTestDB восстанавливает оригинальную базу данных
func teardownTestDB(db *gorm.DB) {
	// Восстанавливаем оригинальное соединение
	InitDBWithConnection(db)
}

// createTestUser создает тестового пользователя и возвращает его ID
func createTestUser(t *testing.T, name, email string) uint {
	user := &models.User{
		Name:  name,
		Email: email,
	}

	err := DB.Create(user).Error
	require.NoError(t, err, "Failed to create test user")

	return user.ID
}

// createTestPost создает тестовый пост и возвращает его ID
func createTestPost(t *testing.T, authorID uint, title, content string) uint {
	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	err := DB.Create(post).Error
	require.NoError(t, err, "Failed to create test post")

	return post.ID
}

// createTestComment создает тестовый комментарий и возвращает его ID
func createTestComment(t *testing.T, postID uint, text string) uint {
	comment := &models.Comment{
		PostID: postID,
		Text:   text,
	}

	err := DB.Create(comment).Error
	require.NoError(t, err, "Failed to create test comment")

	return comment.ID
}
