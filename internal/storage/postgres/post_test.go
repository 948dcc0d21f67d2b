package postgres

import (
	"fmt"
	"testing"

	"github.com/VitaminP8/blogery/internal/apperr"
	"github.com/VitaminP8/blogery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostPostgresService_CreatePost(t *testing.T) {
	service := NewPostPostgresService()

	t.Run("Success post creation", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "Alice", "alice@example.com")

		post, err := service.CreatePost("Hi", "World", userID)
		assert.NoError(t, err)
		require.NotNil(t, post)
		assert.NotZero(t, post.ID)
		assert.Equal(t, "Hi", post.Title)
		assert.Equal(t, "World", post.Content)
		assert.Equal(t, "Alice", post.AuthorName)
		assert.Empty(t, post.Comments)
		assert.False(t, post.CreatedAt.IsZero())

		// Проверяем, что пост действительно создался в БД
		var dbPost models.Post
		err = DB.First(&dbPost, post.ID).Error
		assert.NoError(t, err)
		assert.Equal(t, userID, dbPost.AuthorID)
	})

	t.Run("Author does not exist", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		post, err := service.CreatePost("Hi", "World", 999)
		assert.Nil(t, post)
		require.Error(t, err)
		assert.EqualError(t, err, "User with id 999 not found")

		nf := apperr.AsNotFound(err)
		require.NotNil(t, nf)
		assert.Equal(t, apperr.KindUser, nf.Kind)

		// Пост не должен был сохраниться
		var count int
		require.NoError(t, DB.Model(&models.Post{}).Count(&count).Error)
		assert.Equal(t, 0, count)
	})
}

func TestPostPostgresService_GetPostById(t *testing.T) {
	service := NewPostPostgresService()

	t.Run("Getting post with author and comments", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "Alice", "alice@example.com")
		postID := createTestPost(t, userID, "Hi", "World")
		createTestComment(t, postID, "Nice!")
		createTestComment(t, postID, "Great!")

		post, err := service.GetPostById(postID)
		assert.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, postID, post.ID)
		assert.Equal(t, "Alice", post.AuthorName)
		require.Len(t, post.Comments, 2)

		texts := []string{post.Comments[0].Text, post.Comments[1].Text}
		assert.Contains(t, texts, "Nice!")
		assert.Contains(t, texts, "Great!")
	})

	t.Run("Trying to get not exist post", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		post, err := service.GetPostById(999)
		assert.Nil(t, post)
		require.Error(t, err)
		assert.EqualError(t, err, "Post with id 999 not found")
	})
}

func TestPostPostgresService_GetAllPosts(t *testing.T) {
	service := NewPostPostgresService()

	t.Run("Get all posts with their comments", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "Alice", "alice@example.com")
		post1ID := createTestPost(t, userID, "Post 1", "Content 1")
		post2ID := createTestPost(t, userID, "Post 2", "Content 2")
		createTestComment(t, post1ID, "Nice!")

		posts, err := service.GetAllPosts()
		assert.NoError(t, err)
		require.Len(t, posts, 2)

		byID := map[uint]int{}
		for i, p := range posts {
			byID[p.ID] = i
		}
		assert.Len(t, posts[byID[post1ID]].Comments, 1)
		assert.Empty(t, posts[byID[post2ID]].Comments)
	})
}

func TestPostPostgresService_UpdatePost(t *testing.T) {
	service := NewPostPostgresService()

	t.Run("Update overwrites title and content only", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "Alice", "alice@example.com")
		postID := createTestPost(t, userID, "Hi", "World")
		createTestComment(t, postID, "Nice!")

		updated, err := service.UpdatePost(postID, "Hello", "Everyone")
		assert.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Hello", updated.Title)
		assert.Equal(t, "Everyone", updated.Content)
		assert.Equal(t, "Alice", updated.AuthorName)
		assert.Len(t, updated.Comments, 1)
	})

	t.Run("Update is idempotent for identical arguments", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "Alice", "alice@example.com")
		postID := createTestPost(t, userID, "Hi", "World")

		first, err := service.UpdatePost(postID, "Hello", "Everyone")
		require.NoError(t, err)
		second, err := service.UpdatePost(postID, "Hello", "Everyone")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.Title, second.Title)
		assert.Equal(t, first.Content, second.Content)
		assert.Equal(t, first.AuthorName, second.AuthorName)
		assert.Len(t, second.Comments, len(first.Comments))
	})

	t.Run("Update not exist post", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		updated, err := service.UpdatePost(999, "Hello", "Everyone")
		assert.Nil(t, updated)
		require.Error(t, err)
		assert.EqualError(t, err, "Post with id 999 not found")
	})
}

func TestPostPostgresService_DeletePostById(t *testing.T) {
	service := NewPostPostgresService()

	t.Run("Delete cascades to comments", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "Alice", "alice@example.com")
		postID := createTestPost(t, userID, "Hi", "World")
		commentID := createTestComment(t, postID, "Nice!")
		otherPostID := createTestPost(t, userID, "Other", "Post")
		otherCommentID := createTestComment(t, otherPostID, "Stays")

		err := service.DeletePostById(postID)
		assert.NoError(t, err)

		// Пост и его комментарии ушли вместе
		var post models.Post
		err = DB.First(&post, postID).Error
		assert.Error(t, err)

		commentService := NewCommentPostgresService()
		_, err = commentService.GetCommentById(commentID)
		require.Error(t, err)
		assert.EqualError(t, err, fmt.Sprintf("Comment with id %d not found", commentID))

		// Комментарии других постов не задеты
		stays, err := commentService.GetCommentById(otherCommentID)
		assert.NoError(t, err)
		assert.Equal(t, "Stays", stays.Text)
	})

	t.Run("Delete not exist post", func(t *testing.T) {
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		err := service.DeletePostById(999)
		require.Error(t, err)
		assert.EqualError(t, err, "Post with id 999 not found")

		nf := apperr.AsNotFound(err)
		require.NotNil(t, nf)
		assert.Equal(t, apperr.KindPost, nf.Kind)
		assert.Equal(t, uint(999), nf.ID)
	})
}
