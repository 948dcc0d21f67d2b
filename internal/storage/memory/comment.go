package memory

import (
	"time"

	"github.com/VitaminP8/blogery/internal/apperr"
	"github.com/VitaminP8/blogery/internal/dto"
	"github.com/VitaminP8/blogery/models"
)

type CommentMemoryService struct {
	store *Store
}

func NewCommentMemoryService(store *Store) *CommentMemoryService {
	return &CommentMemoryService{store: store}
}

func (s *CommentMemoryService) CreateComment(postID uint, text string) (*dto.Comment, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	_, exists := s.store.posts[postID]
	if !exists {
		return nil, apperr.NewNotFound(apperr.KindPost, postID)
	}

	comment := &models.Comment{
		PostID: postID,
		Text:   text,
	}
	comment.ID = s.store.nextCommentId
	comment.CreatedAt = time.Now()
	s.store.nextCommentId++

	s.store.comments[comment.ID] = comment
	return toCommentDto(comment), nil
}

func (s *CommentMemoryService) GetCommentById(id uint) (*dto.Comment, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	comment, exists := s.store.comments[id]
	if !exists {
		return nil, apperr.NewNotFound(apperr.KindComment, id)
	}

	return toCommentDto(comment), nil
}

func (s *CommentMemoryService) GetCommentsByPostId(postID uint) ([]*dto.Comment, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	// существование поста проверяем даже на чтение
	_, exists := s.store.posts[postID]
	if !exists {
		return nil, apperr.NewNotFound(apperr.KindPost, postID)
	}

	results := make([]*dto.Comment, 0)
	for _, comment := range s.store.comments {
		if comment.PostID == postID {
			results = append(results, toCommentDto(comment))
		}
	}

	return results, nil
}

func (s *CommentMemoryService) DeleteCommentById(id uint) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	_, exists := s.store.comments[id]
	if !exists {
		return apperr.NewNotFound(apperr.KindComment, id)
	}

	delete(s.store.comments, id)
	return nil
}

func toCommentDto(c *models.Comment) *dto.Comment {
	return &dto.Comment{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
