package postgres

import (
	"fmt"

	"github.com/VitaminP8/blogery/internal/apperr"
	"github.com/VitaminP8/blogery/internal/dto"
	"github.com/VitaminP8/blogery/models"
	"github.com/jinzhu/gorm"
)

type CommentPostgresService struct{}

func NewCommentPostgresService() *CommentPostgresService {
	return &CommentPostgresService{}
}

func (s *CommentPostgresService) CreateComment(postID uint, text string) (*dto.Comment, error) {
	comment := &models.Comment{
		PostID: postID,
		Text:   text,
	}

	err := withTransaction(func(tx *gorm.DB) error {
		// пост должен существовать до любой записи
		var post models.Post
		err := tx.First(&post, postID).Error
		if gorm.IsRecordNotFoundError(err) {
			return apperr.NewNotFound(apperr.KindPost, postID)
		}
		if err != nil {
			return fmt.Errorf("could not get post by id: %w", err)
		}

		return tx.Create(comment).Error
	})
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return toCommentDto(comment), nil
}

func (s *CommentPostgresService) GetCommentById(id uint) (*dto.Comment, error) {
	var comment models.Comment
	err := DB.First(&comment, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, apperr.NewNotFound(apperr.KindComment, id)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get comment by id: %w", err)
	}

	return toCommentDto(&comment), nil
}

func (s *CommentPostgresService) GetCommentsByPostId(postID uint) ([]*dto.Comment, error) {
	// существование поста проверяем даже на чтение,
	// чтобы не отдавать комментарии несуществующего поста
	var post models.Post
	err := DB.First(&post, postID).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, apperr.NewNotFound(apperr.KindPost, postID)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	var comments []models.Comment
	err = DB.Where("post_id = ?", postID).Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments of post: %w", err)
	}

	results := make([]*dto.Comment, 0, len(comments))
	for i := range comments {
		results = append(results, toCommentDto(&comments[i]))
	}

	return results, nil
}

func (s *CommentPostgresService) DeleteCommentById(id uint) error {
	err := withTransaction(func(tx *gorm.DB) error {
		var comment models.Comment
		err := tx.First(&comment, id).Error
		if gorm.IsRecordNotFoundError(err) {
			return apperr.NewNotFound(apperr.KindComment, id)
		}
		if err != nil {
			return fmt.Errorf("could not get comment by id: %w", err)
		}

		return tx.Delete(&models.Comment{}, id).Error
	})
	if err != nil {
		if apperr.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("could not delete comment: %w", err)
	}

	return nil
}

func toCommentDto(c *models.Comment) *dto.Comment {
	return &dto.Comment{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
