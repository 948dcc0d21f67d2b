package postgres

import (
	"fmt"

	"github.com/VitaminP8/blogery/internal/apperr"
	"github.com/VitaminP8/blogery/internal/dto"
	"github.com/VitaminP8/blogery/models"
	"github.com/jinzhu/gorm"
)

type PostPostgresService struct{}

func NewPostPostgresService() *PostPostgresService {
	return &PostPostgresService{}
}

func (s *PostPostgresService) CreatePost(title, content string, authorID uint) (*dto.Post, error) {
	var author models.User
	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	err := withTransaction(func(tx *gorm.DB) error {
		// сначала проверка существования автора, потом любая запись
		err := tx.First(&author, authorID).Error
		if gorm.IsRecordNotFoundError(err) {
			return apperr.NewNotFound(apperr.KindUser, authorID)
		}
		if err != nil {
			return fmt.Errorf("could not get author by id: %w", err)
		}

		return tx.Create(post).Error
	})
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return toPostDto(post, author.Name, []*dto.Comment{}), nil
}

func (s *PostPostgresService) GetPostById(id uint) (*dto.Post, error) {
	var post models.Post
	err := DB.First(&post, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, apperr.NewNotFound(apperr.KindPost, id)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	return assemblePostDto(&post)
}

func (s *PostPostgresService) GetAllPosts() ([]*dto.Post, error) {
	var posts []models.Post
	err := DB.Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	results := make([]*dto.Post, 0, len(posts))
	for i := range posts {
		result, err := assemblePostDto(&posts[i])
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *PostPostgresService) UpdatePost(id uint, title, content string) (*dto.Post, error) {
	var post models.Post
	err := withTransaction(func(tx *gorm.DB) error {
		err := tx.First(&post, id).Error
		if gorm.IsRecordNotFoundError(err) {
			return apperr.NewNotFound(apperr.KindPost, id)
		}
		if err != nil {
			return fmt.Errorf("could not get post by id: %w", err)
		}

		// обновляем только title и content, автор и комментарии не трогаем
		post.Title = title
		post.Content = content
		return tx.Save(&post).Error
	})
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	return assemblePostDto(&post)
}

func (s *PostPostgresService) DeletePostById(id uint) error {
	err := withTransaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.First(&post, id).Error
		if gorm.IsRecordNotFoundError(err) {
			return apperr.NewNotFound(apperr.KindPost, id)
		}
		if err != nil {
			return fmt.Errorf("could not get post by id: %w", err)
		}

		// каскадное удаление: все комментарии поста уходят в той же транзакции
		err = tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error
		if err != nil {
			return fmt.Errorf("could not delete comments of post: %w", err)
		}

		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		if apperr.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("could not delete post: %w", err)
	}

	return nil
}

// assemblePostDto собирает транспортное представление поста:
// автор и комментарии разрешаются явными запросами
func assemblePostDto(post *models.Post) (*dto.Post, error) {
	authorName := ""
	var author models.User
	err := DB.First(&author, post.AuthorID).Error
	if err == nil {
		authorName = author.Name
	} else if !gorm.IsRecordNotFoundError(err) {
		// автор мог быть удален - это не ошибка, остальное пробрасываем
		return nil, fmt.Errorf("could not get author by id: %w", err)
	}

	var comments []models.Comment
	err = DB.Where("post_id = ?", post.ID).Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments of post: %w", err)
	}

	commentDtos := make([]*dto.Comment, 0, len(comments))
	for i := range comments {
		commentDtos = append(commentDtos, toCommentDto(&comments[i]))
	}

	return toPostDto(post, authorName, commentDtos), nil
}

func toPostDto(p *models.Post, authorName string, comments []*dto.Comment) *dto.Post {
	return &dto.Post{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		AuthorName: authorName,
		CreatedAt:  p.CreatedAt,
		Comments:   comments,
	}
}
