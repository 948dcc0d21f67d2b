package comment

import (
	"github.com/VitaminP8/blogery/internal/dto"
)

type CommentService interface {
	CreateComment(postID uint, text string) (*dto.Comment, error)
	GetCommentById(id uint) (*dto.Comment, error)
	GetCommentsByPostId(postID uint) ([]*dto.Comment, error)
	DeleteCommentById(id uint) error
}
