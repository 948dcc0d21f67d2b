package post

import (
	"github.com/VitaminP8/blogery/internal/dto"
)

type PostService interface {
	CreatePost(title, content string, authorID uint) (*dto.Post, error)
	GetPostById(id uint) (*dto.Post, error)
	GetAllPosts() ([]*dto.Post, error)
	UpdatePost(id uint, title, content string) (*dto.Post, error)
	DeletePostById(id uint) error
}
