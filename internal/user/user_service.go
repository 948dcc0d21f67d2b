package user

import (
	"github.com/VitaminP8/blogery/internal/dto"
)

type UserService interface {
	CreateUser(name, email string) (*dto.User, error)
	GetUserById(id uint) (*dto.User, error)
	GetAllUsers() ([]*dto.User, error)
	UpdateUser(id uint, name, email string) (*dto.User, error)
	DeleteUserById(id uint) error
}
