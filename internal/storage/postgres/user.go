package postgres

import (
	"fmt"

	"github.com/VitaminP8/blogery/internal/apperr"
	"github.com/VitaminP8/blogery/internal/dto"
	"github.com/VitaminP8/blogery/models"
	"github.com/jinzhu/gorm"
)

type UserPostgresService struct{}

func NewUserPostgresService() *UserPostgresService {
	return &UserPostgresService{}
}

func (s *UserPostgresService) CreateUser(name, email string) (*dto.User, error) {
	user := &models.User{
		Name:  name,
		Email: email,
	}

	// уникальность email не проверяем - только формат на границе API
	err := withTransaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return toUserDto(user), nil
}

func (s *UserPostgresService) GetUserById(id uint) (*dto.User, error) {
	var user models.User
	err := DB.First(&user, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, apperr.NewNotFound(apperr.KindUser, id)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return toUserDto(&user), nil
}

func (s *UserPostgresService) GetAllUsers() ([]*dto.User, error) {
	var users []models.User
	err := DB.Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("could not get users: %w", err)
	}

	results := make([]*dto.User, 0, len(users))
	for i := range users {
		results = append(results, toUserDto(&users[i]))
	}

	return results, nil
}

func (s *UserPostgresService) UpdateUser(id uint, name, email string) (*dto.User, error) {
	var user models.User
	err := withTransaction(func(tx *gorm.DB) error {
		err := tx.First(&user, id).Error
		if gorm.IsRecordNotFoundError(err) {
			return apperr.NewNotFound(apperr.KindUser, id)
		}
		if err != nil {
			return fmt.Errorf("could not get user by id: %w", err)
		}

		// полная замена name и email, created_at не трогаем
		user.Name = name
		user.Email = email
		return tx.Save(&user).Error
	})
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	return toUserDto(&user), nil
}

func (s *UserPostgresService) DeleteUserById(id uint) error {
	err := withTransaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.First(&user, id).Error
		if gorm.IsRecordNotFoundError(err) {
			return apperr.NewNotFound(apperr.KindUser, id)
		}
		if err != nil {
			return fmt.Errorf("could not get user by id: %w", err)
		}

		// посты удаляемого пользователя не трогаем (authorName у них станет пустым)
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		if apperr.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("could not delete user: %w", err)
	}

	return nil
}

func toUserDto(u *models.User) *dto.User {
	return &dto.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
