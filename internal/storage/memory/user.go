package memory

import (
	"time"

	"github.com/VitaminP8/blogery/internal/apperr"
	"github.com/VitaminP8/blogery/internal/dto"
	"github.com/VitaminP8/blogery/models"
)

type UserMemoryService struct {
	store *Store
}

func NewUserMemoryService(store *Store) *UserMemoryService {
	return &UserMemoryService{store: store}
}

func (s *UserMemoryService) CreateUser(name, email string) (*dto.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user := &models.User{
		Name:  name,
		Email: email,
	}
	user.ID = s.store.nextUserId
	user.CreatedAt = time.Now()
	s.store.nextUserId++

	s.store.users[user.ID] = user
	return toUserDto(user), nil
}

func (s *UserMemoryService) GetUserById(id uint) (*dto.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user, exists := s.store.users[id]
	if !exists {
		return nil, apperr.NewNotFound(apperr.KindUser, id)
	}

	return toUserDto(user), nil
}

func (s *UserMemoryService) GetAllUsers() ([]*dto.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	results := make([]*dto.User, 0, len(s.store.users))
	for _, user := range s.store.users {
		results = append(results, toUserDto(user))
	}

	return results, nil
}

func (s *UserMemoryService) UpdateUser(id uint, name, email string) (*dto.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	user, exists := s.store.users[id]
	if !exists {
		return nil, apperr.NewNotFound(apperr.KindUser, id)
	}

	user.Name = name
	user.Email = email
	return toUserDto(user), nil
}

func (s *UserMemoryService) DeleteUserById(id uint) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	_, exists := s.store.users[id]
	if !exists {
		return apperr.NewNotFound(apperr.KindUser, id)
	}

	// посты остаются, authorName у них станет пустым
	delete(s.store.users, id)
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
