package memory

import (
	"time"

	"github.com/VitaminP8/blogery/internal/apperr"
	"github.com/VitaminP8/blogery/internal/dto"
	"github.com/VitaminP8/blogery/models"
)

type PostMemoryService struct {
	store *Store
}

func NewPostMemoryService(store *Store) *PostMemoryService {
	return &PostMemoryService{store: store}
}

func (s *PostMemoryService) CreatePost(title, content string, authorID uint) (*dto.Post, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	author, exists := s.store.users[authorID]
	if !exists {
		return nil, apperr.NewNotFound(apperr.KindUser, authorID)
	}

	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	post.ID = s.store.nextPostId
	post.CreatedAt = time.Now()
	s.store.nextPostId++

	s.store.posts[post.ID] = post
	return toPostDto(post, author.Name, []*dto.Comment{}), nil
}

func (s *PostMemoryService) GetPostById(id uint) (*dto.Post, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, exists := s.store.posts[id]
	if !exists {
		return nil, apperr.NewNotFound(apperr.KindPost, id)
	}

	return s.assemblePostDto(post), nil
}

func (s *PostMemoryService) GetAllPosts() ([]*dto.Post, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	results := make([]*dto.Post, 0, len(s.store.posts))
	for _, post := range s.store.posts {
		results = append(results, s.assemblePostDto(post))
	}

	return results, nil
}

func (s *PostMemoryService) UpdatePost(id uint, title, content string) (*dto.Post, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, exists := s.store.posts[id]
	if !exists {
		return nil, apperr.NewNotFound(apperr.KindPost, id)
	}

	post.Title = title
	post.Content = content
	return s.assemblePostDto(post), nil
}

func (s *PostMemoryService) DeletePostById(id uint) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	_, exists := s.store.posts[id]
	if !exists {
		return apperr.NewNotFound(apperr.KindPost, id)
	}

	// каскад: комментарии поста удаляются под тем же захватом мьютекса
	for commentID, comment := range s.store.comments {
		if comment.PostID == id {
			delete(s.store.comments, commentID)
		}
	}

	delete(s.store.posts, id)
	return nil
}

// assemblePostDto вызывается только под захваченным мьютексом
func (s *PostMemoryService) assemblePostDto(post *models.Post) *dto.Post {
	authorName := ""
	if author, exists := s.store.users[post.AuthorID]; exists {
		authorName = author.Name
	}

	comments := make([]*dto.Comment, 0)
	for _, comment := range s.store.comments {
		if comment.PostID == post.ID {
			comments = append(comments, toCommentDto(comment))
		}
	}

	return toPostDto(post, authorName, comments)
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
