package dto

import "time"

// Транспортные представления сущностей (внутренние связи наружу не выдаем)

type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Post struct {
	ID         uint       `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	AuthorName string     `json:"authorName"`
	CreatedAt  time.Time  `json:"createdAt"`
	Comments   []*Comment `json:"comments"`
}

type Comment struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Формы запросов с тегами go-playground/validator (проверка формы - на границе API)

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=150"`
}

type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content"`
	AuthorID uint   `json:"authorId" validate:"required"`
}

type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content"`
}

type CreateCommentRequest struct {
	PostID uint   `json:"postId" validate:"required"`
	Text   string `json:"text" validate:"required"`
}
