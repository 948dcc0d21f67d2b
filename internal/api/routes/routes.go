package routes

import (
	"github.com/VitaminP8/blogery/internal/api/handlers"
	"github.com/VitaminP8/blogery/internal/comment"
	"github.com/VitaminP8/blogery/internal/post"
	"github.com/VitaminP8/blogery/internal/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// New собирает роутер API поверх переданных сервисов
func New(userService user.UserService, postService post.PostService, commentService comment.CommentService) chi.Router {
	userHandler := handlers.NewUserHandler(userService)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.GetAll)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.GetById)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.GetAll)
			r.Post("/", postHandler.Create)
			r.Get("/{id}", postHandler.GetById)
			r.Put("/{id}", postHandler.Update)
			r.Delete("/{id}", postHandler.Delete)
			r.Get("/{id}/comments", commentHandler.ListByPost)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Post("/", commentHandler.Create)
			r.Get("/{id}", commentHandler.GetById)
			r.Delete("/{id}", commentHandler.Delete)
		})
	})

	return r
}
