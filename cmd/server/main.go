package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/VitaminP8/blogery/internal/api/routes"
	"github.com/VitaminP8/blogery/internal/comment"
	"github.com/VitaminP8/blogery/internal/config"
	"github.com/VitaminP8/blogery/internal/post"
	"github.com/VitaminP8/blogery/internal/storage/memory"
	"github.com/VitaminP8/blogery/internal/storage/postgres"
	"github.com/VitaminP8/blogery/internal/user"
	"github.com/VitaminP8/blogery/models"
)

func main() {
	storageType := flag.String("storage", "memory", "Тип хранилища: memory или postgres")
	flag.Parse()

	// загружаем .env из нашего config.go
	config.LoadEnv()

	var userService user.UserService
	var postService post.PostService
	var commentService comment.CommentService

	switch *storageType {
	case "postgres":
		err := postgres.InitDB()
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}

		err = postgres.DB.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}).Error
		if err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Println("Используется PostgreSQL хранилище")
		userService = postgres.NewUserPostgresService()
		postService = postgres.NewPostPostgresService()
		commentService = postgres.NewCommentPostgresService()

	case "memory":
		log.Println("Используется in-memory хранилище")
		store := memory.NewStore()
		userService = memory.NewUserMemoryService(store)
		postService = memory.NewPostMemoryService(store)
		commentService = memory.NewCommentMemoryService(store)

	default:
		log.Fatalf("неизвестный тип хранилища: %s", *storageType)
	}

	router := routes.New(userService, postService, commentService)

	addr := config.GetEnvDefault("HTTP_ADDR", ":8080")
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// запуск HTTP сервера
	go func() {
		log.Printf("Сервер запущен на http://localhost%s/", addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Завершение...")

	if *storageType == "postgres" {
		if err := postgres.CloseDB(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("Ошибка при завершении сервера: %v", err)
	}

	log.Println("Сервер остановлен корректно")
}
