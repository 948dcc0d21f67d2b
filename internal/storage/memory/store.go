package memory

import (
	"sync"

	"github.com/VitaminP8/blogery/models"
)

// Store - общее in-memory хранилище всех трех сущностей.
// Один мьютекс на все таблицы: операция сервиса держит его целиком,
// что дает тот же эффект, что одна транзакция в реляционной БД
type Store struct {
	mu sync.Mutex

	users    map[uint]*models.User
	posts    map[uint]*models.Post
	comments map[uint]*models.Comment

	nextUserId    uint
	nextPostId    uint
	nextCommentId uint
}

func NewStore() *Store {
	return &Store{
		users:         make(map[uint]*models.User),
		posts:         make(map[uint]*models.Post),
		comments:      make(map[uint]*models.Comment),
		nextUserId:    1,
		nextPostId:    1,
		nextCommentId: 1,
	}
}
