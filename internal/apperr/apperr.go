package apperr

import (
	"errors"
	"fmt"
)

// Виды сущностей для сообщений NotFound
const (
	KindUser    = "User"
	KindPost    = "Post"
	KindComment = "Comment"
)

// NotFoundError - операция ссылается на несуществующий id
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

func NewNotFound(kind string, id uint) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// AsNotFound достает *NotFoundError из цепочки ошибок (nil, если ее там нет)
func AsNotFound(err error) *NotFoundError {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf
	}
	return nil
}
