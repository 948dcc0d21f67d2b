package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/VitaminP8/blogery/internal/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// один валидатор на весь пакет (потокобезопасен)
var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError переводит ошибку сервиса в HTTP-статус:
// NotFound -> 404 с типизированным сообщением, все остальное -> 500 без деталей
func writeServiceError(w http.ResponseWriter, err error) {
	if nf := apperr.AsNotFound(err); nf != nil {
		writeError(w, http.StatusNotFound, nf.Error())
		return
	}

	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

// idParam парсит числовой id из параметра пути chi
func idParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
