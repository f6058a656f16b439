package services

import (
	"errors"
	"net/http"
	"strings"

	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func notFound(entity string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: entity + " not found"}
}

// classify turns a repository error into the response the caller sees.
// Only unexpected errors are logged.
func classify(logger *zap.Logger, entity, op string, err error) *ServiceError {
	var svcErr *ServiceError
	switch {
	case errors.As(err, &svcErr):
		return svcErr
	case errors.Is(err, repository.ErrNotFound):
		return notFound(entity)
	case errors.Is(err, repository.ErrDuplicate):
		return &ServiceError{StatusCode: http.StatusConflict, Message: entity + " already exists"}
	case errors.Is(err, repository.ErrReference) && op == "delete":
		return &ServiceError{StatusCode: http.StatusConflict, Message: entity + " is still referenced by other records"}
	case errors.Is(err, repository.ErrReference):
		return &ServiceError{StatusCode: http.StatusUnprocessableEntity, Message: "Referenced record does not exist"}
	case errors.Is(err, repository.ErrInvalidValue):
		return &ServiceError{StatusCode: http.StatusUnprocessableEntity, Message: "Value does not fit " + strings.ToLower(entity) + " column"}
	}
	msg := "Failed to " + op + " " + strings.ToLower(entity)
	logger.Error(msg, zap.Error(err))
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: msg}
}
