package services

import (
	"context"

	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"go.uber.org/zap"
)

// CrudService is the create/read/update/delete contract every entity exposes.
type CrudService[T any] interface {
	Create(ctx context.Context, req models.Creator[T]) (*T, *ServiceError)
	Get(ctx context.Context, key repository.Key) (*T, *ServiceError)
	List(ctx context.Context, filter repository.Filter, page repository.Page) ([]T, *ServiceError)
	Update(ctx context.Context, key repository.Key, patch models.Patch) (*T, *ServiceError)
	Delete(ctx context.Context, key repository.Key) *ServiceError
}

type crudServiceImpl[T any] struct {
	repo   repository.Repository[T]
	entity string
	logger *zap.Logger
	// prepare may rewrite update changes before they are stored.
	prepare func(models.Changes) *ServiceError
}

// NewCrudService creates a CrudService over repo. entity is the display name
// used in error messages, e.g. "Car" or "Order item".
func NewCrudService[T any](repo repository.Repository[T], entity string, logger *zap.Logger) CrudService[T] {
	return &crudServiceImpl[T]{repo: repo, entity: entity, logger: logger}
}

func (s *crudServiceImpl[T]) Create(ctx context.Context, req models.Creator[T]) (*T, *ServiceError) {
	entity := req.ToModel()
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, classify(s.logger, s.entity, "create", err)
	}
	return entity, nil
}

func (s *crudServiceImpl[T]) Get(ctx context.Context, key repository.Key) (*T, *ServiceError) {
	entity, err := s.repo.FindByID(ctx, key)
	if err != nil {
		return nil, classify(s.logger, s.entity, "get", err)
	}
	return entity, nil
}

func (s *crudServiceImpl[T]) List(ctx context.Context, filter repository.Filter, page repository.Page) ([]T, *ServiceError) {
	rows, err := s.repo.FindAll(ctx, filter, page)
	if err != nil {
		return nil, classify(s.logger, s.entity, "list", err)
	}
	return rows, nil
}

// Update overwrites only the columns present in patch and returns the
// stored row. An empty patch still reports a missing row.
func (s *crudServiceImpl[T]) Update(ctx context.Context, key repository.Key, patch models.Patch) (*T, *ServiceError) {
	changes := patch.Changes()
	if s.prepare != nil && len(changes) > 0 {
		if svcErr := s.prepare(changes); svcErr != nil {
			return nil, svcErr
		}
	}

	var updated *T
	err := s.repo.Transaction(ctx, func(tx repository.Repository[T]) error {
		if len(changes) > 0 {
			if err := tx.Update(ctx, key, changes); err != nil {
				return err
			}
		}
		entity, err := tx.FindByID(ctx, key)
		if err != nil {
			return err
		}
		updated = entity
		return nil
	})
	if err != nil {
		return nil, classify(s.logger, s.entity, "update", err)
	}
	return updated, nil
}

func (s *crudServiceImpl[T]) Delete(ctx context.Context, key repository.Key) *ServiceError {
	if err := s.repo.Delete(ctx, key); err != nil {
		return classify(s.logger, s.entity, "delete", err)
	}
	return nil
}
