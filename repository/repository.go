package repository

import (
	"context"
	"strings"
	"time"

	"github.com/hasanmehediii/CSE-2211-Project/metrics"
	"gorm.io/gorm"
)

// Key selects one row by its primary key columns.
type Key map[string]interface{}

// ByID builds a single-column key.
func ByID(column string, id uint) Key {
	return Key{column: id}
}

// Filter narrows a listing by column equality. Slice values become IN lists.
type Filter map[string]interface{}

// Page is an offset/limit window. A negative Limit disables the limit.
type Page struct {
	Skip  int
	Limit int
}

// Unbounded returns every matching row.
var Unbounded = Page{Skip: 0, Limit: -1}

// Repository is the persistence contract shared by every entity table.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, key Key) (*T, error)
	FindOne(ctx context.Context, filter Filter) (*T, error)
	FindAll(ctx context.Context, filter Filter, page Page) ([]T, error)
	Update(ctx context.Context, key Key, changes map[string]interface{}) error
	Delete(ctx context.Context, key Key) error
	// Transaction runs fn against a repository bound to one database
	// transaction, committing when fn returns nil.
	Transaction(ctx context.Context, fn func(tx Repository[T]) error) error
}

// GormRepository implements Repository for a GORM model.
type GormRepository[T any] struct {
	db    *gorm.DB
	table string
	order string
}

// NewGormRepository binds a repository to db. keyColumns name the primary key
// columns in order; listings are sorted by them.
func NewGormRepository[T any](db *gorm.DB, keyColumns ...string) Repository[T] {
	return &GormRepository[T]{
		db:    db,
		table: tableName[T](),
		order: strings.Join(keyColumns, ", "),
	}
}

func tableName[T any]() string {
	if t, ok := any(new(T)).(interface{ TableName() string }); ok {
		return t.TableName()
	}
	return "unknown"
}

func (r *GormRepository[T]) track(op string) func(time.Time) {
	return metrics.TrackDBOperation(r.table + "." + op)
}

func (r *GormRepository[T]) Create(ctx context.Context, entity *T) error {
	defer r.track("create")(time.Now())
	return translate("create "+r.table, r.db.WithContext(ctx).Create(entity).Error)
}

func (r *GormRepository[T]) FindByID(ctx context.Context, key Key) (*T, error) {
	defer r.track("find_by_id")(time.Now())
	var entity T
	if err := r.db.WithContext(ctx).Where(map[string]interface{}(key)).First(&entity).Error; err != nil {
		return nil, translate("find "+r.table, err)
	}
	return &entity, nil
}

func (r *GormRepository[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	defer r.track("find_one")(time.Now())
	var entity T
	if err := r.db.WithContext(ctx).Where(map[string]interface{}(filter)).First(&entity).Error; err != nil {
		return nil, translate("find "+r.table, err)
	}
	return &entity, nil
}

func (r *GormRepository[T]) FindAll(ctx context.Context, filter Filter, page Page) ([]T, error) {
	defer r.track("find_all")(time.Now())
	query := r.db.WithContext(ctx)
	if len(filter) > 0 {
		query = query.Where(map[string]interface{}(filter))
	}
	if r.order != "" {
		query = query.Order(r.order)
	}
	rows := make([]T, 0)
	if err := query.Offset(page.Skip).Limit(page.Limit).Find(&rows).Error; err != nil {
		return nil, translate("list "+r.table, err)
	}
	return rows, nil
}

func (r *GormRepository[T]) Update(ctx context.Context, key Key, changes map[string]interface{}) error {
	defer r.track("update")(time.Now())
	res := r.db.WithContext(ctx).Model(new(T)).Where(map[string]interface{}(key)).Updates(changes)
	if res.Error != nil {
		return translate("update "+r.table, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) Delete(ctx context.Context, key Key) error {
	defer r.track("delete")(time.Now())
	res := r.db.WithContext(ctx).Where(map[string]interface{}(key)).Delete(new(T))
	if res.Error != nil {
		return translate("delete "+r.table, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) Transaction(ctx context.Context, fn func(tx Repository[T]) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository[T]{db: tx, table: r.table, order: r.order})
	})
}
