package services

import (
	"context"
	"reflect"

	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
)

// fakeRepo is an in-memory repository.Repository. columns exposes pointers to
// the fields of a row by column name; the first entry of keys is assigned on
// create.
type fakeRepo[T any] struct {
	rows    []*T
	keys    []string
	columns func(*T) map[string]interface{}

	createErr error
	findErr   error
	listErr   error
	updateErr error
	deleteErr error

	transactions int
}

func newFakeRepo[T any](columns func(*T) map[string]interface{}, keys ...string) *fakeRepo[T] {
	return &fakeRepo[T]{columns: columns, keys: keys}
}

func (f *fakeRepo[T]) seed(rows ...T) *fakeRepo[T] {
	for i := range rows {
		row := rows[i]
		f.rows = append(f.rows, &row)
	}
	return f
}

func (f *fakeRepo[T]) matches(row *T, cond map[string]interface{}) bool {
	cols := f.columns(row)
	for col, want := range cond {
		ptr, ok := cols[col]
		if !ok {
			return false
		}
		got := reflect.ValueOf(ptr).Elem().Interface()
		if rv := reflect.ValueOf(want); rv.Kind() == reflect.Slice {
			found := false
			for i := 0; i < rv.Len(); i++ {
				if reflect.DeepEqual(got, rv.Index(i).Interface()) {
					found = true
				}
			}
			if !found {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func (f *fakeRepo[T]) Create(_ context.Context, entity *T) error {
	if f.createErr != nil {
		return f.createErr
	}
	id := reflect.ValueOf(f.columns(entity)[f.keys[0]]).Elem()
	if id.Uint() == 0 {
		id.SetUint(uint64(len(f.rows) + 1))
	}
	row := *entity
	f.rows = append(f.rows, &row)
	return nil
}

func (f *fakeRepo[T]) FindByID(ctx context.Context, key repository.Key) (*T, error) {
	return f.FindOne(ctx, repository.Filter(key))
}

func (f *fakeRepo[T]) FindOne(_ context.Context, filter repository.Filter) (*T, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, row := range f.rows {
		if f.matches(row, filter) {
			out := *row
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRepo[T]) FindAll(_ context.Context, filter repository.Filter, page repository.Page) ([]T, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]T, 0)
	for _, row := range f.rows {
		if f.matches(row, filter) {
			out = append(out, *row)
		}
	}
	if page.Skip >= len(out) {
		return []T{}, nil
	}
	out = out[page.Skip:]
	if page.Limit >= 0 && page.Limit < len(out) {
		out = out[:page.Limit]
	}
	return out, nil
}

func (f *fakeRepo[T]) Update(_ context.Context, key repository.Key, changes map[string]interface{}) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, row := range f.rows {
		if !f.matches(row, key) {
			continue
		}
		cols := f.columns(row)
		for col, v := range changes {
			if ptr, ok := cols[col]; ok {
				assign(reflect.ValueOf(ptr).Elem(), v)
			}
		}
		return nil
	}
	return repository.ErrNotFound
}

// assign sets field to v, allocating when field is a pointer to v's type.
func assign(field reflect.Value, v interface{}) {
	if v == nil {
		field.Set(reflect.Zero(field.Type()))
		return
	}
	val := reflect.ValueOf(v)
	if field.Kind() == reflect.Ptr && val.Type() == field.Type().Elem() {
		p := reflect.New(val.Type())
		p.Elem().Set(val)
		field.Set(p)
		return
	}
	field.Set(val)
}

func (f *fakeRepo[T]) Delete(_ context.Context, key repository.Key) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, row := range f.rows {
		if f.matches(row, key) {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeRepo[T]) Transaction(_ context.Context, fn func(tx repository.Repository[T]) error) error {
	f.transactions++
	return fn(f)
}

func categoryColumns(c *models.Category) map[string]interface{} {
	return map[string]interface{}{
		"category_id": &c.CategoryID,
		"name":        &c.Name,
		"description": &c.Description,
	}
}

func carColumns(c *models.Car) map[string]interface{} {
	return map[string]interface{}{
		"car_id":      &c.CarID,
		"category_id": &c.CategoryID,
		"modelnum":    &c.Modelnum,
		"color":       &c.Color,
		"available":   &c.Available,
		"image_link":  &c.ImageLink,
	}
}

func userColumns(u *models.User) map[string]interface{} {
	return map[string]interface{}{
		"user_id":  &u.UserID,
		"email":    &u.Email,
		"username": &u.Username,
		"password": &u.Password,
		"phone":    &u.Phone,
	}
}

func purchaseColumns(p *models.Purchase) map[string]interface{} {
	return map[string]interface{}{
		"purchase_id": &p.PurchaseID,
		"user_id":     &p.UserID,
		"status":      &p.Status,
	}
}

func orderColumns(o *models.Order) map[string]interface{} {
	return map[string]interface{}{
		"order_id":    &o.OrderID,
		"purchase_id": &o.PurchaseID,
		"status":      &o.Status,
	}
}

func orderItemColumns(i *models.OrderItem) map[string]interface{} {
	return map[string]interface{}{
		"order_item_id": &i.OrderItemID,
		"order_id":      &i.OrderID,
		"car_id":        &i.CarID,
		"quantity":      &i.Quantity,
	}
}

func reviewColumns(r *models.Review) map[string]interface{} {
	return map[string]interface{}{
		"review_id": &r.ReviewID,
		"car_id":    &r.CarID,
		"user_id":   &r.UserID,
		"rating":    &r.Rating,
		"comment":   &r.Comment,
	}
}

// fakeCarRepo adds canned aggregate results to a car fakeRepo.
type fakeCarRepo struct {
	*fakeRepo[models.Car]
	rated     []models.RatedCar
	details   *models.CarDetails
	aggErr    error
	lastLimit int
}

func newFakeCarRepo(cars ...models.Car) *fakeCarRepo {
	return &fakeCarRepo{fakeRepo: newFakeRepo(carColumns, "car_id").seed(cars...)}
}

func (f *fakeCarRepo) TopRated(_ context.Context, limit int) ([]models.RatedCar, error) {
	f.lastLimit = limit
	return f.rated, f.aggErr
}

func (f *fakeCarRepo) NewArrivals(_ context.Context, limit int) ([]models.Car, error) {
	f.lastLimit = limit
	return f.carsOrErr()
}

func (f *fakeCarRepo) BudgetFriendly(_ context.Context, limit int) ([]models.Car, error) {
	f.lastLimit = limit
	return f.carsOrErr()
}

func (f *fakeCarRepo) carsOrErr() ([]models.Car, error) {
	if f.aggErr != nil {
		return nil, f.aggErr
	}
	out := make([]models.Car, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCarRepo) Details(_ context.Context, _ uint) (*models.CarDetails, error) {
	if f.aggErr != nil {
		return nil, f.aggErr
	}
	if f.details == nil {
		return nil, repository.ErrNotFound
	}
	return f.details, nil
}

type fakeReviewRepo struct {
	*fakeRepo[models.Review]
	byCar []models.CarReview
}

func (f *fakeReviewRepo) FindByCar(_ context.Context, carID uint) ([]models.CarReview, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.CarReview, 0)
	for _, r := range f.byCar {
		if r.CarID == carID {
			out = append(out, r)
		}
	}
	return out, nil
}
