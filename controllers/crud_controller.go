package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"github.com/hasanmehediii/CSE-2211-Project/services"
)

// keyParam maps a path parameter onto a primary key column.
type keyParam struct {
	param  string
	column string
}

// CrudController serves the five standard endpoints of one entity. C is the
// create payload and U the partial update payload.
type CrudController[T any, C models.Creator[T], U models.Patch] struct {
	service services.CrudService[T]
	entity  string
	keys    []keyParam
	filters []string
}

// NewCrudController serves an entity addressed by /:id. filters name the
// integer query parameters List may filter on.
func NewCrudController[T any, C models.Creator[T], U models.Patch](svc services.CrudService[T], entity, keyColumn string, filters ...string) *CrudController[T, C, U] {
	return &CrudController[T, C, U]{
		service: svc,
		entity:  entity,
		keys:    []keyParam{{param: "id", column: keyColumn}},
		filters: filters,
	}
}

// NewCompositeCrudController serves an entity addressed by several path
// parameters, each named after its key column.
func NewCompositeCrudController[T any, C models.Creator[T], U models.Patch](svc services.CrudService[T], entity string, keyColumns ...string) *CrudController[T, C, U] {
	keys := make([]keyParam, len(keyColumns))
	for i, col := range keyColumns {
		keys[i] = keyParam{param: col, column: col}
	}
	return &CrudController[T, C, U]{service: svc, entity: entity, keys: keys}
}

// KeyPath is the route suffix addressing one row, e.g. "/:id".
func (cc *CrudController[T, C, U]) KeyPath() string {
	path := ""
	for _, k := range cc.keys {
		path += "/:" + k.param
	}
	return path
}

func (cc *CrudController[T, C, U]) key(ctx *gin.Context) (repository.Key, bool) {
	key := make(repository.Key, len(cc.keys))
	for _, k := range cc.keys {
		id, ok := parseID(ctx, k.param)
		if !ok {
			return nil, false
		}
		key[k.column] = id
	}
	return key, true
}

// Create handles POST /
func (cc *CrudController[T, C, U]) Create(ctx *gin.Context) {
	var req C
	if !bindJSON(ctx, &req) {
		return
	}
	entity, svcErr := cc.service.Create(ctx.Request.Context(), req)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, entity)
}

// List handles GET /?skip=&limit=
func (cc *CrudController[T, C, U]) List(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	filter := repository.Filter{}
	for _, name := range cc.filters {
		raw := ctx.Query(name)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid " + name})
			return
		}
		filter[name] = uint(id)
	}
	rows, svcErr := cc.service.List(ctx.Request.Context(), filter, page)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// Get handles GET /:id
func (cc *CrudController[T, C, U]) Get(ctx *gin.Context) {
	key, ok := cc.key(ctx)
	if !ok {
		return
	}
	entity, svcErr := cc.service.Get(ctx.Request.Context(), key)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, entity)
}

// Update handles PUT and PATCH /:id
func (cc *CrudController[T, C, U]) Update(ctx *gin.Context) {
	key, ok := cc.key(ctx)
	if !ok {
		return
	}
	var req U
	if !bindJSON(ctx, &req) {
		return
	}
	entity, svcErr := cc.service.Update(ctx.Request.Context(), key, req)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, entity)
}

// Delete handles DELETE /:id
func (cc *CrudController[T, C, U]) Delete(ctx *gin.Context) {
	key, ok := cc.key(ctx)
	if !ok {
		return
	}
	if svcErr := cc.service.Delete(ctx.Request.Context(), key); svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": cc.entity + " deleted successfully"})
}
