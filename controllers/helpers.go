package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"github.com/hasanmehediii/CSE-2211-Project/services"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

var setupValidatorOnce sync.Once

// SetupValidator makes validation errors name fields by their JSON keys.
func SetupValidator() {
	setupValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the body into req, writing a 422 on failure.
func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request", "details": validationDetails(err)})
		return false
	}
	if v, ok := req.(models.Validatable); ok {
		if err := v.Validate(); err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid request", "details": err.Error()})
			return false
		}
	}
	return true
}

func validationDetails(err error) interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", rule)
	}
	return details
}

type pageQuery struct {
	Skip  int `form:"skip" binding:"min=0"`
	Limit int `form:"limit" binding:"min=0"`
}

// parsePage reads skip/limit, defaulting to 0/100.
func parsePage(ctx *gin.Context) (repository.Page, bool) {
	q := pageQuery{Skip: defaultSkip, Limit: defaultLimit}
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid pagination", "details": validationDetails(err)})
		return repository.Page{}, false
	}
	return repository.Page{Skip: q.Skip, Limit: q.Limit}, true
}

type topListQuery struct {
	Limit *int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// parseTopLimit reads the optional limit of a storefront list.
func parseTopLimit(ctx *gin.Context, fallback int) (int, bool) {
	var q topListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid limit", "details": validationDetails(err)})
		return 0, false
	}
	if q.Limit == nil {
		return fallback, true
	}
	return *q.Limit, true
}

// parseID reads a positive integer path parameter.
func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid " + param})
		return 0, false
	}
	return uint(id), true
}

func writeError(ctx *gin.Context, svcErr *services.ServiceError) {
	_ = ctx.Error(svcErr)
	ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
}
