package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/services"
)

// UserController serves accounts. Create is registration.
type UserController struct {
	*CrudController[models.User, models.UserCreateRequest, models.UserUpdateRequest]
	userService services.UserService
}

func NewUserController(svc services.UserService) *UserController {
	return &UserController{
		CrudController: NewCrudController[models.User, models.UserCreateRequest, models.UserUpdateRequest](svc, "User", "user_id"),
		userService:    svc,
	}
}

// Register handles POST /users/
func (uc *UserController) Register(ctx *gin.Context) {
	var req models.UserCreateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	user, svcErr := uc.userService.Register(ctx.Request.Context(), &req)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login handles POST /users/login
func (uc *UserController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}
	resp, svcErr := uc.userService.Login(ctx.Request.Context(), &req)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
