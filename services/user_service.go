package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/hasanmehediii/CSE-2211-Project/metrics"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	errInvalidCredentials = &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}
	errEmailTaken         = &ServiceError{StatusCode: http.StatusBadRequest, Message: "Email already registered"}
	errUsernameTaken      = &ServiceError{StatusCode: http.StatusBadRequest, Message: "Username already taken"}
)

// UserService manages accounts. Passwords are only ever stored as bcrypt hashes.
type UserService interface {
	CrudService[models.User]
	Register(ctx context.Context, req *models.UserCreateRequest) (*models.User, *ServiceError)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, *ServiceError)
}

type userServiceImpl struct {
	*crudServiceImpl[models.User]
	repo   repository.Repository[models.User]
	cost   int
	logger *zap.Logger
}

func NewUserService(repo repository.Repository[models.User], logger *zap.Logger) UserService {
	return newUserService(repo, bcrypt.DefaultCost, logger)
}

func newUserService(repo repository.Repository[models.User], cost int, logger *zap.Logger) *userServiceImpl {
	s := &userServiceImpl{
		crudServiceImpl: &crudServiceImpl[models.User]{repo: repo, entity: "User", logger: logger},
		repo:            repo,
		cost:            cost,
		logger:          logger,
	}
	s.crudServiceImpl.prepare = s.hashPasswordChange
	return s
}

// Create goes through registration so the uniqueness checks and hashing
// always apply.
func (s *userServiceImpl) Create(ctx context.Context, req models.Creator[models.User]) (*models.User, *ServiceError) {
	return s.register(ctx, req.ToModel())
}

func (s *userServiceImpl) Register(ctx context.Context, req *models.UserCreateRequest) (*models.User, *ServiceError) {
	return s.register(ctx, req.ToModel())
}

func (s *userServiceImpl) register(ctx context.Context, user *models.User) (*models.User, *ServiceError) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), s.cost)
	if err != nil {
		s.logger.Error("Password hashing failed", zap.Error(err))
		metrics.RecordAuthAttempt("register", "error")
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error hashing password"}
	}
	user.Password = string(hash)

	err = s.repo.Transaction(ctx, func(tx repository.Repository[models.User]) error {
		if err := ensureAbsent(ctx, tx, repository.Filter{"email": user.Email}, errEmailTaken); err != nil {
			return err
		}
		if err := ensureAbsent(ctx, tx, repository.Filter{"username": user.Username}, errUsernameTaken); err != nil {
			return err
		}
		return tx.Create(ctx, user)
	})

	var svcErr *ServiceError
	switch {
	case err == nil:
		metrics.RecordAuthAttempt("register", "success")
		s.logger.Info("User registered", zap.Uint("user_id", user.UserID))
		return user, nil
	case errors.As(err, &svcErr):
		metrics.RecordAuthAttempt("register", "conflict")
		return nil, svcErr
	case errors.Is(err, repository.ErrDuplicate):
		// Lost a race with a concurrent registration.
		metrics.RecordAuthAttempt("register", "conflict")
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Email or username already registered"}
	default:
		metrics.RecordAuthAttempt("register", "error")
		return nil, classify(s.logger, "User", "create", err)
	}
}

func ensureAbsent(ctx context.Context, tx repository.Repository[models.User], filter repository.Filter, conflict *ServiceError) error {
	_, err := tx.FindOne(ctx, filter)
	switch {
	case err == nil:
		return conflict
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return err
	}
}

// Login checks credentials. No session or token is issued.
func (s *userServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, *ServiceError) {
	user, err := s.repo.FindOne(ctx, repository.Filter{"email": req.Email})
	if errors.Is(err, repository.ErrNotFound) {
		metrics.RecordAuthAttempt("login", "rejected")
		return nil, errInvalidCredentials
	}
	if err != nil {
		metrics.RecordAuthAttempt("login", "error")
		return nil, classify(s.logger, "User", "get", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			metrics.RecordAuthAttempt("login", "rejected")
			return nil, errInvalidCredentials
		}
		s.logger.Error("Password verification failed", zap.Uint("user_id", user.UserID), zap.Error(err))
		metrics.RecordAuthAttempt("login", "error")
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error verifying password"}
	}

	metrics.RecordAuthAttempt("login", "success")
	return &models.LoginResponse{
		Message:  "Login successful",
		UserID:   user.UserID,
		Username: user.Username,
	}, nil
}

// hashPasswordChange replaces a plaintext password in an update with its hash.
func (s *userServiceImpl) hashPasswordChange(changes models.Changes) *ServiceError {
	password, ok := changes["password"].(string)
	if !ok {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		s.logger.Error("Password hashing failed", zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Error hashing password"}
	}
	changes["password"] = string(hash)
	return nil
}
