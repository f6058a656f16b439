package services

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"go.uber.org/zap"
)

const (
	defaultUploadExpiry = 900
	maxUploadExpiry     = 3600
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ObjectPresigner issues presigned PUT URLs for an object store bucket.
type ObjectPresigner interface {
	PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	PublicURL(key string) string
}

// CarImageService hands out direct-upload URLs for car photos. The client
// uploads the file, then stores the public URL in the car's image_link.
type CarImageService interface {
	PresignUpload(ctx context.Context, carID uint, filename, contentType string, expiresSeconds int64) (*models.ImageUpload, *ServiceError)
}

type carImageServiceImpl struct {
	cars      repository.Repository[models.Car]
	presigner ObjectPresigner
	logger    *zap.Logger
}

// NewCarImageService creates a CarImageService. presigner may be nil when no
// object store is configured; uploads then fail with 503.
func NewCarImageService(cars repository.Repository[models.Car], presigner ObjectPresigner, logger *zap.Logger) CarImageService {
	return &carImageServiceImpl{cars: cars, presigner: presigner, logger: logger}
}

func (s *carImageServiceImpl) PresignUpload(ctx context.Context, carID uint, filename, contentType string, expiresSeconds int64) (*models.ImageUpload, *ServiceError) {
	if s.presigner == nil {
		return nil, &ServiceError{StatusCode: http.StatusServiceUnavailable, Message: "Image uploads are not configured"}
	}
	if !allowedImageTypes[contentType] {
		return nil, &ServiceError{
			StatusCode: http.StatusBadRequest,
			Message:    fmt.Sprintf("Invalid content type. Allowed: %s", strings.Join(allowedImageTypeList(), ", ")),
		}
	}
	if expiresSeconds <= 0 {
		expiresSeconds = defaultUploadExpiry
	}
	if expiresSeconds > maxUploadExpiry {
		expiresSeconds = maxUploadExpiry
	}

	if _, err := s.cars.FindByID(ctx, repository.ByID("car_id", carID)); err != nil {
		return nil, classify(s.logger, "Car", "get", err)
	}

	key := fmt.Sprintf("cars/%d/%s%s", carID, uuid.New().String(), strings.ToLower(filepath.Ext(filename)))
	url, err := s.presigner.PresignPut(ctx, key, contentType, time.Duration(expiresSeconds)*time.Second)
	if err != nil {
		s.logger.Error("Failed to presign car image upload", zap.Uint("car_id", carID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to generate presigned upload"}
	}

	return &models.ImageUpload{
		UploadURL: url,
		Method:    http.MethodPut,
		Key:       key,
		PublicURL: s.presigner.PublicURL(key),
		ExpiresIn: expiresSeconds,
	}, nil
}

func allowedImageTypeList() []string {
	types := make([]string, 0, len(allowedImageTypes))
	for t := range allowedImageTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
