package models

import (
	"fmt"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of a car.
type Review struct {
	ReviewID  uint      `gorm:"primaryKey;column:review_id" json:"review_id"`
	CarID     uint      `gorm:"not null;index" json:"car_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   *string   `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

type ReviewCreateRequest struct {
	CarID   uint    `json:"car_id" binding:"required"`
	UserID  uint    `json:"user_id" binding:"required"`
	Rating  *int    `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (r ReviewCreateRequest) ToModel() *Review {
	return &Review{
		CarID:   r.CarID,
		UserID:  r.UserID,
		Rating:  *r.Rating,
		Comment: r.Comment,
	}
}

type ReviewUpdateRequest struct {
	Rating  Optional[int]    `json:"rating"`
	Comment Optional[string] `json:"comment"`
}

func (r ReviewUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "rating", r.Rating)
	put(c, "comment", r.Comment)
	return c
}

func (r ReviewUpdateRequest) Validate() error {
	if err := notNull("rating", r.Rating); err != nil {
		return err
	}
	if r.Rating.Valid && (r.Rating.Value < MinRating || r.Rating.Value > MaxRating) {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// CarReview is a review joined with its author's username.
type CarReview struct {
	Review   `gorm:"embedded"`
	Username *string `json:"username"`
}
