package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money is exchanged as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Category groups cars, e.g. "SUV" or "Sedan".
type Category struct {
	CategoryID  uint      `gorm:"primaryKey;column:category_id" json:"category_id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }

type CategoryCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
}

func (r CategoryCreateRequest) ToModel() *Category {
	return &Category{Name: r.Name, Description: r.Description}
}

type CategoryUpdateRequest struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
}

func (r CategoryUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "name", r.Name)
	put(c, "description", r.Description)
	return c
}

func (r CategoryUpdateRequest) Validate() error {
	return firstError(
		notNull("name", r.Name),
		maxLen("name", r.Name, 100),
	)
}

// Car is a vehicle listed in the catalog.
type Car struct {
	CarID           uint                `gorm:"primaryKey;column:car_id" json:"car_id"`
	CategoryID      uint                `gorm:"not null;index" json:"category_id"`
	Modelnum        string              `gorm:"size:50;not null" json:"modelnum"`
	Manufacturer    *string             `gorm:"size:100" json:"manufacturer"`
	ModelName       *string             `gorm:"size:100" json:"model_name"`
	Year            *int                `json:"year"`
	EngineType      *string             `gorm:"size:50" json:"engine_type"`
	Transmission    *string             `gorm:"size:30" json:"transmission"`
	Color           *string             `gorm:"size:30" json:"color"`
	Mileage         *int                `json:"mileage"`
	FuelCapacity    decimal.NullDecimal `gorm:"type:numeric(5,2)" json:"fuel_capacity"`
	SeatingCapacity *int                `json:"seating_capacity"`
	Price           decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"price"`
	Available       bool                `gorm:"not null" json:"available"`
	AddedDate       Date                `gorm:"index" json:"added_date"`
	ImageLink       *string             `gorm:"size:255" json:"image_link"`
}

func (Car) TableName() string { return "cars" }

type CarCreateRequest struct {
	CategoryID      uint                `json:"category_id" binding:"required"`
	Modelnum        string              `json:"modelnum" binding:"required,max=50"`
	Manufacturer    *string             `json:"manufacturer" binding:"omitempty,max=100"`
	ModelName       *string             `json:"model_name" binding:"omitempty,max=100"`
	Year            *int                `json:"year"`
	EngineType      *string             `json:"engine_type" binding:"omitempty,max=50"`
	Transmission    *string             `json:"transmission" binding:"omitempty,max=30"`
	Color           *string             `json:"color" binding:"omitempty,max=30"`
	Mileage         *int                `json:"mileage"`
	FuelCapacity    decimal.NullDecimal `json:"fuel_capacity"`
	SeatingCapacity *int                `json:"seating_capacity"`
	Price           decimal.NullDecimal `json:"price"`
	Available       *bool               `json:"available"`
	AddedDate       Date                `json:"added_date"`
	ImageLink       *string             `json:"image_link" binding:"omitempty,max=255"`
}

func (r CarCreateRequest) ToModel() *Car {
	car := &Car{
		CategoryID:      r.CategoryID,
		Modelnum:        r.Modelnum,
		Manufacturer:    r.Manufacturer,
		ModelName:       r.ModelName,
		Year:            r.Year,
		EngineType:      r.EngineType,
		Transmission:    r.Transmission,
		Color:           r.Color,
		Mileage:         r.Mileage,
		FuelCapacity:    r.FuelCapacity,
		SeatingCapacity: r.SeatingCapacity,
		Price:           r.Price,
		Available:       true,
		AddedDate:       r.AddedDate,
		ImageLink:       r.ImageLink,
	}
	if r.Available != nil {
		car.Available = *r.Available
	}
	if car.AddedDate.IsZero() {
		car.AddedDate = Today()
	}
	return car
}

// CarUpdateRequest lists every column a car update may touch.
type CarUpdateRequest struct {
	CategoryID      Optional[uint]            `json:"category_id"`
	Modelnum        Optional[string]          `json:"modelnum"`
	Manufacturer    Optional[string]          `json:"manufacturer"`
	ModelName       Optional[string]          `json:"model_name"`
	Year            Optional[int]             `json:"year"`
	EngineType      Optional[string]          `json:"engine_type"`
	Transmission    Optional[string]          `json:"transmission"`
	Color           Optional[string]          `json:"color"`
	Mileage         Optional[int]             `json:"mileage"`
	FuelCapacity    Optional[decimal.Decimal] `json:"fuel_capacity"`
	SeatingCapacity Optional[int]             `json:"seating_capacity"`
	Price           Optional[decimal.Decimal] `json:"price"`
	Available       Optional[bool]            `json:"available"`
	AddedDate       Optional[Date]            `json:"added_date"`
	ImageLink       Optional[string]          `json:"image_link"`
}

func (r CarUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "category_id", r.CategoryID)
	put(c, "modelnum", r.Modelnum)
	put(c, "manufacturer", r.Manufacturer)
	put(c, "model_name", r.ModelName)
	put(c, "year", r.Year)
	put(c, "engine_type", r.EngineType)
	put(c, "transmission", r.Transmission)
	put(c, "color", r.Color)
	put(c, "mileage", r.Mileage)
	put(c, "fuel_capacity", r.FuelCapacity)
	put(c, "seating_capacity", r.SeatingCapacity)
	put(c, "price", r.Price)
	put(c, "available", r.Available)
	put(c, "added_date", r.AddedDate)
	put(c, "image_link", r.ImageLink)
	return c
}

func (r CarUpdateRequest) Validate() error {
	return firstError(
		notNull("category_id", r.CategoryID),
		notNull("modelnum", r.Modelnum),
		notNull("available", r.Available),
		maxLen("modelnum", r.Modelnum, 50),
		maxLen("manufacturer", r.Manufacturer, 100),
		maxLen("model_name", r.ModelName, 100),
		maxLen("engine_type", r.EngineType, 50),
		maxLen("transmission", r.Transmission, 30),
		maxLen("color", r.Color, 30),
		maxLen("image_link", r.ImageLink, 255),
	)
}

// RatedCar is a car row with the mean rating of its reviews, nil when it has none.
type RatedCar struct {
	Car           `gorm:"embedded"`
	AverageRating *float64 `json:"average_rating"`
}

// CarDetails backs the product page: the car, its rating summary, stock and category.
type CarDetails struct {
	Car
	AverageRating *float64 `json:"average_rating"`
	ReviewCount   int64    `json:"review_count"`
	Quantity      int64    `json:"quantity"`
	CategoryName  string   `json:"category_name"`
	Description   *string  `json:"description"`
}
