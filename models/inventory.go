package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const defaultReorderLevel = 5

// CarInventory is the stock of one car at one location.
type CarInventory struct {
	InventoryID  uint      `gorm:"primaryKey;column:inventory_id" json:"inventory_id"`
	CarID        uint      `gorm:"not null;index" json:"car_id"`
	Location     *string   `gorm:"size:100" json:"location"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	LastUpdated  time.Time `gorm:"autoUpdateTime" json:"last_updated"`
	ReorderLevel int       `gorm:"not null" json:"reorder_level"`
	Notes        *string   `gorm:"type:text" json:"notes"`
}

func (CarInventory) TableName() string { return "car_inventory" }

type CarInventoryCreateRequest struct {
	CarID        uint    `json:"car_id" binding:"required"`
	Location     *string `json:"location" binding:"omitempty,max=100"`
	Quantity     *int    `json:"quantity" binding:"required"`
	ReorderLevel *int    `json:"reorder_level"`
	Notes        *string `json:"notes"`
}

func (r CarInventoryCreateRequest) ToModel() *CarInventory {
	inv := &CarInventory{
		CarID:        r.CarID,
		Location:     r.Location,
		Quantity:     *r.Quantity,
		ReorderLevel: defaultReorderLevel,
		Notes:        r.Notes,
	}
	if r.ReorderLevel != nil {
		inv.ReorderLevel = *r.ReorderLevel
	}
	return inv
}

type CarInventoryUpdateRequest struct {
	CarID        Optional[uint]   `json:"car_id"`
	Location     Optional[string] `json:"location"`
	Quantity     Optional[int]    `json:"quantity"`
	ReorderLevel Optional[int]    `json:"reorder_level"`
	Notes        Optional[string] `json:"notes"`
}

func (r CarInventoryUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "car_id", r.CarID)
	put(c, "location", r.Location)
	put(c, "quantity", r.Quantity)
	put(c, "reorder_level", r.ReorderLevel)
	put(c, "notes", r.Notes)
	return c
}

func (r CarInventoryUpdateRequest) Validate() error {
	return firstError(
		notNull("car_id", r.CarID),
		notNull("quantity", r.Quantity),
		notNull("reorder_level", r.ReorderLevel),
		maxLen("location", r.Location, 100),
	)
}

// CarInventoryLog records a received batch. It is keyed by the inventory
// record and the car together.
type CarInventoryLog struct {
	InventoryID       uint                `gorm:"primaryKey;autoIncrement:false;column:inventory_id" json:"inventory_id"`
	CarID             uint                `gorm:"primaryKey;autoIncrement:false;column:car_id" json:"car_id"`
	Quantity          int                 `gorm:"not null" json:"quantity"`
	UnitPrice         decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"unit_price"`
	TotalValue        decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"total_value"`
	Condition         *string             `gorm:"size:50" json:"condition"`
	WarehouseLocation *string             `gorm:"size:100" json:"warehouse_location"`
	BatchCode         *string             `gorm:"size:50" json:"batch_code"`
	ReceivedDate      Date                `json:"received_date"`
	ExpirationDate    Date                `json:"expiration_date"`
}

func (CarInventoryLog) TableName() string { return "car_inventory_log" }

type CarInventoryLogCreateRequest struct {
	InventoryID       uint                `json:"inventory_id" binding:"required"`
	CarID             uint                `json:"car_id" binding:"required"`
	Quantity          *int                `json:"quantity" binding:"required"`
	UnitPrice         decimal.NullDecimal `json:"unit_price"`
	TotalValue        decimal.NullDecimal `json:"total_value"`
	Condition         *string             `json:"condition" binding:"omitempty,max=50"`
	WarehouseLocation *string             `json:"warehouse_location" binding:"omitempty,max=100"`
	BatchCode         *string             `json:"batch_code" binding:"omitempty,max=50"`
	ReceivedDate      Date                `json:"received_date"`
	ExpirationDate    Date                `json:"expiration_date"`
}

func (r CarInventoryLogCreateRequest) ToModel() *CarInventoryLog {
	return &CarInventoryLog{
		InventoryID:       r.InventoryID,
		CarID:             r.CarID,
		Quantity:          *r.Quantity,
		UnitPrice:         r.UnitPrice,
		TotalValue:        r.TotalValue,
		Condition:         r.Condition,
		WarehouseLocation: r.WarehouseLocation,
		BatchCode:         r.BatchCode,
		ReceivedDate:      r.ReceivedDate,
		ExpirationDate:    r.ExpirationDate,
	}
}

// CarInventoryLogUpdateRequest never touches the key columns.
type CarInventoryLogUpdateRequest struct {
	Quantity          Optional[int]             `json:"quantity"`
	UnitPrice         Optional[decimal.Decimal] `json:"unit_price"`
	TotalValue        Optional[decimal.Decimal] `json:"total_value"`
	Condition         Optional[string]          `json:"condition"`
	WarehouseLocation Optional[string]          `json:"warehouse_location"`
	BatchCode         Optional[string]          `json:"batch_code"`
	ReceivedDate      Optional[Date]            `json:"received_date"`
	ExpirationDate    Optional[Date]            `json:"expiration_date"`
}

func (r CarInventoryLogUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "quantity", r.Quantity)
	put(c, "unit_price", r.UnitPrice)
	put(c, "total_value", r.TotalValue)
	put(c, "condition", r.Condition)
	put(c, "warehouse_location", r.WarehouseLocation)
	put(c, "batch_code", r.BatchCode)
	put(c, "received_date", r.ReceivedDate)
	put(c, "expiration_date", r.ExpirationDate)
	return c
}

func (r CarInventoryLogUpdateRequest) Validate() error {
	return firstError(
		notNull("quantity", r.Quantity),
		maxLen("condition", r.Condition, 50),
		maxLen("warehouse_location", r.WarehouseLocation, 100),
		maxLen("batch_code", r.BatchCode, 50),
	)
}
