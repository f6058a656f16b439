package models

import "github.com/shopspring/decimal"

const (
	defaultPurchaseStatus = "pending"
	defaultOrderStatus    = "processing"
)

// Purchase is a payment made by a user; it may be fulfilled by several orders.
type Purchase struct {
	PurchaseID    uint                `gorm:"primaryKey;column:purchase_id" json:"purchase_id"`
	UserID        uint                `gorm:"not null;index" json:"user_id"`
	Date          Date                `json:"date"`
	Amount        decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"amount"`
	PaymentMethod *string             `gorm:"size:50" json:"payment_method"`
	Status        string              `gorm:"size:30;not null" json:"status"`
	InvoiceNumber *string             `gorm:"size:100;uniqueIndex" json:"invoice_number"`
	Notes         *string             `gorm:"type:text" json:"notes"`
}

func (Purchase) TableName() string { return "purchase" }

type PurchaseCreateRequest struct {
	UserID        uint                `json:"user_id" binding:"required"`
	Date          Date                `json:"date"`
	Amount        decimal.NullDecimal `json:"amount"`
	PaymentMethod *string             `json:"payment_method" binding:"omitempty,max=50"`
	Status        *string             `json:"status" binding:"omitempty,max=30"`
	InvoiceNumber *string             `json:"invoice_number" binding:"omitempty,max=100"`
	Notes         *string             `json:"notes"`
}

func (r PurchaseCreateRequest) ToModel() *Purchase {
	p := &Purchase{
		UserID:        r.UserID,
		Date:          r.Date,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		Status:        defaultPurchaseStatus,
		InvoiceNumber: r.InvoiceNumber,
		Notes:         r.Notes,
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if p.Date.IsZero() {
		p.Date = Today()
	}
	return p
}

type PurchaseUpdateRequest struct {
	UserID        Optional[uint]            `json:"user_id"`
	Date          Optional[Date]            `json:"date"`
	Amount        Optional[decimal.Decimal] `json:"amount"`
	PaymentMethod Optional[string]          `json:"payment_method"`
	Status        Optional[string]          `json:"status"`
	InvoiceNumber Optional[string]          `json:"invoice_number"`
	Notes         Optional[string]          `json:"notes"`
}

func (r PurchaseUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "user_id", r.UserID)
	put(c, "date", r.Date)
	put(c, "amount", r.Amount)
	put(c, "payment_method", r.PaymentMethod)
	put(c, "status", r.Status)
	put(c, "invoice_number", r.InvoiceNumber)
	put(c, "notes", r.Notes)
	return c
}

func (r PurchaseUpdateRequest) Validate() error {
	return firstError(
		notNull("user_id", r.UserID),
		notNull("status", r.Status),
		maxLen("payment_method", r.PaymentMethod, 50),
		maxLen("status", r.Status, 30),
		maxLen("invoice_number", r.InvoiceNumber, 100),
	)
}

// Order is one delivery that fulfils part or all of a purchase.
type Order struct {
	OrderID          uint    `gorm:"primaryKey;column:order_id" json:"order_id"`
	PurchaseID       uint    `gorm:"not null;index" json:"purchase_id"`
	Date             Date    `json:"date"`
	Status           string  `gorm:"size:30;not null" json:"status"`
	ShippingAddress  *string `gorm:"type:text" json:"shipping_address"`
	TrackingNumber   *string `gorm:"size:100" json:"tracking_number"`
	ExpectedDelivery Date    `json:"expected_delivery"`
}

func (Order) TableName() string { return "orders" }

type OrderCreateRequest struct {
	PurchaseID       uint    `json:"purchase_id" binding:"required"`
	Date             Date    `json:"date"`
	Status           *string `json:"status" binding:"omitempty,max=30"`
	ShippingAddress  *string `json:"shipping_address"`
	TrackingNumber   *string `json:"tracking_number" binding:"omitempty,max=100"`
	ExpectedDelivery Date    `json:"expected_delivery"`
}

func (r OrderCreateRequest) ToModel() *Order {
	o := &Order{
		PurchaseID:       r.PurchaseID,
		Date:             r.Date,
		Status:           defaultOrderStatus,
		ShippingAddress:  r.ShippingAddress,
		TrackingNumber:   r.TrackingNumber,
		ExpectedDelivery: r.ExpectedDelivery,
	}
	if r.Status != nil {
		o.Status = *r.Status
	}
	if o.Date.IsZero() {
		o.Date = Today()
	}
	return o
}

type OrderUpdateRequest struct {
	PurchaseID       Optional[uint]   `json:"purchase_id"`
	Date             Optional[Date]   `json:"date"`
	Status           Optional[string] `json:"status"`
	ShippingAddress  Optional[string] `json:"shipping_address"`
	TrackingNumber   Optional[string] `json:"tracking_number"`
	ExpectedDelivery Optional[Date]   `json:"expected_delivery"`
}

func (r OrderUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "purchase_id", r.PurchaseID)
	put(c, "date", r.Date)
	put(c, "status", r.Status)
	put(c, "shipping_address", r.ShippingAddress)
	put(c, "tracking_number", r.TrackingNumber)
	put(c, "expected_delivery", r.ExpectedDelivery)
	return c
}

func (r OrderUpdateRequest) Validate() error {
	return firstError(
		notNull("purchase_id", r.PurchaseID),
		notNull("status", r.Status),
		maxLen("status", r.Status, 30),
		maxLen("tracking_number", r.TrackingNumber, 100),
	)
}

// OrderItem is one line of an order.
type OrderItem struct {
	OrderItemID uint                `gorm:"primaryKey;column:order_item_id" json:"order_item_id"`
	OrderID     uint                `gorm:"not null;index" json:"order_id"`
	CarID       uint                `gorm:"not null;index" json:"car_id"`
	Quantity    int                 `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"unit_price"`
}

func (OrderItem) TableName() string { return "order_items" }

type OrderItemCreateRequest struct {
	OrderID   uint                `json:"order_id" binding:"required"`
	CarID     uint                `json:"car_id" binding:"required"`
	Quantity  *int                `json:"quantity" binding:"required"`
	UnitPrice decimal.NullDecimal `json:"unit_price"`
}

func (r OrderItemCreateRequest) ToModel() *OrderItem {
	return &OrderItem{
		OrderID:   r.OrderID,
		CarID:     r.CarID,
		Quantity:  *r.Quantity,
		UnitPrice: r.UnitPrice,
	}
}

type OrderItemUpdateRequest struct {
	OrderID   Optional[uint]            `json:"order_id"`
	CarID     Optional[uint]            `json:"car_id"`
	Quantity  Optional[int]             `json:"quantity"`
	UnitPrice Optional[decimal.Decimal] `json:"unit_price"`
}

func (r OrderItemUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "order_id", r.OrderID)
	put(c, "car_id", r.CarID)
	put(c, "quantity", r.Quantity)
	put(c, "unit_price", r.UnitPrice)
	return c
}

func (r OrderItemUpdateRequest) Validate() error {
	return firstError(
		notNull("order_id", r.OrderID),
		notNull("car_id", r.CarID),
		notNull("quantity", r.Quantity),
	)
}
