package models

const defaultShippingStatus = "pending"

// Shipping tracks the delivery of an order by an employee.
type Shipping struct {
	ShipID           uint    `gorm:"primaryKey;column:ship_id" json:"ship_id"`
	EmpID            uint    `gorm:"not null;index" json:"emp_id"`
	OrderID          uint    `gorm:"not null;index" json:"order_id"`
	ShippingProvider *string `gorm:"size:100" json:"shipping_provider"`
	TrackingNumber   *string `gorm:"size:100" json:"tracking_number"`
	Status           string  `gorm:"size:30;not null" json:"status"`
	ShippedDate      Date    `json:"shipped_date"`
	DeliveryDate     Date    `json:"delivery_date"`
	DeliveryAddress  *string `gorm:"type:text" json:"delivery_address"`
	Remarks          *string `gorm:"type:text" json:"remarks"`
}

func (Shipping) TableName() string { return "shipping" }

type ShippingCreateRequest struct {
	EmpID            uint    `json:"emp_id" binding:"required"`
	OrderID          uint    `json:"order_id" binding:"required"`
	ShippingProvider *string `json:"shipping_provider" binding:"omitempty,max=100"`
	TrackingNumber   *string `json:"tracking_number" binding:"omitempty,max=100"`
	Status           *string `json:"status" binding:"omitempty,max=30"`
	ShippedDate      Date    `json:"shipped_date"`
	DeliveryDate     Date    `json:"delivery_date"`
	DeliveryAddress  *string `json:"delivery_address"`
	Remarks          *string `json:"remarks"`
}

func (r ShippingCreateRequest) ToModel() *Shipping {
	s := &Shipping{
		EmpID:            r.EmpID,
		OrderID:          r.OrderID,
		ShippingProvider: r.ShippingProvider,
		TrackingNumber:   r.TrackingNumber,
		Status:           defaultShippingStatus,
		ShippedDate:      r.ShippedDate,
		DeliveryDate:     r.DeliveryDate,
		DeliveryAddress:  r.DeliveryAddress,
		Remarks:          r.Remarks,
	}
	if r.Status != nil {
		s.Status = *r.Status
	}
	return s
}

type ShippingUpdateRequest struct {
	EmpID            Optional[uint]   `json:"emp_id"`
	OrderID          Optional[uint]   `json:"order_id"`
	ShippingProvider Optional[string] `json:"shipping_provider"`
	TrackingNumber   Optional[string] `json:"tracking_number"`
	Status           Optional[string] `json:"status"`
	ShippedDate      Optional[Date]   `json:"shipped_date"`
	DeliveryDate     Optional[Date]   `json:"delivery_date"`
	DeliveryAddress  Optional[string] `json:"delivery_address"`
	Remarks          Optional[string] `json:"remarks"`
}

func (r ShippingUpdateRequest) Changes() Changes {
	c := Changes{}
	put(c, "emp_id", r.EmpID)
	put(c, "order_id", r.OrderID)
	put(c, "shipping_provider", r.ShippingProvider)
	put(c, "tracking_number", r.TrackingNumber)
	put(c, "status", r.Status)
	put(c, "shipped_date", r.ShippedDate)
	put(c, "delivery_date", r.DeliveryDate)
	put(c, "delivery_address", r.DeliveryAddress)
	put(c, "remarks", r.Remarks)
	return c
}

func (r ShippingUpdateRequest) Validate() error {
	return firstError(
		notNull("emp_id", r.EmpID),
		notNull("order_id", r.OrderID),
		notNull("status", r.Status),
		maxLen("shipping_provider", r.ShippingProvider, 100),
		maxLen("tracking_number", r.TrackingNumber, 100),
		maxLen("status", r.Status, 30),
	)
}
