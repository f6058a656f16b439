package models

// UserDetail is a user with its purchases and reviews.
type UserDetail struct {
	User
	Purchases []Purchase `json:"purchases"`
	Reviews   []Review   `json:"reviews"`
}

// OrderDetail is an order with its line items.
type OrderDetail struct {
	Order
	OrderItems []OrderItem `json:"order_items"`
}

// PurchaseDetail is a purchase with its orders and buyer.
type PurchaseDetail struct {
	Purchase
	Orders []Order `json:"orders"`
	User   *User   `json:"user"`
}

// ImageUpload describes a presigned upload for a car image.
type ImageUpload struct {
	UploadURL string `json:"upload_url"`
	Method    string `json:"method"`
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
	ExpiresIn int64  `json:"expires_in"`
}

// AdminCarUpdateRequest is a car update limited to the back-office columns;
// added_date is not editable there.
type AdminCarUpdateRequest struct {
	CarUpdateRequest
}

func (r AdminCarUpdateRequest) Changes() Changes {
	c := r.CarUpdateRequest.Changes()
	delete(c, "added_date")
	return c
}
