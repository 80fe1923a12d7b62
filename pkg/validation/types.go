package validation

// UpdateOrderStatusRequest is the payload for PATCH /api/admin/orders/:id/status.
// Values outside the enum are rejected before any write.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,orderstatus"`
}

// UpdatePaymentStatusRequest is the payload for PATCH /api/admin/orders/:id/payment.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,paymentstatus"`
}

// ProductTypePayload is one variant row on the product form. Rows missing a
// name or price are dropped on save rather than rejected.
type ProductTypePayload struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image,omitempty"`
	Offer string `json:"offer,omitempty"`
}

// UpsertProductRequest is the payload for PUT /api/admin/products/:name.
type UpsertProductRequest struct {
	Brand     string               `json:"brand" validate:"required"`
	Category  string               `json:"category" validate:"required"`
	Types     []ProductTypePayload `json:"types" validate:"required,min=1"`
	MainImage string               `json:"mainImage,omitempty"`
}

// UpdateContactFormRequest is the payload for PATCH /api/admin/contact-forms/:id.
// Optional fields left out keep their stored values.
type UpdateContactFormRequest struct {
	Status       string  `json:"status" validate:"required,contactstatus"`
	ContactedVia *string `json:"contactedVia,omitempty"`
	AdminNotes   *string `json:"adminNotes,omitempty"`
	AssignedTo   *string `json:"assignedTo,omitempty"`
}

// LoginRequest is the payload for POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// NameRequest carries a brand or category name.
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// AddSliderRequest adds an already-uploaded image URL to the slider.
type AddSliderRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// RemoveSliderRequest removes the slider entry at Index. Pointer so index 0
// survives the required check.
type RemoveSliderRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

// ReorderSliderRequest moves the entry at From to position To.
type ReorderSliderRequest struct {
	From *int `json:"from" validate:"required,min=0"`
	To   *int `json:"to" validate:"required,min=0"`
}

// DeleteImagesRequest selects media library entries by index.
type DeleteImagesRequest struct {
	Indices []int `json:"indices" validate:"required,min=1,dive,min=0"`
}
