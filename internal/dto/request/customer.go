package request

type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Address string `json:"address" validate:"required,min=1,max=255"`
}

// UpdateCustomerRequest uses pointers for partial-update semantics:
// a nil field is left unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=255"`
	Address *string `json:"address" validate:"omitempty,min=1,max=255"`
}
