package request

type CreateAccountRequest struct {
	Username    string `json:"username" validate:"required,min=1,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=1,max=255"`
	Password    string `json:"password" validate:"required,min=1,max=255"`
}

type UpdateAccountRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,min=1,max=255"`
	Password    string `json:"password" validate:"required,min=1,max=255"`
}
