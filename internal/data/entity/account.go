package entity

type AccountRole string

const (
	RoleUser  AccountRole = "USER"
	RoleAdmin AccountRole = "ADMIN"
)

// Account is a backoffice login identity. Username, email and phone
// number must each be unique among live (non-deleted) accounts.
//
// Password is persisted exactly as received; no hashing happens in this
// service (see DESIGN.md).
type Account struct {
	Base
	Username    string      `db:"username"`
	Email       string      `db:"email"`
	PhoneNumber string      `db:"phone_number"`
	Password    string      `db:"password"`
	Role        AccountRole `db:"role"`
}

// NewAccount builds an account with the default USER role.
func NewAccount(username, email, phoneNumber, password string) *Account {
	return &Account{
		Username:    username,
		Email:       email,
		PhoneNumber: phoneNumber,
		Password:    password,
		Role:        RoleUser,
	}
}
