package entity

type Customer struct {
	Base
	Name    string `db:"name"`
	Address string `db:"address"`
}

func NewCustomer(name, address string) *Customer {
	return &Customer{
		Name:    name,
		Address: address,
	}
}
