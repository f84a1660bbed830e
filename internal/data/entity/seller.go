package entity

type Seller struct {
	Base
	Name    string `db:"name"`
	Address string `db:"address"`
}

func NewSeller(name, address string) *Seller {
	return &Seller{
		Name:    name,
		Address: address,
	}
}
