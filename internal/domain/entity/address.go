package entity

// Address is the postal address of a business.
type Address struct {
	Street       string
	Number       string
	Neighborhood string
	PostalCode   string
	Complement   string
	City         string
	State        string
}
