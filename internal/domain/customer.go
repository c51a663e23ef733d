package domain

// CustomerDetails is the shipping and contact information collected at
// checkout. It is validated before order creation and lives only inside the
// owning order afterwards.
type CustomerDetails struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,phone"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required,us_zip"`
	Country   string `json:"country" validate:"required"`
}

// FullName returns the customer's display name used in order search.
func (c CustomerDetails) FullName() string {
	return c.FirstName + " " + c.LastName
}
