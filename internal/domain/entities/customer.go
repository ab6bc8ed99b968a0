package entities

import "time"

// Customer is the identity/contact record, uniquely keyed by the
// normalized tax id. Links holds the back-references written by the
// link-propagation stage, keyed by the concrete field names from the
// CustomerLinkFields capability map.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	TaxID        string    `json:"tax_id"`
	CustomerType string    `json:"customer_type"`
	DateOfBirth  time.Time `json:"date_of_birth"`
	CEP          string    `json:"cep"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Gender       string    `json:"gender"`
	Age          int       `json:"age"`
	Numero       string    `json:"numero"`

	IsMT bool `json:"is_mt"`
	IsSF bool `json:"is_sf"`
	IsGE bool `json:"is_ge"`
	IsEP bool `json:"is_ep"`
	IsCB bool `json:"is_cb"`

	Links map[string]string `json:"links"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetLink stores a back-reference under a concrete field name.
func (c *Customer) SetLink(field, id string) {
	if c.Links == nil {
		c.Links = make(map[string]string, 3)
	}
	c.Links[field] = id
}

// Merge copies the non-identity fields of src into c, preserving c's ID
// and existing links. Used by the update branch of find-or-create.
func (c *Customer) Merge(src Customer) {
	c.Name = src.Name
	c.TaxID = src.TaxID
	c.CustomerType = src.CustomerType
	if !src.DateOfBirth.IsZero() {
		c.DateOfBirth = src.DateOfBirth
	}
	if src.CEP != "" {
		c.CEP = src.CEP
	}
	if src.Phone != "" {
		c.Phone = src.Phone
	}
	if src.Email != "" {
		c.Email = src.Email
	}
	if src.Gender != "" {
		c.Gender = src.Gender
	}
	if src.Age != 0 {
		c.Age = src.Age
	}
	if src.Numero != "" {
		c.Numero = src.Numero
	}
	c.IsMT = src.IsMT
	c.IsSF = src.IsSF
	c.IsGE = src.IsGE
	c.IsEP = src.IsEP
	c.IsCB = src.IsCB
}
