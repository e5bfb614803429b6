package dto

// CreateBookRequest represents a book creation submission. Price and Edition
// stay strings here: a form always submits every input, so the service needs
// to see the raw value to tell a blank field from a submitted zero. A blank
// edition defaults to 1; a blank price is a missing required field.
type CreateBookRequest struct {
	ISBN      string `form:"isbn" json:"isbn"`
	Name      string `form:"name" json:"name"`
	Authors   string `form:"authors" json:"authors"`
	Publisher string `form:"publisher" json:"publisher"`
	Price     string `form:"price" json:"price"`
	Edition   string `form:"edition" json:"edition"`
}

// BookSearchQuery represents the optional catalog search criteria as
// submitted. Edition and Price stay strings here: values that fail to parse
// are skipped by the service, not rejected.
type BookSearchQuery struct {
	ISBN      string `form:"isbn" json:"isbn"`
	Name      string `form:"name" json:"name"`
	Authors   string `form:"authors" json:"authors"`
	Publisher string `form:"publisher" json:"publisher"`
	Edition   string `form:"edition" json:"edition"`
	Price     string `form:"price" json:"price"`
}
