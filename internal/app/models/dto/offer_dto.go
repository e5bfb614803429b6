package dto

// CreateOfferRequest represents an offer submission. Student and book are
// referenced by their natural keys and resolved during validation. Price and
// Quantity are parsed by the service so a blank form field reports Required
// instead of binding to zero.
type CreateOfferRequest struct {
	OfferID   string `form:"offerId" json:"offerId"`
	StudentID string `form:"studentId" json:"studentId"`
	ISBN      string `form:"isbn" json:"isbn"`
	Condition string `form:"condition" json:"condition"`
	Price     string `form:"price" json:"price"`
	Quantity  string `form:"quantity" json:"quantity"`
}
