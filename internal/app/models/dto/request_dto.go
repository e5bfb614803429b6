package dto

// CreateRequestRequest represents a buy-request submission. Condition is
// optional; an empty value means any condition is acceptable. Price and
// Quantity are parsed by the service so a blank form field reports Required
// instead of binding to zero.
type CreateRequestRequest struct {
	RequestID string `form:"requestId" json:"requestId"`
	StudentID string `form:"studentId" json:"studentId"`
	ISBN      string `form:"isbn" json:"isbn"`
	Condition string `form:"condition" json:"condition"`
	Price     string `form:"price" json:"price"`
	Quantity  string `form:"quantity" json:"quantity"`
}
