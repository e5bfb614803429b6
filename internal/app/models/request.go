package models

// Request defines a posted interest in buying a book, based on the
// 'requests' table. Condition is optional: nil means any condition is
// acceptable. The owning student reference is nullable, same as Offer.
type Request struct {
	ID        int64      `json:"-" db:"id"`
	RequestID string     `json:"requestId" db:"request_id" example:"request-001"`
	Condition *Condition `json:"condition,omitempty" db:"condition" example:"NEW"`
	Price     float64    `json:"price" db:"price" example:"30.00"`
	Quantity  int        `json:"quantity" db:"quantity" example:"1"` // zero is allowed

	// Relations (populated by the repository joins)
	Student *Student `json:"student,omitempty"`
	Book    *Book    `json:"book,omitempty"`
}
