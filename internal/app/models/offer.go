package models

// Offer defines a listing to sell copies of a book, based on the 'offers'
// table. The owning student reference is nullable: deleting a student leaves
// its offers in place with no owner.
type Offer struct {
	ID        int64     `json:"-" db:"id"`
	OfferID   string    `json:"offerId" db:"offer_id" example:"offer-001"`
	Condition Condition `json:"condition" db:"condition" example:"SLIGHTLY_USED"`
	Price     float64   `json:"price" db:"price" example:"45.50"`
	Quantity  int       `json:"quantity" db:"quantity" example:"1"` // at least 1

	// Relations (populated by the repository joins)
	Student *Student `json:"student,omitempty"`
	Book    *Book    `json:"book,omitempty"`
}
