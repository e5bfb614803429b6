package models

// Book defines a catalog entry based on the 'books' table. The ISBN is the
// natural key; the surrogate id never leaves the store layer's queries.
type Book struct {
	ID        int64   `json:"-" db:"id"`
	ISBN      string  `json:"isbn" db:"isbn" example:"978-3-16-148410-0"`
	Name      string  `json:"name" db:"name" example:"Introduction to Algorithms"`
	Authors   string  `json:"authors" db:"authors" example:"Cormen, Leiserson, Rivest, Stein"`
	Publisher string  `json:"publisher" db:"publisher" example:"MIT Press"`
	Price     float64 `json:"price" db:"price" example:"89.99"` // bookstore price of a new copy
	Edition   int     `json:"edition" db:"edition" example:"3"` // defaults to 1
}

// BookSearchFilter holds the optional criteria of a catalog search. Empty
// string fields add no predicate; EditionAtLeast/PriceAtMost are nil when the
// submitted value was absent or failed to parse.
type BookSearchFilter struct {
	ISBN           string
	Name           string
	Authors        string
	Publisher      string
	EditionAtLeast *int
	PriceAtMost    *float64
}
