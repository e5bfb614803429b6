package models

// Student defines a registered student based on the 'students' table.
// StudentID is the campus-issued natural key used in URLs and logins.
type Student struct {
	ID           int64  `json:"-" db:"id"`
	StudentID    string `json:"studentId" db:"student_id" example:"12345678"`
	FirstName    string `json:"firstName" db:"first_name" example:"Ada"`
	LastName     string `json:"lastName" db:"last_name" example:"Lovelace"`
	Email        string `json:"email" db:"email" example:"ada@hawaii.edu"`
	PasswordHash string `json:"-" db:"password_hash"`
}
