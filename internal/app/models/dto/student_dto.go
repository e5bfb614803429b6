package dto

// CreateStudentRequest represents a student registration submission.
type CreateStudentRequest struct {
	StudentID string `form:"studentId" json:"studentId"`
	FirstName string `form:"firstName" json:"firstName"`
	LastName  string `form:"lastName" json:"lastName"`
	Email     string `form:"email" json:"email"`
	Password  string `form:"password" json:"password"`
}
