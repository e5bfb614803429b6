package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/app/services"
	"github.com/textex/textex/internal/middleware"
	"github.com/textex/textex/internal/pkg/apperrors"
)

// StudentController handles student account endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// CreateStudent godoc
// @Summary Register a student
// @Description Registers a new account; the password is stored as a bcrypt hash
// @Tags students
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param student body dto.CreateStudentRequest true "Student details"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ve := apperrors.NewValidationError()
		ve.Add("body", apperrors.KindInvalid, "Malformed request body.")
		middleware.HandleAPIError(ctx, ve)
		return
	}

	student, err := c.studentService.CreateStudent(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// GetAllStudents godoc
// @Summary List registered students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(students) == 0 {
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("No students", students))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetStudent godoc
// @Summary Get a student by student ID
// @Tags students
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{studentId} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByStudentID(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeleteStudent godoc
// @Summary Delete a student
// @Description Removes the account; the student's offers and requests stay listed without an owner
// @Tags students
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /students/{studentId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deleted", nil))
}
