package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/app/services"
	"github.com/textex/textex/internal/middleware"
	"github.com/textex/textex/internal/pkg/apperrors"
)

// BookController handles catalog endpoints
type BookController struct {
	bookService services.BookService
}

// NewBookController creates a new BookController
func NewBookController(bookService services.BookService) *BookController {
	return &BookController{bookService: bookService}
}

// CreateBook godoc
// @Summary Add a book to the catalog
// @Description Creates a catalog entry; edition defaults to 1 when omitted
// @Tags books
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param book body dto.CreateBookRequest true "Book details"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /books [post]
func (c *BookController) CreateBook(ctx *gin.Context) {
	var req dto.CreateBookRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ve := apperrors.NewValidationError()
		ve.Add("body", apperrors.KindInvalid, "Malformed request body.")
		middleware.HandleAPIError(ctx, ve)
		return
	}

	book, err := c.bookService.CreateBook(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(book))
}

// GetAllBooks godoc
// @Summary List the catalog
// @Description Returns all books sorted by ISBN
// @Tags books
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /books [get]
func (c *BookController) GetAllBooks(ctx *gin.Context) {
	books, err := c.bookService.GetAllBooks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(books) == 0 {
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("No books", books))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(books))
}

// SearchBooks godoc
// @Summary Search the catalog
// @Description Filters books by substring and numeric criteria; unparseable numeric criteria are ignored
// @Tags books
// @Produce json
// @Param isbn query string false "ISBN substring"
// @Param name query string false "Title substring"
// @Param authors query string false "Authors substring"
// @Param publisher query string false "Publisher substring"
// @Param edition query string false "Minimum edition"
// @Param price query string false "Maximum price"
// @Success 200 {object} dto.APIResponse
// @Router /books/search [get]
func (c *BookController) SearchBooks(ctx *gin.Context) {
	var query dto.BookSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ve := apperrors.NewValidationError()
		ve.Add("query", apperrors.KindInvalid, "Malformed query string.")
		middleware.HandleAPIError(ctx, ve)
		return
	}

	books, err := c.bookService.SearchBooks(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(books) == 0 {
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("No books", books))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(books))
}

// GetBook godoc
// @Summary Get a book by ISBN
// @Tags books
// @Produce json
// @Param isbn path string true "ISBN"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /books/{isbn} [get]
func (c *BookController) GetBook(ctx *gin.Context) {
	book, err := c.bookService.GetBookByISBN(ctx, ctx.Param("isbn"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(book))
}

// DeleteBook godoc
// @Summary Delete a book
// @Description Removes the book and cascades to its offers and requests; deleting an unknown ISBN still succeeds
// @Tags books
// @Produce json
// @Param isbn path string true "ISBN"
// @Success 200 {object} dto.APIResponse
// @Router /books/{isbn} [delete]
func (c *BookController) DeleteBook(ctx *gin.Context) {
	if err := c.bookService.DeleteBook(ctx, ctx.Param("isbn")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Book deleted", nil))
}
