package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textex/textex/internal/app/models"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/app/services"
	"github.com/textex/textex/internal/pkg/apperrors"
)

// memoryBookStore satisfies services.BookStore so the endpoint tests run the
// real controller and service over HTTP.
type memoryBookStore struct {
	books  map[string]*models.Book
	nextID int64
}

func newMemoryBookStore(books ...*models.Book) *memoryBookStore {
	s := &memoryBookStore{books: map[string]*models.Book{}}
	for _, b := range books {
		s.books[b.ISBN] = b
	}
	return s
}

func (s *memoryBookStore) Create(_ context.Context, book *models.Book) (int64, error) {
	if _, ok := s.books[book.ISBN]; ok {
		return 0, apperrors.ErrAlreadyExists
	}
	s.nextID++
	book.ID = s.nextID
	s.books[book.ISBN] = book
	return book.ID, nil
}

func (s *memoryBookStore) GetByISBN(_ context.Context, isbn string) (*models.Book, error) {
	book, ok := s.books[isbn]
	if !ok {
		return nil, apperrors.ErrBookNotFound
	}
	return book, nil
}

func (s *memoryBookStore) ExistsByISBN(_ context.Context, isbn string) (bool, error) {
	_, ok := s.books[isbn]
	return ok, nil
}

func (s *memoryBookStore) GetAll(_ context.Context) ([]*models.Book, error) {
	books := make([]*models.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ISBN < books[j].ISBN })
	return books, nil
}

func (s *memoryBookStore) Search(ctx context.Context, _ models.BookSearchFilter) ([]*models.Book, error) {
	return s.GetAll(ctx)
}

func (s *memoryBookStore) DeleteByISBN(_ context.Context, isbn string) error {
	delete(s.books, isbn)
	return nil
}

func bookTestRouter(store *memoryBookStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	ctrl := NewBookController(services.NewBookService(store))
	router.POST("/books", ctrl.CreateBook)
	router.GET("/books", ctrl.GetAllBooks)
	router.GET("/books/search", ctrl.SearchBooks)
	router.GET("/books/:isbn", ctrl.GetBook)
	router.DELETE("/books/:isbn", ctrl.DeleteBook)

	return router
}

func postBookForm(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validBookForm() url.Values {
	form := url.Values{}
	form.Set("isbn", "978-0134190440")
	form.Set("name", "The Go Programming Language")
	form.Set("authors", "Donovan, Kernighan")
	form.Set("publisher", "Addison-Wesley")
	form.Set("price", "39.99")
	return form
}

func TestCreateBookEndpointReturns200(t *testing.T) {
	router := bookTestRouter(newMemoryBookStore())

	w := postBookForm(router, validBookForm())
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestCreateBookEndpointBlankEditionFieldDefaultsToOne(t *testing.T) {
	router := bookTestRouter(newMemoryBookStore())

	// Browsers submit every form input, so an untouched edition field
	// arrives as an empty string, not as an absent key.
	form := validBookForm()
	form.Set("edition", "")
	w := postBookForm(router, form)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	book, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, book["edition"])
}

func TestCreateBookEndpointBlankPriceFieldRejected(t *testing.T) {
	router := bookTestRouter(newMemoryBookStore())

	form := validBookForm()
	form.Set("price", "")
	w := postBookForm(router, form)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "price", resp.Errors[0].Field)
	assert.Equal(t, apperrors.KindRequired, resp.Errors[0].Kind)
}

func TestCreateBookEndpointReturns400WithAllFieldErrors(t *testing.T) {
	router := bookTestRouter(newMemoryBookStore())

	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 5)
	fields := make([]string, 0, len(resp.Errors))
	for _, fe := range resp.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"isbn", "name", "authors", "publisher", "price"}, fields)
}

func TestGetAllBooksEndpointEmptySentinel(t *testing.T) {
	router := bookTestRouter(newMemoryBookStore())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "No books", resp.Message)
}

func TestGetBookEndpointReturns404(t *testing.T) {
	router := bookTestRouter(newMemoryBookStore())

	req := httptest.NewRequest(http.MethodGet, "/books/missing-isbn", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestGetBookEndpointReturnsBook(t *testing.T) {
	router := bookTestRouter(newMemoryBookStore(&models.Book{
		ISBN: "978-0131103627", Name: "The C Programming Language", Authors: "Kernighan, Ritchie",
		Publisher: "Prentice Hall", Price: 52.50, Edition: 2,
	}))

	req := httptest.NewRequest(http.MethodGet, "/books/978-0131103627", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The C Programming Language")
}

func TestDeleteBookEndpointIsIdempotent(t *testing.T) {
	router := bookTestRouter(newMemoryBookStore())

	req := httptest.NewRequest(http.MethodDelete, "/books/missing-isbn", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Book deleted", resp.Message)
}
