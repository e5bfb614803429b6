package services

import (
	"context"
	"sort"

	"github.com/textex/textex/internal/app/models"
	"github.com/textex/textex/internal/pkg/apperrors"
)

// In-memory stores backing the service tests.

type fakeBookStore struct {
	books      map[string]*models.Book
	nextID     int64
	lastFilter models.BookSearchFilter
}

func newFakeBookStore() *fakeBookStore {
	return &fakeBookStore{books: map[string]*models.Book{}}
}

func (s *fakeBookStore) Create(_ context.Context, book *models.Book) (int64, error) {
	if _, ok := s.books[book.ISBN]; ok {
		return 0, apperrors.ErrAlreadyExists
	}
	s.nextID++
	book.ID = s.nextID
	s.books[book.ISBN] = book
	return book.ID, nil
}

func (s *fakeBookStore) GetByISBN(_ context.Context, isbn string) (*models.Book, error) {
	book, ok := s.books[isbn]
	if !ok {
		return nil, apperrors.ErrBookNotFound
	}
	return book, nil
}

func (s *fakeBookStore) ExistsByISBN(_ context.Context, isbn string) (bool, error) {
	_, ok := s.books[isbn]
	return ok, nil
}

func (s *fakeBookStore) GetAll(_ context.Context) ([]*models.Book, error) {
	books := make([]*models.Book, 0, len(s.books))
	for _, book := range s.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ISBN < books[j].ISBN })
	return books, nil
}

func (s *fakeBookStore) Search(ctx context.Context, filter models.BookSearchFilter) ([]*models.Book, error) {
	s.lastFilter = filter
	return s.GetAll(ctx)
}

func (s *fakeBookStore) DeleteByISBN(_ context.Context, isbn string) error {
	delete(s.books, isbn)
	return nil
}

type fakeStudentStore struct {
	students map[string]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[string]*models.Student{}}
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) (int64, error) {
	if _, ok := s.students[student.StudentID]; ok {
		return 0, apperrors.ErrAlreadyExists
	}
	s.nextID++
	student.ID = s.nextID
	s.students[student.StudentID] = student
	return student.ID, nil
}

func (s *fakeStudentStore) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	student, ok := s.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (s *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, student := range s.students {
		if student.Email == email {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, student := range s.students {
		if student.ID == id {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (s *fakeStudentStore) ExistsByStudentID(_ context.Context, studentID string) (bool, error) {
	_, ok := s.students[studentID]
	return ok, nil
}

func (s *fakeStudentStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	return err == nil, nil
}

func (s *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		students = append(students, student)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].StudentID < students[j].StudentID })
	return students, nil
}

func (s *fakeStudentStore) DeleteByStudentID(_ context.Context, studentID string) error {
	delete(s.students, studentID)
	return nil
}

type fakeOfferStore struct {
	offers map[string]*models.Offer
	nextID int64
}

func newFakeOfferStore() *fakeOfferStore {
	return &fakeOfferStore{offers: map[string]*models.Offer{}}
}

func (s *fakeOfferStore) Create(_ context.Context, offer *models.Offer) (int64, error) {
	if _, ok := s.offers[offer.OfferID]; ok {
		return 0, apperrors.ErrAlreadyExists
	}
	s.nextID++
	offer.ID = s.nextID
	s.offers[offer.OfferID] = offer
	return offer.ID, nil
}

func (s *fakeOfferStore) GetByOfferID(_ context.Context, offerID string) (*models.Offer, error) {
	offer, ok := s.offers[offerID]
	if !ok {
		return nil, apperrors.ErrOfferNotFound
	}
	return offer, nil
}

func (s *fakeOfferStore) ExistsByOfferID(_ context.Context, offerID string) (bool, error) {
	_, ok := s.offers[offerID]
	return ok, nil
}

func (s *fakeOfferStore) GetAll(_ context.Context) ([]*models.Offer, error) {
	offers := make([]*models.Offer, 0, len(s.offers))
	for _, offer := range s.offers {
		offers = append(offers, offer)
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].OfferID < offers[j].OfferID })
	return offers, nil
}

func (s *fakeOfferStore) GetByStudent(ctx context.Context, studentID int64) ([]*models.Offer, error) {
	all, _ := s.GetAll(ctx)
	owned := []*models.Offer{}
	for _, offer := range all {
		if offer.Student != nil && offer.Student.ID == studentID {
			owned = append(owned, offer)
		}
	}
	return owned, nil
}

func (s *fakeOfferStore) DeleteByOfferID(_ context.Context, offerID string) error {
	delete(s.offers, offerID)
	return nil
}

type fakeRequestStore struct {
	requests map[string]*models.Request
	nextID   int64
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: map[string]*models.Request{}}
}

func (s *fakeRequestStore) Create(_ context.Context, request *models.Request) (int64, error) {
	if _, ok := s.requests[request.RequestID]; ok {
		return 0, apperrors.ErrAlreadyExists
	}
	s.nextID++
	request.ID = s.nextID
	s.requests[request.RequestID] = request
	return request.ID, nil
}

func (s *fakeRequestStore) GetByRequestID(_ context.Context, requestID string) (*models.Request, error) {
	request, ok := s.requests[requestID]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return request, nil
}

func (s *fakeRequestStore) ExistsByRequestID(_ context.Context, requestID string) (bool, error) {
	_, ok := s.requests[requestID]
	return ok, nil
}

func (s *fakeRequestStore) GetAll(_ context.Context) ([]*models.Request, error) {
	requests := make([]*models.Request, 0, len(s.requests))
	for _, request := range s.requests {
		requests = append(requests, request)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].RequestID < requests[j].RequestID })
	return requests, nil
}

func (s *fakeRequestStore) GetByStudent(ctx context.Context, studentID int64) ([]*models.Request, error) {
	all, _ := s.GetAll(ctx)
	owned := []*models.Request{}
	for _, request := range all {
		if request.Student != nil && request.Student.ID == studentID {
			owned = append(owned, request)
		}
	}
	return owned, nil
}

func (s *fakeRequestStore) DeleteByRequestID(_ context.Context, requestID string) error {
	delete(s.requests, requestID)
	return nil
}

// fieldKinds indexes a validation error's entries by field name.
func fieldKinds(ve *apperrors.ValidationError) map[string]string {
	kinds := map[string]string{}
	for _, f := range ve.Fields {
		kinds[f.Field] = f.Kind
	}
	return kinds
}
