package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/textex/textex/internal/app/models"
	"github.com/textex/textex/internal/app/models/dto"
	"github.com/textex/textex/internal/pkg/apperrors"
)

type offerFixture struct {
	svc      OfferService
	students *fakeStudentStore
	books    *fakeBookStore
	offers   *fakeOfferStore
}

func newOfferFixture(t *testing.T) offerFixture {
	t.Helper()
	students := newFakeStudentStore()
	books := newFakeBookStore()
	offers := newFakeOfferStore()

	_, err := students.Create(context.Background(), &models.Student{
		StudentID: "s1000001", FirstName: "Ada", LastName: "Hoffmann", Email: "ada@example.edu",
	})
	require.NoError(t, err)
	_, err = books.Create(context.Background(), &models.Book{
		ISBN: "978-0134190440", Name: "The Go Programming Language", Authors: "Donovan, Kernighan",
		Publisher: "Addison-Wesley", Price: 39.99, Edition: 1,
	})
	require.NoError(t, err)

	return offerFixture{
		svc:      NewOfferService(offers, students, books),
		students: students,
		books:    books,
		offers:   offers,
	}
}

func validOfferRequest() dto.CreateOfferRequest {
	return dto.CreateOfferRequest{
		OfferID:   "offer-001",
		StudentID: "s1000001",
		ISBN:      "978-0134190440",
		Condition: "SLIGHTLY_USED",
		Price:     "25",
		Quantity:  "1",
	}
}

func TestCreateOffer(t *testing.T) {
	fx := newOfferFixture(t)

	offer, err := fx.svc.CreateOffer(context.Background(), validOfferRequest())
	require.NoError(t, err)

	assert.Equal(t, "offer-001", offer.OfferID)
	assert.Equal(t, models.ConditionSlightlyUsed, offer.Condition)
	require.NotNil(t, offer.Student)
	assert.Equal(t, "s1000001", offer.Student.StudentID)
	require.NotNil(t, offer.Book)
	assert.Equal(t, "978-0134190440", offer.Book.ISBN)
}

func TestCreateOfferAcceptsConditionCode(t *testing.T) {
	fx := newOfferFixture(t)

	req := validOfferRequest()
	req.Condition = "n"
	offer, err := fx.svc.CreateOffer(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.ConditionNew, offer.Condition)
}

func TestCreateOfferRejectsUnknownReferences(t *testing.T) {
	fx := newOfferFixture(t)

	req := validOfferRequest()
	req.StudentID = "s9999999"
	req.ISBN = "missing-isbn"
	_, err := fx.svc.CreateOffer(context.Background(), req)

	ve, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	kinds := fieldKinds(ve)
	assert.Equal(t, apperrors.KindUnknownReference, kinds["studentId"])
	assert.Equal(t, apperrors.KindUnknownReference, kinds["isbn"])
}

func TestCreateOfferRejectsInvalidCondition(t *testing.T) {
	fx := newOfferFixture(t)

	req := validOfferRequest()
	req.Condition = "MINT"
	_, err := fx.svc.CreateOffer(context.Background(), req)

	ve, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindInvalid, fieldKinds(ve)["condition"])
}

func TestCreateOfferRejectsZeroQuantity(t *testing.T) {
	fx := newOfferFixture(t)

	req := validOfferRequest()
	req.Quantity = "0"
	_, err := fx.svc.CreateOffer(context.Background(), req)

	ve, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindMin, fieldKinds(ve)["quantity"])
}

func TestCreateOfferBlankNumbersAreRequired(t *testing.T) {
	fx := newOfferFixture(t)

	req := validOfferRequest()
	req.Price = ""
	req.Quantity = " "
	_, err := fx.svc.CreateOffer(context.Background(), req)

	ve, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	kinds := fieldKinds(ve)
	assert.Equal(t, apperrors.KindRequired, kinds["price"])
	assert.Equal(t, apperrors.KindRequired, kinds["quantity"])
}

func TestCreateOfferRejectsDuplicateID(t *testing.T) {
	fx := newOfferFixture(t)

	_, err := fx.svc.CreateOffer(context.Background(), validOfferRequest())
	require.NoError(t, err)

	_, err = fx.svc.CreateOffer(context.Background(), validOfferRequest())
	ve, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindAlreadyExists, fieldKinds(ve)["offerId"])
}

func TestGetOffersByStudent(t *testing.T) {
	fx := newOfferFixture(t)

	_, err := fx.svc.CreateOffer(context.Background(), validOfferRequest())
	require.NoError(t, err)

	student, err := fx.students.GetByStudentID(context.Background(), "s1000001")
	require.NoError(t, err)

	owned, err := fx.svc.GetOffersByStudent(context.Background(), student.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "offer-001", owned[0].OfferID)

	none, err := fx.svc.GetOffersByStudent(context.Background(), student.ID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteOfferIsIdempotent(t *testing.T) {
	fx := newOfferFixture(t)

	assert.NoError(t, fx.svc.DeleteOffer(context.Background(), "missing-offer"))
}
