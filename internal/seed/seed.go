package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/textex/textex/internal/app/models"
	"github.com/textex/textex/internal/app/repositories"
	"github.com/textex/textex/internal/db"
	"github.com/textex/textex/internal/pkg/auth"
)

// CreateDemoData inserts a small exchange data set for development setups.
// It only runs against an empty database, and all inserts run in one
// transaction so a failure never leaves a half-seeded data set behind.
func CreateDemoData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	books, err := repositories.NewBookRepository(database.Pool).GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing books: %w", err)
	}
	if len(books) > 0 {
		lgr.Debug().Msg("Demo data skipped, database is not empty")
		return nil
	}

	lgr.Info().Msg("Seeding demo data...")

	hash, err := auth.HashPassword("changeme-demo")
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		repos := repositories.NewRepositories(tx)

		demoBooks := []*models.Book{
			{ISBN: "978-0134190440", Name: "The Go Programming Language", Authors: "Donovan, Kernighan", Publisher: "Addison-Wesley", Price: 39.99, Edition: 1},
			{ISBN: "978-0262033848", Name: "Introduction to Algorithms", Authors: "Cormen, Leiserson, Rivest, Stein", Publisher: "MIT Press", Price: 89.00, Edition: 3},
			{ISBN: "978-0131103627", Name: "The C Programming Language", Authors: "Kernighan, Ritchie", Publisher: "Prentice Hall", Price: 52.50, Edition: 2},
		}
		for _, book := range demoBooks {
			id, err := repos.BookRepository.Create(ctx, book)
			if err != nil {
				return fmt.Errorf("failed to seed book %s: %w", book.ISBN, err)
			}
			book.ID = id
		}

		demoStudents := []*models.Student{
			{StudentID: "s1000001", FirstName: "Ada", LastName: "Hoffmann", Email: "ada.hoffmann@example.edu", PasswordHash: hash},
			{StudentID: "s1000002", FirstName: "Mert", LastName: "Kaya", Email: "mert.kaya@example.edu", PasswordHash: hash},
		}
		for _, student := range demoStudents {
			id, err := repos.StudentRepository.Create(ctx, student)
			if err != nil {
				return fmt.Errorf("failed to seed student %s: %w", student.StudentID, err)
			}
			student.ID = id
		}

		anyCondition := models.ConditionSlightlyUsed
		demoOffers := []*models.Offer{
			{OfferID: "offer-001", Condition: models.ConditionNew, Price: 35.00, Quantity: 1, Student: demoStudents[0], Book: demoBooks[0]},
			{OfferID: "offer-002", Condition: models.ConditionHeavilyUsed, Price: 40.00, Quantity: 2, Student: demoStudents[1], Book: demoBooks[1]},
		}
		for _, offer := range demoOffers {
			if _, err := repos.OfferRepository.Create(ctx, offer); err != nil {
				return fmt.Errorf("failed to seed offer %s: %w", offer.OfferID, err)
			}
		}

		demoRequests := []*models.Request{
			{RequestID: "request-001", Condition: &anyCondition, Price: 30.00, Quantity: 1, Student: demoStudents[1], Book: demoBooks[0]},
			{RequestID: "request-002", Condition: nil, Price: 45.00, Quantity: 0, Student: demoStudents[0], Book: demoBooks[2]},
		}
		for _, request := range demoRequests {
			if _, err := repos.RequestRepository.Create(ctx, request); err != nil {
				return fmt.Errorf("failed to seed request %s: %w", request.RequestID, err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	lgr.Info().Msg("Demo data seeded")
	return nil
}
