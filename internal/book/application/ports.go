package application

import (
	"context"
	"errors"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/book/domain"
)

var ErrNotFound = errors.New("book not found")

type BookRepository interface {
	All(ctx context.Context) ([]domain.Book, error)
	// Append stores the book with an identifier one past the last entry.
	Append(ctx context.Context, b domain.Book) (domain.Book, error)
	// Replace swaps the stored book with the same ID, or ErrNotFound.
	Replace(ctx context.Context, b domain.Book) (domain.Book, error)
	// Remove deletes by ID and returns the removed record, or ErrNotFound.
	Remove(ctx context.Context, id int) (domain.Book, error)
}
