package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/book/application"
	"github.com/yasir-khalid/payments-inventory-microservices/internal/book/domain"
)

// Repository keeps the catalog in process memory, ordered by insertion.
type Repository struct {
	mu    sync.Mutex
	books []domain.Book
}

func NewRepository(seed []domain.Book) *Repository {
	books := make([]domain.Book, len(seed))
	copy(books, seed)
	return &Repository{books: books}
}

func (r *Repository) All(ctx context.Context) ([]domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Book, len(r.books))
	copy(out, r.books)
	return out, nil
}

func (r *Repository) Append(ctx context.Context, b domain.Book) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.books) > 0 {
		b.ID = r.books[len(r.books)-1].ID + 1
	} else {
		b.ID = 1
	}
	r.books = append(r.books, b)
	return b, nil
}

func (r *Repository) Replace(ctx context.Context, b domain.Book) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].ID == b.ID {
			r.books[i] = b
			return b, nil
		}
	}
	return domain.Book{}, fmt.Errorf("%w: %d", application.ErrNotFound, b.ID)
}

func (r *Repository) Remove(ctx context.Context, id int) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.books {
		if r.books[i].ID == id {
			removed := r.books[i]
			r.books = append(r.books[:i], r.books[i+1:]...)
			return removed, nil
		}
	}
	return domain.Book{}, fmt.Errorf("%w: %d", application.ErrNotFound, id)
}
