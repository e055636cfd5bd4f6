package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yasir-khalid/payments-inventory-microservices/internal/book/domain"
)

var ErrInvalidBook = errors.New("invalid book")

type BookRequest struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	PublishYear int     `json:"publish_year"`
}

type BookUpdate struct {
	ID int `json:"id"`
	BookRequest
}

type Service struct {
	log  *slog.Logger
	repo BookRepository
}

func NewService(log *slog.Logger, repo BookRepository) *Service {
	return &Service{log: log, repo: repo}
}

// List truncates to the first limit entries, then filters to rating >=
// minRating. Truncation happens before the rating filter, so a limited
// listing can return fewer matches than exist. A negative limit is
// deliberately treated as "no limit" rather than as end-relative slicing,
// since callers only ever omit the limit or pass a count.
func (s *Service) List(ctx context.Context, limit int, minRating float64) ([]domain.Book, error) {
	books, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	if limit >= 0 && limit < len(books) {
		books = books[:limit]
	}
	filtered := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if b.Rating >= minRating {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// GetByID returns a zero/one-element list, mirroring the listing shape.
func (s *Service) GetByID(ctx context.Context, id int) ([]domain.Book, error) {
	books, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Book, 0, 1)
	for _, b := range books {
		if b.ID == id {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (s *Service) ByPublishYear(ctx context.Context, year int) ([]domain.Book, error) {
	books, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Book, 0)
	for _, b := range books {
		if b.PublishYear == year {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (s *Service) Create(ctx context.Context, req BookRequest) (domain.Book, error) {
	if err := validate(req); err != nil {
		return domain.Book{}, err
	}
	created, err := s.repo.Append(ctx, domain.Book{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Rating:      req.Rating,
		PublishYear: req.PublishYear,
	})
	if err != nil {
		return domain.Book{}, err
	}
	s.log.Info("book created", "book_id", created.ID, "title", created.Title)
	return created, nil
}

func (s *Service) Update(ctx context.Context, upd BookUpdate) (domain.Book, error) {
	if err := validate(upd.BookRequest); err != nil {
		return domain.Book{}, err
	}
	return s.repo.Replace(ctx, domain.Book{
		ID:          upd.ID,
		Title:       upd.Title,
		Author:      upd.Author,
		Description: upd.Description,
		Rating:      upd.Rating,
		PublishYear: upd.PublishYear,
	})
}

func (s *Service) Delete(ctx context.Context, id int) (domain.Book, error) {
	removed, err := s.repo.Remove(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	s.log.Info("book deleted", "book_id", id)
	return removed, nil
}

func validate(req BookRequest) error {
	switch {
	case len(req.Title) < 3:
		return fmt.Errorf("%w: title must be at least 3 characters", ErrInvalidBook)
	case req.Author == "":
		return fmt.Errorf("%w: author is required", ErrInvalidBook)
	case req.Description == "" || len(req.Description) > 100:
		return fmt.Errorf("%w: description must be 1-100 characters", ErrInvalidBook)
	case req.Rating < 0 || req.Rating > 5:
		return fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidBook)
	case req.PublishYear < 1999 || req.PublishYear > 2031:
		return fmt.Errorf("%w: publish_year must be between 1999 and 2031", ErrInvalidBook)
	}
	return nil
}
