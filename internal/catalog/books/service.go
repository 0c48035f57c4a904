package books

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"catalog-backend/internal/catalog/inventory"
	"catalog-backend/internal/catalog/model"
	"catalog-backend/internal/catalog/validation"
)

// ===== Error model (loans と同型) =====
type Code string

const (
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeConflict         Code = "CONFLICT"
	CodeInternal         Code = "INTERNAL"
)

type APIError struct {
	Code     Code
	Message  string
	Messages []string
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrConflict(msg string) *APIError { return &APIError{Code: CodeConflict, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func ErrValidation(messages []string) *APIError {
	return &APIError{Code: CodeValidationFailed, Message: strings.Join(messages, "; "), Messages: messages}
}

func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument, CodeValidationFailed:
			return 400
		case CodeNotFound:
			return 404
		case CodeConflict:
			return 409
		default:
			return 500
		}
	}
	return 500
}

// ===== Service =====

type Service struct {
	ledger *inventory.Ledger
	engine *validation.Engine
}

func NewService(ledger *inventory.Ledger, engine *validation.Engine) *Service {
	return &Service{ledger: ledger, engine: engine}
}

// GET /api/books
func (s *Service) ListBooks(ctx context.Context, q ListQuery) ([]model.Book, error) {
	if q.Sort != SortInsertion && q.Sort != SortTitle {
		return nil, ErrInvalid("sort must be 'title' or omitted")
	}

	f := inventory.BookFilter{}
	if q.Q != "" || q.Genre != "" {
		fold := cases.Fold()
		needle := fold.String(strings.TrimSpace(q.Q))
		f.Match = func(b model.Book) bool {
			if q.Genre != "" && b.Genre != q.Genre {
				return false
			}
			if needle == "" {
				return true
			}
			return strings.Contains(fold.String(b.Title), needle) ||
				strings.Contains(fold.String(b.Author), needle) ||
				strings.Contains(b.ISBN, q.Q)
		}
	}

	items, err := s.ledger.ListBooks(ctx, f)
	if err != nil {
		return nil, err
	}

	if q.Sort == SortTitle {
		col := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool {
			return col.CompareString(items[i].Title, items[j].Title) < 0
		})
	}
	return items, nil
}

// GET /api/books/:id
func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	b, err := s.ledger.GetBook(ctx, id)
	if err != nil {
		return model.Book{}, fromInventory(err, id)
	}
	return b, nil
}

// POST /api/books
func (s *Service) CreateBook(ctx context.Context, in CreateBookRequest) (model.Book, error) {
	res := s.engine.Validate(in)
	if !res.Valid {
		return model.Book{}, ErrValidation(res.Errors)
	}
	b, err := s.ledger.AddBook(ctx, res.Book)
	if err != nil {
		return model.Book{}, fromInventory(err, "")
	}
	log.Printf("[INFO] book created id=%s isbn=%s", b.ID, b.ISBN)
	return b, nil
}

// PUT /api/books/:id
func (s *Service) UpdateBook(ctx context.Context, id string, in UpdateBookRequest) (model.Book, error) {
	// 存在確認を先に（404 を 400 より優先）
	if _, err := s.ledger.GetBook(ctx, id); err != nil {
		return model.Book{}, fromInventory(err, id)
	}
	res := s.engine.Validate(in)
	if !res.Valid {
		return model.Book{}, ErrValidation(res.Errors)
	}
	b, err := s.ledger.UpdateBook(ctx, id, res.Book)
	if err != nil {
		return model.Book{}, fromInventory(err, id)
	}
	return b, nil
}

// DELETE /api/books/:id
func (s *Service) DeleteBook(ctx context.Context, id string) error {
	if err := s.ledger.DeleteBook(ctx, id); err != nil {
		return fromInventory(err, id)
	}
	log.Printf("[INFO] book deleted id=%s", id)
	return nil
}

// GET /api/stats
func (s *Service) Stats(ctx context.Context) (inventory.Stats, error) {
	return s.ledger.Stats(ctx)
}

// Seed inserts fixture books with their explicit ids. Each record goes
// through the validation engine first.
func (s *Service) Seed(ctx context.Context, books []model.Book) error {
	for _, b := range books {
		res := s.engine.Validate(validation.FromBook(b))
		if err := res.Err(); err != nil {
			return fmt.Errorf("seed book %q: %w", b.ID, err)
		}
		res.Book.ID = b.ID
		if _, err := s.ledger.AddBook(ctx, res.Book); err != nil {
			return fmt.Errorf("seed book %q: %w", b.ID, err)
		}
	}
	return nil
}

// helpers

func fromInventory(err error, id string) error {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		return ErrNotFound(fmt.Sprintf("Book with ID %s not found", id))
	case errors.Is(err, inventory.ErrDuplicateID):
		return ErrConflict(err.Error())
	default:
		return err
	}
}
