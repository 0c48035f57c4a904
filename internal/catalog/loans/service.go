package loans

import (
	"context"
	"errors"
	"fmt"
	"log"

	"catalog-backend/internal/catalog/inventory"
	"catalog-backend/internal/catalog/model"
)

// ===== Error model =====
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeOutOfStock      Code = "OUT_OF_STOCK"
	CodeNotFound        Code = "NOT_FOUND"
	CodeNotBorrowed     Code = "NOT_BORROWED"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string         { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError     { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrOutOfStock(msg string) *APIError  { return &APIError{Code: CodeOutOfStock, Message: msg} }
func ErrNotFound(msg string) *APIError    { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrNotBorrowed(msg string) *APIError { return &APIError{Code: CodeNotBorrowed, Message: msg} }

func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument, CodeOutOfStock:
			return 400
		case CodeNotFound, CodeNotBorrowed:
			return 404
		default:
			return 500
		}
	}
	return 500
}

// ===== Service =====

type Service struct {
	ledger        *inventory.Ledger
	defaultCaller model.CallerID
}

func NewService(ledger *inventory.Ledger, defaultCaller string) *Service {
	return &Service{ledger: ledger, defaultCaller: model.CallerID(defaultCaller)}
}

// Caller は X-Caller-ID の値を返す。空なら設定のデフォルト。
func (s *Service) Caller(header string) model.CallerID {
	if header == "" {
		return s.defaultCaller
	}
	return model.CallerID(header)
}

// POST /api/books/:id/borrow
func (s *Service) Borrow(ctx context.Context, bookID string, caller model.CallerID) (model.Loan, error) {
	if bookID == "" {
		return model.Loan{}, ErrInvalid("book id is required")
	}
	loan, err := s.ledger.Borrow(ctx, bookID, caller)
	if err != nil {
		return model.Loan{}, fromInventory(err, bookID)
	}
	log.Printf("[INFO] book borrowed id=%s caller=%s loan=%s", bookID, caller, loan.LoanID)
	return loan, nil
}

// POST /api/books/:id/return
func (s *Service) Return(ctx context.Context, bookID string, caller model.CallerID) error {
	if bookID == "" {
		return ErrInvalid("book id is required")
	}
	if err := s.ledger.Return(ctx, bookID, caller); err != nil {
		return fromInventory(err, bookID)
	}
	log.Printf("[INFO] book returned id=%s caller=%s", bookID, caller)
	return nil
}

// GET /api/user/books
func (s *Service) List(ctx context.Context, caller model.CallerID) ([]model.Loan, error) {
	return s.ledger.Loans(ctx, caller)
}

// helpers

func fromInventory(err error, id string) error {
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		return ErrNotFound(fmt.Sprintf("Book with ID %s not found", id))
	case errors.Is(err, inventory.ErrOutOfStock):
		return ErrOutOfStock("No copies available for borrowing")
	case errors.Is(err, inventory.ErrNotBorrowed):
		return ErrNotBorrowed(fmt.Sprintf("You haven't borrowed the book with ID %s", id))
	default:
		return err
	}
}
