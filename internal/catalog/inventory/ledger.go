// Package inventory holds the in-memory catalog and the per-caller loan
// lists. Borrow and return change both under one lock so the copy count and
// the outstanding loans never drift apart.
package inventory

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"slices"
	"sync"
	"time"

	ulid "github.com/oklog/ulid/v2"

	"catalog-backend/internal/catalog/model"
)

var (
	ErrNotFound    = errors.New("book not found")
	ErrDuplicateID = errors.New("book id already exists")
	ErrOutOfStock  = errors.New("no copies available for borrowing")
	ErrNotBorrowed = errors.New("book is not borrowed by caller")
)

// -------------- Clock & ID --------------

type Clock interface{ Now() time.Time }
type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

type IDGen interface{ NewULID(t time.Time) string }

// ulidGen は単調増加 ULID を返す（Monotonic はゴルーチン安全ではないのでロックする）
type ulidGen struct {
	mu      sync.Mutex
	entropy io.Reader
}

func newULIDGen() *ulidGen {
	return &ulidGen{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ulidGen) NewULID(t time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), g.entropy).String()
}

// -------------- Ledger --------------

// BookFilter narrows ListBooks. Zero value matches everything.
type BookFilter struct {
	Match func(model.Book) bool
}

// Stats は一覧画面のサマリ
type Stats struct {
	TotalBooks     int `json:"totalBooks"`
	AvailableBooks int `json:"availableBooks"`
	LoanedCopies   int `json:"loanedCopies"`
}

type Ledger struct {
	mu    sync.RWMutex
	books map[string]model.Book
	order []string
	loans map[model.CallerID][]model.Loan
	clock Clock
	id    IDGen
}

func NewLedger() *Ledger {
	return newLedger(realClock{}, newULIDGen())
}

func newLedger(clock Clock, id IDGen) *Ledger {
	return &Ledger{
		books: make(map[string]model.Book),
		loans: make(map[model.CallerID][]model.Loan),
		clock: clock,
		id:    id,
	}
}

// AddBook inserts an already validated record. An empty ID is replaced with
// a fresh ULID; an explicit ID that is taken yields ErrDuplicateID.
func (l *Ledger) AddBook(ctx context.Context, b model.Book) (model.Book, error) {
	if err := ctx.Err(); err != nil {
		return model.Book{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if b.ID == "" {
		b.ID = l.id.NewULID(l.clock.Now())
	}
	if _, ok := l.books[b.ID]; ok {
		return model.Book{}, ErrDuplicateID
	}
	l.books[b.ID] = b
	l.order = append(l.order, b.ID)
	return b, nil
}

func (l *Ledger) GetBook(ctx context.Context, id string) (model.Book, error) {
	if err := ctx.Err(); err != nil {
		return model.Book{}, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.books[id]
	if !ok {
		return model.Book{}, ErrNotFound
	}
	return b, nil
}

// ListBooks returns books in insertion order.
func (l *Ledger) ListBooks(ctx context.Context, f BookFilter) ([]model.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Book, 0, len(l.order))
	for _, id := range l.order {
		b := l.books[id]
		if f.Match != nil && !f.Match(b) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// UpdateBook replaces every field except the ID. Loan snapshots keep the
// values they were taken with.
func (l *Ledger) UpdateBook(ctx context.Context, id string, b model.Book) (model.Book, error) {
	if err := ctx.Err(); err != nil {
		return model.Book{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.books[id]; !ok {
		return model.Book{}, ErrNotFound
	}
	b.ID = id
	l.books[id] = b
	return b, nil
}

// DeleteBook removes the book from the catalog. Outstanding loans for it
// are left in place and can still be returned.
func (l *Ledger) DeleteBook(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.books[id]; !ok {
		return ErrNotFound
	}
	delete(l.books, id)
	l.order = slices.DeleteFunc(l.order, func(v string) bool { return v == id })
	return nil
}

// Borrow checks out one copy to caller.
func (l *Ledger) Borrow(ctx context.Context, id string, caller model.CallerID) (model.Loan, error) {
	if err := ctx.Err(); err != nil {
		return model.Loan{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.books[id]
	if !ok {
		return model.Loan{}, ErrNotFound
	}
	if b.CopiesAvailable <= 0 {
		return model.Loan{}, ErrOutOfStock
	}

	now := l.clock.Now()
	loan := model.Loan{
		Book:         b, // 貸出前の状態を保持
		LoanID:       l.id.NewULID(now),
		BorrowedDate: now,
	}

	b.CopiesAvailable--
	l.books[id] = b
	l.loans[caller] = append(l.loans[caller], loan)
	return loan, nil
}

// Return removes caller's oldest loan of the book and restores the copy if
// the book is still catalogued.
func (l *Ledger) Return(ctx context.Context, id string, caller model.CallerID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.loans[caller]
	idx := slices.IndexFunc(list, func(ln model.Loan) bool { return ln.ID == id })
	if idx < 0 {
		return ErrNotBorrowed
	}

	if b, ok := l.books[id]; ok {
		b.CopiesAvailable++
		l.books[id] = b
	}

	list = slices.Delete(list, idx, idx+1)
	if len(list) == 0 {
		delete(l.loans, caller)
	} else {
		l.loans[caller] = list
	}
	return nil
}

// Loans returns caller's outstanding loans in borrow order.
func (l *Ledger) Loans(ctx context.Context, caller model.CallerID) ([]model.Loan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]model.Loan{}, l.loans[caller]...), nil
}

func (l *Ledger) Stats(ctx context.Context) (Stats, error) {
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Stats{TotalBooks: len(l.books)}
	for _, b := range l.books {
		if b.CopiesAvailable > 0 {
			s.AvailableBooks++
		}
	}
	for _, list := range l.loans {
		s.LoanedCopies += len(list)
	}
	return s, nil
}
