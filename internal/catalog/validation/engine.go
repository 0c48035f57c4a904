package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"catalog-backend/internal/catalog/model"
)

// エラーメッセージ（表示順もそのまま契約）
const (
	MsgTitleRequired   = "Title is required"
	MsgAuthorRequired  = "Author is required"
	MsgISBNRequired    = "ISBN is required"
	MsgISBNFormat      = "Invalid ISBN format (must be 10 or 13 digits)"
	MsgDateRequired    = "Published date is required"
	MsgDateInFuture    = "Published date cannot be in the future"
	MsgAcademicMinimum = "Academic books must have at least 5 copies available"
)

type Clock interface{ Now() time.Time }
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RawBook is a book record as submitted by a client, before normalization.
type RawBook struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	ISBN            *string `json:"ISBN"`
	PublishedDate   *string `json:"publishedDate"`
	Genre           string  `json:"genre"`
	CopiesAvailable Copies  `json:"copiesAvailable"`
}

// Copies は数値・数値文字列を受け付け、それ以外は 0 に寄せる
type Copies int

func (c *Copies) UnmarshalJSON(b []byte) error {
	*c = Copies(coerceCopies(b))
	return nil
}

func coerceCopies(b []byte) int {
	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&v); err != nil {
		return 0
	}
	switch x := v.(type) {
	case float64:
		return clampCopies(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return clampCopies(f)
	default:
		return 0
	}
}

func clampCopies(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// Result of one validation run. Book is always populated, even when invalid.
type Result struct {
	Valid  bool       `json:"isValid"`
	Book   model.Book `json:"validatedData"`
	Errors []string   `json:"errors"`
}

// Err returns nil for a valid result, otherwise a *ValidationError.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Messages: r.Errors}
}

// ValidationError carries every failed rule, in display order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Engine validates and normalizes book records. It is stateless apart from
// its clock and safe for concurrent use.
type Engine struct {
	clock Clock
}

// NewEngine returns an engine reading "today" from clock (wall clock if nil).
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = realClock{}
	}
	return &Engine{clock: clock}
}

// Validate normalizes raw and checks it against the catalog rules. The id
// field is neither read nor assigned.
func (e *Engine) Validate(raw RawBook) Result {
	published := ""
	if raw.PublishedDate != nil {
		published = NormalizeDate(*raw.PublishedDate)
	}
	b := model.Book{
		Title:           SanitizeText(raw.Title),
		Author:          SanitizeText(raw.Author),
		ISBN:            SanitizeText(raw.ISBN),
		PublishedDate:   published,
		Genre:           raw.Genre,
		CopiesAvailable: int(raw.CopiesAvailable),
	}

	errs := []string{}
	if b.Title == "" {
		errs = append(errs, MsgTitleRequired)
	}
	if b.Author == "" {
		errs = append(errs, MsgAuthorRequired)
	}

	if b.ISBN == "" {
		errs = append(errs, MsgISBNRequired)
	} else if !IsValidISBN(b.ISBN) {
		errs = append(errs, MsgISBNFormat)
	}

	if b.PublishedDate == "" {
		errs = append(errs, MsgDateRequired)
	} else if !IsPastOrPresentDate(b.PublishedDate, e.clock.Now()) {
		errs = append(errs, MsgDateInFuture)
	}

	if !MeetsAcademicCopyMinimum(b.Genre, b.CopiesAvailable) {
		errs = append(errs, MsgAcademicMinimum)
	}

	return Result{Valid: len(errs) == 0, Book: b, Errors: errs}
}

// FromBook converts a stored record back into raw input, e.g. for
// revalidating seed data.
func FromBook(b model.Book) RawBook {
	title, author, isbn, date := b.Title, b.Author, b.ISBN, b.PublishedDate
	return RawBook{
		Title:           &title,
		Author:          &author,
		ISBN:            &isbn,
		PublishedDate:   &date,
		Genre:           b.Genre,
		CopiesAvailable: Copies(b.CopiesAvailable),
	}
}
