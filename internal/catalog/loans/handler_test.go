package loans

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/catalog/inventory"
	"catalog-backend/internal/catalog/model"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestRouter(t *testing.T, books ...model.Book) (*gin.Engine, *inventory.Ledger) {
	t.Helper()
	ledger := inventory.NewLedger()
	for _, b := range books {
		_, err := ledger.AddBook(context.Background(), b)
		require.NoError(t, err)
	}
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewService(ledger, "guest"))
	return r, ledger
}

func book(id string, copies int) model.Book {
	return model.Book{
		ID:              id,
		Title:           "1984",
		Author:          "George Orwell",
		ISBN:            "9780451524935",
		PublishedDate:   "1949-06-08",
		Genre:           model.GenreFiction,
		CopiesAvailable: copies,
	}
}

func do(r http.Handler, method, target, caller string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if caller != "" {
		req.Header.Set(HeaderCallerID, caller)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func copiesOf(t *testing.T, l *inventory.Ledger, id string) int {
	t.Helper()
	b, err := l.GetBook(context.Background(), id)
	require.NoError(t, err)
	return b.CopiesAvailable
}

func TestBorrowAndReturn(t *testing.T) {
	r, ledger := newTestRouter(t, book("3", 2))

	w := do(r, http.MethodPost, "/api/books/3/borrow", "alice")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	loan := decode[model.Loan](t, w)
	assert.Equal(t, "3", loan.ID)
	assert.Equal(t, 2, loan.CopiesAvailable, "snapshot is taken before the decrement")
	assert.NotEmpty(t, loan.LoanID)
	assert.False(t, loan.BorrowedDate.IsZero())
	assert.Equal(t, 1, copiesOf(t, ledger, "3"))

	w = do(r, http.MethodGet, "/api/user/books", "alice")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Loan](t, w), 1)

	w = do(r, http.MethodPost, "/api/books/3/return", "alice")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Book returned successfully"}`, w.Body.String())
	assert.Equal(t, 2, copiesOf(t, ledger, "3"))

	w = do(r, http.MethodGet, "/api/user/books", "alice")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBorrow_Errors(t *testing.T) {
	r, ledger := newTestRouter(t, book("1", 0))

	w := do(r, http.MethodPost, "/api/books/1/borrow", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[errDTO](t, w)
	assert.False(t, body.Success)
	assert.Equal(t, CodeOutOfStock, body.Error.Code)
	assert.Equal(t, "No copies available for borrowing", body.Error.Message)
	assert.Equal(t, 0, copiesOf(t, ledger, "1"))

	w = do(r, http.MethodPost, "/api/books/missing/borrow", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	body = decode[errDTO](t, w)
	assert.Equal(t, CodeNotFound, body.Error.Code)
	assert.Equal(t, "Book with ID missing not found", body.Error.Message)
}

func TestReturn_NotBorrowed(t *testing.T) {
	r, ledger := newTestRouter(t, book("1", 2))

	// 他人の貸出は返却できない
	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/books/1/borrow", "alice").Code)

	w := do(r, http.MethodPost, "/api/books/1/return", "bob")
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[errDTO](t, w)
	assert.Equal(t, CodeNotBorrowed, body.Error.Code)
	assert.Equal(t, "You haven't borrowed the book with ID 1", body.Error.Message)
	assert.Equal(t, 1, copiesOf(t, ledger, "1"))
}

func TestDefaultCaller(t *testing.T) {
	r, _ := newTestRouter(t, book("1", 2))

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/books/1/borrow", "").Code)

	assert.Len(t, decode[[]model.Loan](t, do(r, http.MethodGet, "/api/user/books", "guest")), 1)
	assert.Empty(t, decode[[]model.Loan](t, do(r, http.MethodGet, "/api/user/books", "alice")))
}

func TestReturn_AfterDelete(t *testing.T) {
	r, ledger := newTestRouter(t, book("1", 1))

	require.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/books/1/borrow", "alice").Code)
	require.NoError(t, ledger.DeleteBook(context.Background(), "1"))

	// 削除後も貸出記録は残り、返却は成功する
	assert.Len(t, decode[[]model.Loan](t, do(r, http.MethodGet, "/api/user/books", "alice")), 1)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/api/books/1/return", "alice").Code)
	assert.Empty(t, decode[[]model.Loan](t, do(r, http.MethodGet, "/api/user/books", "alice")))
}

func TestBorrow_ConcurrentLastCopy(t *testing.T) {
	r, ledger := newTestRouter(t, book("1", 1))

	const n = 8
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = do(r, http.MethodPost, "/api/books/1/borrow", "alice").Code
		}()
	}
	wg.Wait()

	ok, rejected := 0, 0
	for _, c := range codes {
		switch c {
		case http.StatusOK:
			ok++
		case http.StatusBadRequest:
			rejected++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, rejected)
	assert.Equal(t, 0, copiesOf(t, ledger, "1"))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, ToHTTPStatus(ErrInvalid("x")))
	assert.Equal(t, 400, ToHTTPStatus(ErrOutOfStock("x")))
	assert.Equal(t, 404, ToHTTPStatus(ErrNotFound("x")))
	assert.Equal(t, 404, ToHTTPStatus(ErrNotBorrowed("x")))
	assert.Equal(t, 500, ToHTTPStatus(context.Canceled))
}
