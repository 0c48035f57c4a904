package books

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/platform/httpserver"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/books", h.ListBooks)
	r.POST("/books", h.CreateBook)
	r.GET("/books/:id", h.GetBook)
	r.PUT("/books/:id", h.UpdateBook)
	r.DELETE("/books/:id", h.DeleteBook)

	// ダッシュボード用サマリ
	r.GET("/stats", h.Stats)
}

// ---------- handlers ----------

// ListBooks godoc
// @Summary  List books
// @Tags     books
// @Produce  json
// @Param    q      query  string  false  "match on title, author or ISBN"
// @Param    genre  query  string  false  "exact genre"
// @Param    sort   query  string  false  "title"
// @Success  200  {array}   model.Book
// @Failure  400  {object}  errDTO
// @Router   /books [get]
func (h *Handler) ListBooks(c *gin.Context) {
	q := ListQuery{
		Q:     c.Query("q"),
		Genre: c.Query("genre"),
		Sort:  strings.ToLower(c.Query("sort")),
	}
	res, err := h.svc.ListBooks(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetBook godoc
// @Summary  Get a book
// @Tags     books
// @Produce  json
// @Param    id  path  string  true  "book id"
// @Success  200  {object}  model.Book
// @Failure  404  {object}  errDTO
// @Router   /books/{id} [get]
func (h *Handler) GetBook(c *gin.Context) {
	res, err := h.svc.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateBook godoc
// @Summary  Add a book
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    book  body  CreateBookRequest  true  "book record"
// @Success  201  {object}  model.Book
// @Failure  400  {object}  errDTO
// @Router   /books [post]
func (h *Handler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiErr(CodeInvalidArgument, "invalid json", nil))
		return
	}
	res, err := h.svc.CreateBook(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Location", "/api/books/"+res.ID)
	c.JSON(http.StatusCreated, res)
}

// UpdateBook godoc
// @Summary  Edit a book
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    id    path  string             true  "book id"
// @Param    book  body  UpdateBookRequest  true  "book record"
// @Success  200  {object}  model.Book
// @Failure  400  {object}  errDTO
// @Failure  404  {object}  errDTO
// @Router   /books/{id} [put]
func (h *Handler) UpdateBook(c *gin.Context) {
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apiErr(CodeInvalidArgument, "invalid json", nil))
		return
	}
	res, err := h.svc.UpdateBook(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteBook godoc
// @Summary  Delete a book
// @Tags     books
// @Produce  json
// @Param    id  path  string  true  "book id"
// @Success  200  {object}  AckResponse
// @Failure  404  {object}  errDTO
// @Router   /books/{id} [delete]
func (h *Handler) DeleteBook(c *gin.Context) {
	if err := h.svc.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, AckResponse{Success: true, Message: "Book deleted successfully"})
}

// Stats godoc
// @Summary  Catalog summary
// @Tags     books
// @Produce  json
// @Success  200  {object}  inventory.Stats
// @Router   /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	res, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ===== helpers =====

func (h *Handler) fail(c *gin.Context, err error) {
	status := ToHTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s request_id=%s: %v", c.Request.Method, c.FullPath(), c.GetString(httpserver.CtxRequestIDKey), err)
	}
	c.JSON(status, apiErrFrom(err))
}

type errDTO struct {
	Success bool `json:"success"`
	Error   struct {
		Code     Code     `json:"code"`
		Message  string   `json:"message"`
		Messages []string `json:"messages"`
	} `json:"error"`
}

func apiErr(code Code, msg string, messages []string) errDTO {
	var e errDTO
	e.Error.Code = code
	e.Error.Message = msg
	if messages == nil {
		messages = []string{msg}
	}
	e.Error.Messages = messages
	return e
}

func apiErrFrom(err error) errDTO {
	var api *APIError
	if errors.As(err, &api) {
		return apiErr(api.Code, api.Message, api.Messages)
	}
	return apiErr(CodeInternal, err.Error(), nil)
}
