package loans

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/platform/httpserver"
)

const HeaderCallerID = "X-Caller-ID"

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/books/:id/borrow", h.Borrow)
	r.POST("/books/:id/return", h.Return)
	r.GET("/user/books", h.List)
}

type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Borrow godoc
// @Summary  Borrow one copy
// @Tags     loans
// @Produce  json
// @Param    id           path    string  true   "book id"
// @Param    X-Caller-ID  header  string  false  "caller"
// @Success  200  {object}  model.Loan
// @Failure  400  {object}  errDTO
// @Failure  404  {object}  errDTO
// @Router   /books/{id}/borrow [post]
func (h *Handler) Borrow(c *gin.Context) {
	caller := h.svc.Caller(c.GetHeader(HeaderCallerID))
	loan, err := h.svc.Borrow(c.Request.Context(), c.Param("id"), caller)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, loan)
}

// Return godoc
// @Summary  Return one copy
// @Tags     loans
// @Produce  json
// @Param    id           path    string  true   "book id"
// @Param    X-Caller-ID  header  string  false  "caller"
// @Success  200  {object}  ackResponse
// @Failure  404  {object}  errDTO
// @Router   /books/{id}/return [post]
func (h *Handler) Return(c *gin.Context) {
	caller := h.svc.Caller(c.GetHeader(HeaderCallerID))
	if err := h.svc.Return(c.Request.Context(), c.Param("id"), caller); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ackResponse{Success: true, Message: "Book returned successfully"})
}

// List godoc
// @Summary  Caller's borrowed books
// @Tags     loans
// @Produce  json
// @Param    X-Caller-ID  header  string  false  "caller"
// @Success  200  {array}  model.Loan
// @Router   /user/books [get]
func (h *Handler) List(c *gin.Context) {
	caller := h.svc.Caller(c.GetHeader(HeaderCallerID))
	res, err := h.svc.List(c.Request.Context(), caller)
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

func apiErr(code Code, msg string) errDTO {
	var e errDTO
	e.Error.Code = code
	e.Error.Message = msg
	e.Error.Messages = []string{msg}
	return e
}

func apiErrFrom(err error) errDTO {
	var api *APIError
	if errors.As(err, &api) {
		return apiErr(api.Code, api.Message)
	}
	return apiErr(CodeInternal, err.Error())
}
