package books

import "catalog-backend/internal/catalog/validation"

// ===== Requests =====

// CreateBookRequest / UpdateBookRequest は検証前の生データ。id は受け取っても無視する。
type CreateBookRequest = validation.RawBook
type UpdateBookRequest = validation.RawBook

// ===== Listing helpers =====

const (
	SortInsertion = ""
	SortTitle     = "title"
)

type ListQuery struct {
	Q     string // title / author / ISBN の部分一致
	Genre string // 完全一致
	Sort  string // "" or "title"
}

// ===== Responses =====

type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
