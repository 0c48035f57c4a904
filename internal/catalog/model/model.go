package model

import "time"

// 既知のジャンル（それ以外のラベルも受け付ける）
const (
	GenreFiction    = "Fiction"
	GenreNonFiction = "Non-fiction"
	GenreAcademic   = "Academic"
)

// CallerID は貸出リストを区切る呼び出し元。認証情報ではない。
type CallerID string

// Book はカタログの1冊分。JSONキーは既存フロントエンドと互換。
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"ISBN"`
	PublishedDate   string `json:"publishedDate"` // YYYY-MM-DD
	Genre           string `json:"genre"`
	CopiesAvailable int    `json:"copiesAvailable"`
}

// Loan は貸出中の1件。Book は貸出時点のスナップショット。
type Loan struct {
	Book
	LoanID       string    `json:"loanId"`
	BorrowedDate time.Time `json:"borrowedDate"`
}
