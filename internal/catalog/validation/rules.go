package validation

import (
	"regexp"
	"time"

	"catalog-backend/internal/catalog/model"
)

// AcademicMinCopies は Academic ジャンルに必要な最低冊数
const AcademicMinCopies = 5

// 形式のみ。チェックディジットは検証しない。
var isbnPattern = regexp.MustCompile(`^(?:[0-9]{9}[0-9Xx]|[0-9]{13})$`)

// IsValidISBN reports whether s is 9 digits followed by a digit or X/x, or
// exactly 13 digits.
func IsValidISBN(s string) bool {
	return isbnPattern.MatchString(s)
}

// IsPastOrPresentDate reports whether the normalized date parses and its
// calendar day is not after the calendar day of now (in now's location).
func IsPastOrPresentDate(normalized string, now time.Time) bool {
	d, err := time.Parse(DateLayout, normalized)
	if err != nil {
		return false
	}
	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return !d.After(today)
}

// MeetsAcademicCopyMinimum: Academic 以外は制約なし
func MeetsAcademicCopyMinimum(genre string, copies int) bool {
	return genre != model.GenreAcademic || copies >= AcademicMinCopies
}
