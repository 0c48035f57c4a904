package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "", SanitizeText(nil))
	assert.Equal(t, "", SanitizeText(strp("   \t\n")))
	assert.Equal(t, "The  Hobbit", SanitizeText(strp("  The  Hobbit \n")))
	assert.Equal(t, "lower Case", SanitizeText(strp("lower Case")))
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"   ":                       "",
		"1949-06-08":                "1949-06-08",
		" 1949-06-08 ":              "1949-06-08",
		"1949-6-8":                  "1949-06-08",
		"1949/06/08":                "1949-06-08",
		"06/08/1949":                "1949-06-08",
		"June 8, 1949":              "1949-06-08",
		"Jun 8, 1949":               "1949-06-08",
		"8 Jun 1949":                "1949-06-08",
		"1949-06-08T10:30:00Z":      "1949-06-08",
		"1949-06-08T23:30:00-05:00": "1949-06-08",
		"1949-06-08T00:30:00+09:00": "1949-06-08",
		"1949-06-08 12:00:00":       "1949-06-08",
		"not a date":                "",
		"2023-02-30":                "",
		"2023-13-01":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDate(in), "input %q", in)
	}
}

func TestNormalizeDateIdempotent(t *testing.T) {
	inputs := []string{
		"", "garbage", "1949-06-08", "1/2/2006", "0099-01-01",
		"2024-02-29T12:00:00+14:00", "December 31, 1999", "2006/1/2",
	}
	for _, in := range inputs {
		once := NormalizeDate(in)
		assert.Equal(t, once, NormalizeDate(once), "input %q", in)
	}
}
