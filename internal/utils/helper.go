package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// Vietnamese mobile numbers: 84 / 0 prefix followed by a 3|5|7|8|9 carrier
// digit and 8 more digits.
var phoneRegex = regexp.MustCompile(`^(84|0[35789])[0-9]{8}$`)

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

// FormatVND renders an amount the way the storefront does: grouped by
// thousands with dots, VND has no fractional part.
func FormatVND(amount float64) string {
	n := int64(amount)
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	out := b.String() + " ₫"
	if neg {
		out = "-" + out
	}
	return out
}

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
