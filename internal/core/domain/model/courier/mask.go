package courier

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// phoneVisibleDigits is how many trailing digits MaskPhone keeps.
const phoneVisibleDigits = 2

// MaskName keeps the first name and the initial of the last word.
//
//	MaskName("Ivan Petrov")  // "Ivan P."
//	MaskName("Ivan")         // "Ivan"
//	MaskName("")             // ""
func MaskName(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}

	last := parts[len(parts)-1]
	r, _ := utf8.DecodeRuneInString(last)
	return parts[0] + " " + string(unicode.ToUpper(r)) + "."
}

// MaskPhone replaces every digit except the last two with '*' and keeps the
// formatting characters. Numbers too short to hide anything are masked
// completely.
//
//	MaskPhone("+7 (999) 123-45-67") // "+* (***) ***-**-67"
func MaskPhone(phone string) string {
	total := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			total++
		}
	}

	visible := phoneVisibleDigits
	if total <= visible {
		visible = 0
	}

	var b strings.Builder
	b.Grow(len(phone))
	seen := 0
	for _, r := range phone {
		if !unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		seen++
		if seen > total-visible {
			b.WriteRune(r)
		} else {
			b.WriteByte('*')
		}
	}
	return b.String()
}
