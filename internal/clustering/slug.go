// Wayfarer - Photo Travel History and Geographic Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package clustering

import (
	"strings"
	"unicode"
)

// Slug joins the prefix and parts into a lowercase hyphenated id.
//
// Letters and digits are kept, a decimal point becomes 'p' and a leading '-'
// is preserved so negative coordinates stay distinct:
// Slug("area", "48.85", "-2.35") is "area-48p85--2p35". Other characters
// collapse into a single hyphen.
func Slug(prefix string, parts ...string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, p := range parts {
		b.WriteByte('-')
		b.WriteString(slugPart(p))
	}
	return b.String()
}

func slugPart(s string) string {
	var b strings.Builder
	pendingSep := false
	prevDigit := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		isDigit := unicode.IsDigit(r)
		switch {
		case unicode.IsLetter(r) || isDigit:
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case r == '.' && prevDigit:
			b.WriteByte('p')
		case r == '-' && b.Len() == 0:
			b.WriteByte('-')
		default:
			pendingSep = true
		}
		prevDigit = isDigit
	}
	return b.String()
}
