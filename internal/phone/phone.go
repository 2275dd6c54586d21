// Package phone normalizes Saudi mobile numbers into canonical E.164 form.
// Both functions are pure and are also exposed to the presentation layer for
// client-side previews.
package phone

import (
	"regexp"
	"strings"
)

var ksaMobileRe = regexp.MustCompile(`^\+9665\d{8}$`)

// Normalize rewrites raw into the canonical +9665XXXXXXXX form when the input
// is recognizably a Saudi mobile. Unrecognized inputs come back stripped but
// otherwise unchanged, so Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.HasPrefix(cleaned, "00") {
		cleaned = "+" + cleaned[2:]
	}
	if strings.HasPrefix(cleaned, "0") && !strings.HasPrefix(cleaned, "+") {
		cleaned = "+966" + cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, "+") {
		if strings.HasPrefix(cleaned, "966") {
			cleaned = "+" + cleaned
		} else if len(cleaned) == 9 && strings.HasPrefix(cleaned, "5") {
			cleaned = "+966" + cleaned
		}
	}
	return cleaned
}

// IsValidKsaMobile reports whether raw normalizes to a valid Saudi mobile.
func IsValidKsaMobile(raw string) bool {
	return ksaMobileRe.MatchString(Normalize(raw))
}
