package tourpipe

import "strings"

// ContactInfo holds contact numbers extracted from tour text. Each field
// is either a normalized digit string (optionally prefixed with +) or
// empty, meaning absent. Placeholder strings are never stored.
type ContactInfo struct {
	Whatsapp string `json:"whatsapp,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// NormalizeContactNumber strips everything except digits from a phone
// number, keeping a single leading +. Returns "" if no digits remain.
func NormalizeContactNumber(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	normalized := b.String()
	if strings.TrimPrefix(normalized, "+") == "" {
		return ""
	}
	return normalized
}
