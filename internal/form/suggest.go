package form

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultKnownDomains seeds the email domain hint.
var DefaultKnownDomains = []string{
	"gmail.com",
	"yahoo.com",
	"hotmail.com",
	"outlook.com",
	"icloud.com",
	"proton.me",
}

// DomainSuggester proposes a corrected address when an email's domain is a
// near miss of a well-known one.
type DomainSuggester struct {
	domains     []string
	maxDistance int
}

// NewDomainSuggester lowercases domains and drops blanks. A maxDistance below
// one disables suggestions.
func NewDomainSuggester(domains []string, maxDistance int) *DomainSuggester {
	clean := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			clean = append(clean, d)
		}
	}
	return &DomainSuggester{domains: clean, maxDistance: maxDistance}
}

// Suggest returns the corrected address, or "" when email is not a valid
// address, already uses a known domain, or is not close to any of them.
// Ties go to the earlier domain in the list.
func (d *DomainSuggester) Suggest(email string) string {
	if d == nil || d.maxDistance < 1 || !IsValidEmail(email) {
		return ""
	}
	at := strings.LastIndex(email, "@")
	local, domain := email[:at], strings.ToLower(email[at+1:])

	best, bestDist := "", d.maxDistance+1
	for _, known := range d.domains {
		if known == domain {
			return ""
		}
		dist := levenshtein.ComputeDistance(domain, known)
		if dist < bestDist {
			best, bestDist = known, dist
		}
	}
	if best == "" {
		return ""
	}
	return local + "@" + best
}
