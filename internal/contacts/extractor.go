// Package contacts extracts email addresses and phone numbers from
// scraped page text.
package contacts

import (
	"regexp"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// Output caps: only the first two of each contact type survive.
const (
	maxEmails = 2
	maxPhones = 2
)

var (
	// emailRe discovers email-shaped substrings anywhere in the text.
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// validEmailRe is the anchored validation predicate. Discovery and
	// validation are deliberately separate passes; both must accept an
	// address for it to survive.
	validEmailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// phoneRe matches a loose mobile-number shape: optional +, country
	// code 91, subscriber number starting 6-9.
	phoneRe = regexp.MustCompile(`\+?9(?:1)?[6-9][0-9]{9}`)
)

// IsValidEmail reports whether s satisfies the email validation predicate.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	return validEmailRe.MatchString(s)
}

// Extract scans page text for emails and phone numbers, preserving
// first-occurrence order and truncating each list to two entries.
func Extract(text string) model.Contacts {
	emails := make([]string, 0, maxEmails)
	for _, m := range emailRe.FindAllString(text, -1) {
		if !IsValidEmail(m) {
			continue
		}
		emails = append(emails, m)
		if len(emails) == maxEmails {
			break
		}
	}

	phones := phoneRe.FindAllString(text, -1)
	if len(phones) > maxPhones {
		phones = phones[:maxPhones]
	}
	if phones == nil {
		phones = []string{}
	}

	return model.Contacts{Emails: emails, Phones: phones}
}

// Revalidate filters emails through the validation predicate. An empty
// input yields an empty result without a validation pass.
func Revalidate(emails []string) []string {
	if len(emails) == 0 {
		return []string{}
	}
	valid := make([]string, 0, len(emails))
	for _, e := range emails {
		if IsValidEmail(e) {
			valid = append(valid, e)
		}
	}
	return valid
}
