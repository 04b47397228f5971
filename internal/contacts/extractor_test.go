package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("user@domain"))
	assert.False(t, IsValidEmail("user@domain.c"))
}

func TestExtractEmailsInOrder(t *testing.T) {
	text := "Reach sales@acme.com or support@acme.com for help."
	c := Extract(text)
	assert.Equal(t, []string{"sales@acme.com", "support@acme.com"}, c.Emails)
}

func TestExtractTruncatesEmails(t *testing.T) {
	text := "a@x.com b@x.com c@x.com d@x.com"
	c := Extract(text)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, c.Emails)
}

func TestExtractPhones(t *testing.T) {
	text := "Call +919876543210 or 919812345678 today."
	c := Extract(text)
	assert.Equal(t, []string{"+919876543210", "919812345678"}, c.Phones)
}

func TestExtractIgnoresShortNumbers(t *testing.T) {
	// Ten digits without a country code prefix do not fit the shape.
	c := Extract("call 9123456789")
	assert.Empty(t, c.Phones)
}

func TestExtractTruncatesPhones(t *testing.T) {
	text := "+919876543210 +919876543211 +919876543212"
	c := Extract(text)
	assert.Len(t, c.Phones, 2)
	assert.Equal(t, "+919876543210", c.Phones[0])
}

func TestExtractNoMatches(t *testing.T) {
	c := Extract("nothing to see here")
	assert.Empty(t, c.Emails)
	assert.Empty(t, c.Phones)
}

func TestRevalidate(t *testing.T) {
	out := Revalidate([]string{"good@example.com", "bad@"})
	assert.Equal(t, []string{"good@example.com"}, out)
}

func TestRevalidateEmptyInput(t *testing.T) {
	assert.Empty(t, Revalidate(nil))
	assert.Empty(t, Revalidate([]string{}))
}
