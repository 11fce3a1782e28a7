package linkedin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidProfileURL_Accepted(t *testing.T) {
	for _, s := range []string{
		"https://www.linkedin.com/in/janedoe",
		"http://linkedin.com/in/jane-doe/",
		"linkedin.com/in/jane_doe",
		"www.linkedin.com/in/janedoe/",
		"https://linkedin.com/pub/jane/a/b/1",
		"  https://www.linkedin.com/in/janedoe  ",
		"HTTPS://WWW.LINKEDIN.COM/in/janedoe",
	} {
		assert.True(t, ValidProfileURL(s), s)
	}
}

func TestValidProfileURL_Rejected(t *testing.T) {
	for _, s := range []string{
		"",
		"not-a-url",
		"https://example.com/in/janedoe",
		"https://linkedin.com/company/acme",
		"https://linkedin.com/in/",
	} {
		assert.False(t, ValidProfileURL(s), s)
	}
}

// Prefix anchoring: content after a valid profile URL is accepted.
func TestValidProfileURL_TrailingContentAccepted(t *testing.T) {
	assert.True(t, ValidProfileURL("linkedin.com/in/janedoe and some notes"))
}

func TestNormalizeProfileURL(t *testing.T) {
	assert.Equal(t, "https://linkedin.com/in/janedoe", NormalizeProfileURL("linkedin.com/in/janedoe"))
	assert.Equal(t, "https://linkedin.com/in/janedoe", NormalizeProfileURL("  linkedin.com/in/janedoe  "))
	// No scheme rewriting, no slash stripping, no lowercasing.
	assert.Equal(t, "http://linkedin.com/in/Jane/", NormalizeProfileURL("http://linkedin.com/in/Jane/"))
}

func TestNormalizeProfileURL_IdempotentOnAbsolute(t *testing.T) {
	u := "https://www.linkedin.com/in/john-doe/"
	assert.Equal(t, u, NormalizeProfileURL(NormalizeProfileURL(u)))
}
