package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderValue(t *testing.T) {
	t.Run("Should fold CR/LF so a value cannot append headers", func(t *testing.T) {
		assert.Equal(t, "Hello Bcc: victim@evil.example",
			headerValue("Hello\r\nBcc: victim@evil.example"))
		assert.Equal(t, "a bc", headerValue("a\nb\rc"))
	})

	t.Run("Should pass clean values through unchanged", func(t *testing.T) {
		assert.Equal(t, "Contact Form: Hello there", headerValue("Contact Form: Hello there"))
	})
}
