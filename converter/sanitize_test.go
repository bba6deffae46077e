package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckURL(t *testing.T) {
	tests := []struct {
		raw     string
		allowed bool
	}{
		{raw: "https://example.com/path", allowed: true},
		{raw: "http://example.com", allowed: true},
		{raw: "ftp://files.example.com", allowed: true},
		{raw: "mailto:someone@example.com", allowed: true},
		{raw: "tel:+123456", allowed: true},
		{raw: "/relative/path/", allowed: true},
		{raw: "#section", allowed: true},
		{raw: "page?x=1:2", allowed: true},
		{raw: "", allowed: true},
		{raw: "javascript:alert(1)", allowed: false},
		{raw: "JavaScript:alert(1)", allowed: false},
		{raw: "jav\tascript:alert(1)", allowed: false},
		{raw: " javascript:alert(1)", allowed: false},
		{raw: "data:text/html;base64,PHA+", allowed: false},
		{raw: "vbscript:msgbox", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			href, ok := CheckURL(tt.raw)
			assert.Equal(t, tt.allowed, ok)
			if tt.allowed {
				assert.Equal(t, tt.raw, href)
			} else {
				assert.Empty(t, href)
			}
		})
	}
}
