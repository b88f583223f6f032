package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"basic", "alice@example.com", "a***e@e*****e.c*m"},
		{"short labels", "ab@cd.ef", "a*@c*.e*"},
		{"single char parts", "a@b.c", "a*@b*.c*"},
		{"surrounding text is dropped", "contact bob@x.com today", "b*b@x*.c*m"},
		{"subdomains masked per label", "joe@mail.example.org", "j*e@m**l.e*****e.o*g"},
		{"no email passes through", "nothing to see", "nothing to see"},
		{"missing dot passes through", "root@localhost", "root@localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.input))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"international layout", "+1 (555) 123-4567", "+* (***) ***-**67"},
		{"dashed", "555-123-4567", "***-***-**67"},
		{"bare digits", "12345678", "******78"},
		{"exactly four digits", "1234", "**34"},
		{"under four digits masks all and drops layout", "x1y2z3", "***"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskPhone(tt.input))
		})
	}
}

// Delimiters must stay in their original positions and only the last two
// digits survive.
func TestMaskPhone_PreservesLayout(t *testing.T) {
	input := "+1 (555) 123-4567"
	got := MaskPhone(input)

	assert.Equal(t, len(input), len(got))
	for i := range input {
		switch c := input[i]; {
		case c >= '0' && c <= '9':
			// masked or one of the last two digits
		default:
			assert.Equal(t, c, got[i], "delimiter moved at index %d", i)
		}
	}
	assert.True(t, strings.HasSuffix(got, "67"))
	assert.NotContains(t, got[:len(got)-2], "5")
	assert.NotContains(t, got[:len(got)-2], "1")
}

func TestStripURLQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"token stripped", "https://example.com/path?token=abc", "https://example.com/path"},
		{"no query unchanged", "https://example.com/path", "https://example.com/path"},
		{"http scheme", "http://a.io/x?y=1", "http://a.io/x"},
		{"rest of line after query is dropped", "see https://a.com/x?q=1 trailing", "see https://a.com/x"},
		{"one url per line", "https://a.com/x?q=1\nhttps://b.com/y?r=2", "https://a.com/x\nhttps://b.com/y"},
		{"non-url question mark unchanged", "really?", "really?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripURLQuery(tt.input))
		})
	}
}

func TestEscapeSQL(t *testing.T) {
	assert.Equal(t, "O''Brien", EscapeSQL("O'Brien"))
	assert.Equal(t, "no quotes", EscapeSQL("no quotes"))
	assert.Equal(t, "''''", EscapeSQL("''"))
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t,
		"&lt;a href=&quot;x&quot;&gt;&amp;&#x27;",
		EscapeHTML(`<a href="x">&'`))
	assert.Equal(t, "plain", EscapeHTML("plain"))

	// Ampersands already part of an entity are still escaped: the escape
	// is single-pass, not idempotent.
	once := EscapeHTML("a & b")
	twice := EscapeHTML(once)
	assert.Equal(t, "a &amp; b", once)
	assert.Equal(t, "a &amp;amp; b", twice)
	assert.NotEqual(t, once, twice)
}
