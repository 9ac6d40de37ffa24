package validators

import (
	"context"
	"testing"
)

// Only syntactically broken addresses are covered: they must be rejected
// before any DNS lookup, so the cases stay deterministic offline.
func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"plainaddress",
		"@no-local-part.com",
		"trailing-at@",
		"@",
	}
	for _, email := range cases {
		if IsEmailDomainValid(context.Background(), email) {
			t.Errorf("IsEmailDomainValid(%q) = true, want false", email)
		}
	}
}
