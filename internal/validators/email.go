package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// Registration waits on these lookups, so they are bounded: a slow
// resolver degrades to a rejection, never a hang.
const emailLookupTimeout = 3 * time.Second

// IsEmailDomainValid reports whether the address's domain can plausibly
// receive mail: an MX record, or failing that a host record. Addresses
// without a local part or a domain are rejected before any lookup.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	emailDomain := strings.ToLower(email[at+1:])

	ctx, cancel := context.WithTimeout(ctx, emailLookupTimeout)
	defer cancel()

	if mx, err := net.DefaultResolver.LookupMX(ctx, emailDomain); err == nil && len(mx) > 0 {
		return true
	}

	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, emailDomain)
	return err == nil && len(addrs) > 0
}
