// Package validate rejects values that must never be interpolated into a
// generated shell script. Both inputs are treated as untrusted: the DNS
// address has to be an IP literal and the interface name is limited to a
// bounded character set.
package validate

import (
	"fmt"
	"net/netip"
	"unicode"
	"unicode/utf8"
)

// maxInterfaceNameLen bounds the adapter name. Windows allows long friendly
// names but nothing legitimate approaches this.
const maxInterfaceNameLen = 64

// DNSAddress checks that s is a well-formed IPv4 or IPv6 literal.
func DNSAddress(s string) error {
	if s == "" {
		return fmt.Errorf("dns address is empty")
	}
	if _, err := netip.ParseAddr(s); err != nil {
		return fmt.Errorf("%q is not an IPv4 or IPv6 address", s)
	}
	return nil
}

// InterfaceName checks that s is a plausible network adapter name: letters
// in any script (Windows adapter names are localized, e.g. 以太网), digits,
// and a small punctuation set. Shell metacharacters never pass.
func InterfaceName(s string) error {
	if s == "" {
		return fmt.Errorf("interface name is empty")
	}
	if utf8.RuneCountInString(s) > maxInterfaceNameLen {
		return fmt.Errorf("interface name exceeds %d characters", maxInterfaceNameLen)
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		switch r {
		case ' ', '-', '_', '.', '(', ')', '*', '#':
			continue
		}
		return fmt.Errorf("interface name contains disallowed character %q", r)
	}
	return nil
}
