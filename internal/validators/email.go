package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid reports whether the domain part of email resolves to an
// MX record or an address.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// IsEmailSyntaxValid accepts a bare addr-spec such as "ola@example.no".
func IsEmailSyntaxValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// HasContact reports whether at least one of phone or email is non-blank.
func HasContact(phone, email string) bool {
	return strings.TrimSpace(phone) != "" || strings.TrimSpace(email) != ""
}
