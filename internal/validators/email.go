package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailDomainValid aceita endereços cujo domínio publica MX ou, na
// falta dele, resolve para algum IP. Barra typos de domínio no registro
// antes de gravar o usuário.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) (string, bool) {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", false
	}

	_, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || domain == "" {
		return "", false
	}
	return domain, true
}
