package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailDomain(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		domain string
		ok     bool
	}{
		{"endereço comum", "dono@barbearia.com", "barbearia.com", true},
		{"subdomínio", "a@mail.exemplo.com.br", "mail.exemplo.com.br", true},
		{"sem arroba", "sem-arroba", "", false},
		{"sem domínio", "dono@", "", false},
		{"sem local", "@barbearia.com", "", false},
		{"vazio", "", "", false},
		{"duplo arroba", "a@b@c.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, ok := emailDomain(tt.email)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.domain, domain)
		})
	}
}

func TestIsEmailDomainValid_Malformado(t *testing.T) {
	// Endereços malformados falham antes de qualquer consulta DNS.
	assert.False(t, IsEmailDomainValid("sem-arroba"))
	assert.False(t, IsEmailDomainValid("dono@"))
	assert.False(t, IsEmailDomainValid(""))
}
