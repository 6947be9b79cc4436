package validators

import "strings"

// NormalizePhone reduz o telefone aos dígitos. É a chave de
// identidade do cliente convidado: "(11) 98888-7777" e
// "11988887777" são o mesmo telefone.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid exige um mínimo razoável de dígitos (DDD + número).
func IsPhoneValid(phone string) bool {
	n := len(NormalizePhone(phone))
	return n >= 10 && n <= 15
}
