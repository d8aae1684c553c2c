// Package cpf validates brazilian CPF identifiers (11 digit national IDs with
// two mod-11 check digits)
package cpf

// Normalize strips formatting from raw and returns the canonical 11 digit
// form. ok is false when the result is not exactly 11 digits
func Normalize(raw string) (string, bool) {
	out := make([]byte, 0, 11)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	if len(out) != 11 {
		return "", false
	}
	return string(out), true
}

// IsValid reports whether raw is a well formed CPF
// formatting characters are ignored, so "111.444.777-35" and "11144477735"
// are equivalent
func IsValid(raw string) bool {
	s, ok := Normalize(raw)
	if !ok {
		return false
	}

	// sequences like 00000000000 pass the checksum but are not valid IDs
	same := true
	for i := 1; i < 11; i++ {
		if s[i] != s[0] {
			same = false
			break
		}
	}
	if same {
		return false
	}

	return digit(s, 9) == int(s[9]-'0') && digit(s, 10) == int(s[10]-'0')
}

// digit computes the mod-11 check digit over the first n digits of s
func digit(s string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(s[i]-'0') * (n + 1 - i)
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}
