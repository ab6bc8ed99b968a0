package entities

import "strings"

// NormalizeCPF strips everything but digits from a CPF.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether cpf passes the official Modulo-11 double
// checksum. Formatting characters are ignored; the normalized value must
// be exactly 11 digits and not a run of a single repeated digit.
func ValidCPF(cpf string) bool {
	digits := NormalizeCPF(cpf)
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return cpfCheckDigit(digits, 9) == int(digits[9]-'0') &&
		cpfCheckDigit(digits, 10) == int(digits[10]-'0')
}

// cpfCheckDigit computes the check digit over the first n digits using
// descending weights n+1..2; a weighted sum ×10 mod 11 of 10 maps to 0.
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	d := sum * 10 % 11
	if d == 10 {
		d = 0
	}
	return d
}
