package validator

// Brazilian taxpayer identifiers. Both use two mod-11 check digits where a remainder
// below 2 maps to 0 and any other remainder r maps to 11-r.

var cnpjWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

func digitsOf(s string) []int {
	out := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			out = append(out, int(c-'0'))
		}
	}
	return out
}

func checkDigit(sum int) int {
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func validCPF(d []int) bool {
	if len(d) != 11 {
		return false
	}

	same := true
	for _, x := range d[1:] {
		if x != d[0] {
			same = false
			break
		}
	}
	if same {
		return false
	}

	for pos := 9; pos <= 10; pos++ {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += d[i] * (pos + 1 - i)
		}
		if checkDigit(sum) != d[pos] {
			return false
		}
	}
	return true
}

func validCNPJ(d []int) bool {
	if len(d) != 14 {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += d[i] * cnpjWeights[i+1]
	}
	if checkDigit(sum) != d[12] {
		return false
	}

	sum = 0
	for i := 0; i < 13; i++ {
		sum += d[i] * cnpjWeights[i]
	}
	return checkDigit(sum) == d[13]
}

// IsCPF fails unless the digits of the value form a valid CPF.
// Punctuation such as "529.982.247-25" is ignored.
func (v *Validator) IsCPF() *Validator {
	return v.check(validCPF(digitsOf(v.field.Value.String())), RuleCPF)
}

// IsCNPJ fails unless the digits of the value form a valid CNPJ.
func (v *Validator) IsCNPJ() *Validator {
	return v.check(validCNPJ(digitsOf(v.field.Value.String())), RuleCNPJ)
}
