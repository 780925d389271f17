// Package br holds Brazil-specific formatting helpers.
package br

// FormatTaxID inserts the conventional punctuation into a CPF (11 digits,
// 000.000.000-00) or CNPJ (14 digits, 00.000.000/0000-00). This is a pure
// display transform: the stored value is whatever was supplied, and any
// other length is returned unchanged.
func FormatTaxID(raw string) string {
	switch len(raw) {
	case 11:
		return raw[0:3] + "." + raw[3:6] + "." + raw[6:9] + "-" + raw[9:11]
	case 14:
		return raw[0:2] + "." + raw[2:5] + "." + raw[5:8] + "/" + raw[8:12] + "-" + raw[12:14]
	default:
		return raw
	}
}

// DigitsOnly strips everything but ASCII digits, used to normalise tax ids
// before validation.
func DigitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
