package importer

import "strings"

// ValidVKN verifies the check digit of a 10-digit Turkish tax number
// (vergi kimlik numarası).
func ValidVKN(vkn string) bool {
	if len(vkn) != 10 {
		return false
	}
	sum := 0
	for i := 0; i < 9; i++ {
		d := int(vkn[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		tmp := (d + 10 - (i + 1)) % 10
		if tmp == 9 {
			sum += tmp
		} else {
			sum += (tmp * (1 << (10 - (i + 1)))) % 9
		}
	}
	last := int(vkn[9] - '0')
	if last < 0 || last > 9 {
		return false
	}
	return (10-sum%10)%10 == last
}

// ValidTCKN verifies the two check digits of an 11-digit Turkish national
// identity number.
func ValidTCKN(tckn string) bool {
	if len(tckn) != 11 || tckn[0] == '0' {
		return false
	}
	var d [11]int
	for i := 0; i < 11; i++ {
		c := tckn[i]
		if c < '0' || c > '9' {
			return false
		}
		d[i] = int(c - '0')
	}
	odd := d[0] + d[2] + d[4] + d[6] + d[8]
	even := d[1] + d[3] + d[5] + d[7]
	if ((odd*7-even)%10+10)%10 != d[9] {
		return false
	}
	sum := 0
	for i := 0; i < 10; i++ {
		sum += d[i]
	}
	return sum%10 == d[10]
}

// NormalizeIBAN strips whitespace and uppercases, so grouped input like
// "tr00 0000 ..." compares and stores in one canonical form.
func NormalizeIBAN(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), ""))
}

// ValidTurkishIBAN accepts a normalized IBAN: TR prefix, 26 characters,
// digits after the country code.
func ValidTurkishIBAN(iban string) bool {
	if len(iban) != 26 || !strings.HasPrefix(iban, "TR") {
		return false
	}
	for i := 2; i < len(iban); i++ {
		if iban[i] < '0' || iban[i] > '9' {
			return false
		}
	}
	return true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
