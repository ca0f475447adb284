package generator

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slug folds accents, lowercases and drops spaces: "Hotel Aurora Cambuí"
// becomes "hotelauroracambui".
func slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.ReplaceAll(folded, " ", ""))
}

func capitalize(s string) string {
	return cases.Title(language.BrazilianPortuguese).String(s)
}

func mobilePhone(r *RNG, ddd int) string {
	return fmt.Sprintf("+55 (%02d) 9%04d-%04d", ddd, r.IntN(10000), r.IntN(10000))
}

func landline(r *RNG, ddd int) string {
	return fmt.Sprintf("+55 (%02d) 3%03d-%04d", ddd, r.IntN(1000), r.IntN(10000))
}

func stateDDD(state string) int {
	if ddd, ok := dddByState[state]; ok {
		return ddd
	}
	return 11
}

// cpf returns a formatted CPF with valid check digits.
func cpf(r *RNG) string {
	var d [11]int
	for i := 0; i < 9; i++ {
		d[i] = r.IntN(10)
	}
	d[9] = cpfCheckDigit(d[:9])
	d[10] = cpfCheckDigit(d[:10])
	return fmt.Sprintf("%d%d%d.%d%d%d.%d%d%d-%d%d",
		d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7], d[8], d[9], d[10])
}

func cpfCheckDigit(digits []int) int {
	weight := len(digits) + 1
	sum := 0
	for i, v := range digits {
		sum += v * (weight - i)
	}
	rem := sum * 10 % 11
	if rem == 10 {
		return 0
	}
	return rem
}

func reviewComment(r *RNG) string {
	return Pick(r, reviewOpenings) + " " + Pick(r, reviewDetails) + " " + Pick(r, reviewClosings)
}
