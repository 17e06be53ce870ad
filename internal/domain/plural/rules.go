// Package plural selects numerus forms the way Qt Linguist orders them for
// each language.
package plural

import (
	"strings"

	"golang.org/x/text/language"
)

// CLDR category names, as used by go-i18n message fields.
const (
	One   = "one"
	Few   = "few"
	Many  = "many"
	Other = "other"
)

type rule struct {
	categories []string
	index      func(n int) int
}

var (
	germanic = rule{[]string{One, Other}, func(n int) int {
		if n == 1 {
			return 0
		}
		return 1
	}}
	french = rule{[]string{One, Other}, func(n int) int {
		if n <= 1 {
			return 0
		}
		return 1
	}}
	single = rule{[]string{Other}, func(int) int { return 0 }}
	romanian = rule{[]string{One, Few, Other}, func(n int) int {
		m := n % 100
		switch {
		case n == 1:
			return 0
		case n == 0 || (m >= 1 && m <= 19):
			return 1
		default:
			return 2
		}
	}}
	slavic = rule{[]string{One, Few, Many}, func(n int) int {
		d, m := n%10, n%100
		switch {
		case d == 1 && m != 11:
			return 0
		case d >= 2 && d <= 4 && (m < 12 || m > 14):
			return 1
		default:
			return 2
		}
	}}
	polish = rule{[]string{One, Few, Many}, func(n int) int {
		d, m := n%10, n%100
		switch {
		case n == 1:
			return 0
		case d >= 2 && d <= 4 && (m < 12 || m > 14):
			return 1
		default:
			return 2
		}
	}}
	czech = rule{[]string{One, Few, Other}, func(n int) int {
		switch {
		case n == 1:
			return 0
		case n >= 2 && n <= 4:
			return 1
		default:
			return 2
		}
	}}
)

var rules = map[string]rule{
	"fr": french,
	"ro": romanian,
	"ru": slavic,
	"uk": slavic,
	"be": slavic,
	"pl": polish,
	"cs": czech,
	"sk": czech,
	"ja": single,
	"zh": single,
	"ko": single,
	"vi": single,
	"th": single,
	"id": single,
}

func ruleFor(locale string) rule {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return germanic
	}
	base, _ := tag.Base()
	if r, ok := rules[base.String()]; ok {
		return r
	}
	return germanic
}

// FormIndex returns which numerus form to show for count n. Negative counts
// use their absolute value.
func FormIndex(locale string, n int) int {
	if n < 0 {
		n = -n
	}
	return ruleFor(locale).index(n)
}

// Categories returns the CLDR category of each numerus form, in form order.
func Categories(locale string) []string {
	return append([]string(nil), ruleFor(locale).categories...)
}

// Select picks the form for n from forms, clamping to the last available
// form. It returns "" when forms is empty.
func Select(locale string, forms []string, n int) string {
	if len(forms) == 0 {
		return ""
	}
	i := FormIndex(locale, n)
	if i >= len(forms) {
		i = len(forms) - 1
	}
	return forms[i]
}
