package importer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"shopcatalog/vertical"
)

// Classify maps a raw category label onto a category id. Rules are tried in
// order and the first rule with a keyword contained in the label wins, so
// rule order encodes priority between overlapping keywords. Labels matching
// no rule map to fallback.
func Classify(label string, rules []vertical.CategoryRule, fallback string) string {
	folded := fold(label)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(folded, fold(keyword)) {
				return rule.ID
			}
		}
	}
	return fallback
}

// fold lower-cases text after composing it, so "zubehör" matches whether
// the sheet stored the umlaut precomposed or as o + combining diaeresis.
func fold(text string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(text))
}
