package model

import "strings"

// Region and Interest are the static catalog entities users pick from.
// They are read-mostly and owned by the catalog subsystem.

type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Interest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// interestAliases remaps a few broad category words onto a concrete catalog
// entry so that e.g. "спорт" resolves instead of dead-ending in fuzzy search.
var interestAliases = map[string]string{
	"спорт":   "волейбол",
	"гитара":  "игра на гитаре",
	"пианино": "игра на пианино",
}

// NormalizeInterestName lower-cases, trims, folds ё to е and applies the
// category alias table. The exact-match lookup and the fuzzy-suggestion
// search both run through this function so they can never disagree.
func NormalizeInterestName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "ё", "е")
	if alias, ok := interestAliases[n]; ok {
		return alias
	}
	return n
}

var genderWords = map[string]Gender{
	"male":    GenderMale,
	"female":  GenderFemale,
	"мужской": GenderMale,
	"женский": GenderFemale,
}

// ParseGender maps a user answer (English or Russian, any case) onto the
// normalized gender value.
func ParseGender(text string) (Gender, bool) {
	g, ok := genderWords[strings.ToLower(strings.TrimSpace(text))]
	return g, ok
}
