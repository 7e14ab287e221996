package picopg

import (
	"strings"
	"unicode"
)

var (
	// DefaultColumnNamer is the column naming function used when a Model
	// is created. Default is ToUnderscore, which converts field names to
	// snake_case.
	DefaultColumnNamer func(string) string = ToUnderscore

	// DefaultTableNamer is the table naming function used when a Model is
	// created and the struct does not override its table name. Default is
	// ToUnderscore, which converts "MyUser" to "my_user". Set it to
	// ToPluralUnderscore for Rails-style plural table names.
	DefaultTableNamer func(string) string = ToUnderscore
)

// Convert a word to its plural form. Add "es" for "s" or "o" ending,
// "y" ending will be replaced with "ies", for other endings, add "s".
// For example, "product" will be converted to "products".
func ToPlural(in string) string {
	if in == "" {
		return ""
	}
	if strings.HasSuffix(in, "y") {
		return in[:len(in)-1] + "ies"
	}
	if strings.HasSuffix(in, "s") || strings.HasSuffix(in, "o") {
		return in + "es"
	}
	return in + "s"
}

// Convert a "CamelCase" word to its plural "snake_case" (underscore) form.
// For example, "PostComment" will be converted to "post_comments".
func ToPluralUnderscore(in string) string {
	return ToPlural(ToUnderscore(in))
}

// Convert "CamelCase" word to its "snake_case" (underscore) form. For example,
// "FullName" will be converted to "full_name".
func ToUnderscore(str string) string { // from govalidator
	var output []rune
	var segment []rune
	for _, r := range str {
		// not treat number as separate segment
		if !unicode.IsLower(r) && string(r) != "_" && !unicode.IsNumber(r) {
			output = addSegment(output, segment)
			segment = nil
		}
		segment = append(segment, unicode.ToLower(r))
	}
	output = addSegment(output, segment)
	return string(output)
}

func addSegment(inrune, segment []rune) []rune { // from govalidator
	if len(segment) == 0 {
		return inrune
	}
	if len(inrune) != 0 {
		inrune = append(inrune, '_')
	}
	inrune = append(inrune, segment...)
	return inrune
}

// quoteIdentifier double-quotes a SQL identifier, doubling any embedded
// quote. Identifiers are quoted once at Model creation, never per call.
func quoteIdentifier(in string) string {
	return `"` + strings.ReplaceAll(in, `"`, `""`) + `"`
}
