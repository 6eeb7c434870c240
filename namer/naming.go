// Package namer provides the key formatting functions used to translate
// domain field names into their wire representation and back.
package namer

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// KeyFormatter translates a domain field or resource type name into its
// wire (JSON:API document / URL) form.
type KeyFormatter func(string) string

// Kebab formats 'raw' into 'kebab-case', the JSON:API convention used for
// resource type names, field names and query parameter keys throughout
// this client (i.e. 'toOneAttribute' becomes 'to-one-attribute').
func Kebab(raw string) string {
	return strcase.ToKebab(raw)
}

// Snake formats 'raw' into 'snake_case'.
func Snake(raw string) string {
	return strcase.ToSnake(raw)
}

// Camel formats 'raw' into 'CamelCase'.
func Camel(raw string) string {
	return strcase.ToCamel(raw)
}

// LowerCamel formats 'raw' into 'lowerCamelCase' (i.e. 'to_one_attribute'
// becomes 'toOneAttribute').
func LowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}

// Default is the formatter router.New uses when none is supplied
// explicitly. JSON:API services overwhelmingly favor dashed names.
var Default KeyFormatter = Kebab

// Parse resolves a formatter by its configuration name ("kebab", "snake",
// "camel", "lower_camel"). Unknown names fall back to Default.
func Parse(name string) KeyFormatter {
	switch strings.ToLower(name) {
	case "snake":
		return Snake
	case "camel":
		return Camel
	case "lower_camel", "lowercamel":
		return LowerCamel
	case "kebab":
		return Kebab
	default:
		return Default
	}
}
