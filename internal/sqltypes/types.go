// Package sqltypes holds the classification tables shared by the translation
// layer: requested-type normalization, type-to-category mapping, and the
// format-inference helpers used when extracting maps and arrays from text.
package sqltypes

import (
	"strings"

	"github.com/afard/VerticaPy/internal/domain"
)

// ToSQLType normalizes a requested type label: trimmed, lower-cased, with
// the common aliases folded to the engine spelling. Compound forms such as
// "vmap(age,name)" are preserved.
func ToSQLType(spec string) string {
	dtype := strings.ToLower(strings.TrimSpace(spec))
	switch dtype {
	case "text", "string", "str":
		return "varchar"
	case "double":
		return "float"
	case "datetime":
		return "timestamp"
	}
	return dtype
}

// categoryRule classifies a normalized type label by prefix, exact match, or
// substring. Rules are checked in order; the first hit wins.
type categoryRule struct {
	prefixes []string
	exact    []string
	contains []string
	category domain.Category
}

var categoryRules = []categoryRule{
	{prefixes: []string{"vmap"}, category: domain.CategoryVMap},
	{
		prefixes: []string{"date", "timestamp"},
		exact:    []string{"smalldatetime", "time", "timetz"},
		contains: []string{"interval"},
		category: domain.CategoryDate,
	},
	{
		prefixes: []string{"int", "bool"},
		exact:    []string{"tinyint", "smallint", "bigint"},
		category: domain.CategoryInt,
	},
	{
		prefixes: []string{"numeric", "decimal", "float", "double", "real", "money", "number"},
		category: domain.CategoryFloat,
	},
	{prefixes: []string{"geometry", "geography"}, category: domain.CategorySpatial},
	{
		prefixes: []string{"binary", "varbinary", "long varbinary", "bytea", "raw"},
		category: domain.CategoryBinary,
	},
	{prefixes: []string{"uuid"}, category: domain.CategoryUUID},
	{
		prefixes: []string{"char", "varchar", "long varchar"},
		exact:    []string{"enum", "set"},
		category: domain.CategoryText,
	},
	// Array is not a category of its own: an extracted array column keeps
	// the text category while its declared type records the array label.
	{prefixes: []string{"array", "row", "map"}, category: domain.CategoryText},
}

// ToCategory maps an engine type label to its Category. Unknown labels map
// to CategoryUndefined.
func ToCategory(ctype string) domain.Category {
	label := strings.ToLower(strings.TrimSpace(ctype))
	if label == "" {
		return domain.CategoryUndefined
	}
	if idx := strings.Index(label, "("); idx != -1 && !strings.HasPrefix(label, "vmap") {
		label = label[:idx]
	}
	for _, rule := range categoryRules {
		if rule.matches(label) {
			return rule.category
		}
	}
	return domain.CategoryUndefined
}

func (r categoryRule) matches(label string) bool {
	for _, e := range r.exact {
		if label == e {
			return true
		}
	}
	for _, p := range r.prefixes {
		if strings.HasPrefix(label, p) {
			return true
		}
	}
	for _, c := range r.contains {
		if strings.Contains(label, c) {
			return true
		}
	}
	return false
}

// VMapHeaders extracts the header names from a compound "vmap(h1,h2,...)"
// label. ok is false when the label carries no header list.
func VMapHeaders(dtype string) (string, bool) {
	if len(dtype) > 5 && strings.HasPrefix(dtype, "vmap(") && strings.HasSuffix(dtype, ")") {
		if inner := dtype[5 : len(dtype)-1]; inner != "" {
			return inner, true
		}
	}
	return "", false
}

// IsCharFamily reports whether the label belongs to the varchar/char family.
func IsCharFamily(dtype string) bool {
	return strings.HasPrefix(dtype, "varchar") || strings.HasPrefix(dtype, "char")
}
