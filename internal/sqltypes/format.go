package sqltypes

import (
	"regexp"
	"strings"
)

var (
	lineCommentRe = regexp.MustCompile(`--[^\n]*`)
	multiSpaceRe  = regexp.MustCompile(` +`)
)

// CleanQuery strips line comments and collapses all whitespace runs in a SQL
// fragment to single spaces. Block comments are preserved so optimizer LABEL
// hints survive.
func CleanQuery(sql string) string {
	out := lineCommentRe.ReplaceAllString(sql, "")
	out = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(out)
	out = multiSpaceRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// QuoteIdent quotes an identifier for use in a projection. Already-quoted
// identifiers are returned unchanged.
func QuoteIdent(name string) string {
	name = strings.TrimSpace(name)
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
