package solr

import (
	"fmt"
	"strings"
)

// MatchAll is the query Solr uses to select every document.
const MatchAll = "*:*"

// Eq formats a field:value clause. The value is stringified with the
// default %v conversion and passed through unvalidated; whether the
// result is legal query syntax is Solr's concern at request time.
func Eq(field string, value any) string {
	return fmt.Sprintf("%s:%v", field, value)
}

// Not formats a negated -field:value clause.
func Not(field string, value any) string {
	return "-" + Eq(field, value)
}

// And joins the stringified values with AND inside one pair of
// parentheses. No values produce "()".
func And(values ...any) string {
	return group("AND", values)
}

// Or joins the stringified values with OR inside one pair of
// parentheses. A slice is spread with Or(vs...).
func Or(values ...any) string {
	return group("OR", values)
}

func group(op string, values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "(" + strings.Join(parts, " "+op+" ") + ")"
}

// Range formats a [lower TO upper] range clause. Bound order is not
// checked; Solr rejects inverted ranges at request time.
func Range(lower, upper any) string {
	return fmt.Sprintf("[%v TO %v]", lower, upper)
}

// Bounds is the paired form of Range. It prints as the same range
// clause, so it can be used directly as a clause value:
//
//	solr.Eq("price", solr.Bounds{Lo: 0, Hi: 100}) // price:[0 TO 100]
type Bounds struct {
	Lo any
	Hi any
}

func (b Bounds) String() string { return Range(b.Lo, b.Hi) }

// Tag prefixes a filter with a {!tag=name} local parameter so a facet
// can exclude it later via Ex.
func Tag(name, filter string) string {
	return "{!tag=" + name + "}" + filter
}

// Ex prefixes a facet field with a {!ex=name} local parameter,
// excluding the filter tagged with the same name from its counts.
func Ex(name, field string) string {
	return "{!ex=" + name + "}" + field
}

// Quote wraps the stringified value in double quotes.
func Quote(value any) string {
	return `"` + fmt.Sprint(value) + `"`
}
