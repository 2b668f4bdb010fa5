package solr

// Field is a named query field. It adds nothing over the package-level
// helpers beyond readability at the call site:
//
//	solr.Field("price").InRange(0, 100) // price:[0 TO 100]
type Field string

// Equals formats the field:value clause for this field.
func (f Field) Equals(value any) string { return Eq(string(f), value) }

// NotEquals formats the negated -field:value clause for this field.
func (f Field) NotEquals(value any) string { return Not(string(f), value) }

// InRange formats a field:[lower TO upper] clause for this field.
func (f Field) InRange(lower, upper any) string {
	return Eq(string(f), Range(lower, upper))
}

// Within is InRange with the bounds passed as a pair.
func (f Field) Within(b Bounds) string { return Eq(string(f), b) }
