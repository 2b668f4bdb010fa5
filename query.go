package solr

// Query represents a builder chain over a Params sink.
// Consumers hold a *Query reference for incremental building.
type Query struct {
	params Params
}

// New sets the base query on p and runs build against the resulting
// Query. An empty base selects MatchAll. Each builder method performs
// exactly one call on p and returns the receiver for chaining.
func New(p Params, base string, build func(*Query)) *Query {
	if base == "" {
		base = MatchAll
	}
	p.SetQuery(base)
	q := &Query{params: p}
	if build != nil {
		build(q)
	}
	return q
}

// Filters replaces the filter queries.
func (q *Query) Filters(filters ...string) *Query {
	q.params.SetFilters(filters...)
	return q
}

// AddFilter appends one filter query.
func (q *Query) AddFilter(filter string) *Query {
	q.params.AddFilter(filter)
	return q
}

// Fields replaces the returned field list.
func (q *Query) Fields(fields ...string) *Query {
	q.params.SetFields(fields...)
	return q
}

// AddField appends one field to the returned field list.
func (q *Query) AddField(field string) *Query {
	q.params.AddField(field)
	return q
}

// Asc appends an ascending sort clause.
func (q *Query) Asc(field string) *Query {
	q.params.AddSort(field, Asc)
	return q
}

// Desc appends a descending sort clause.
func (q *Query) Desc(field string) *Query {
	q.params.AddSort(field, Desc)
	return q
}

// Facets turns faceting on and runs build against a Facets configurator
// bound to the same Params.
func (q *Query) Facets(build func(*Facets)) *Query {
	q.params.SetFaceting(true)
	f := &Facets{params: q.params}
	if build != nil {
		build(f)
	}
	return q
}

// Params returns the underlying sink.
func (q *Query) Params() Params {
	return q.params
}
