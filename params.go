package solr

// Order represents a sort direction.
type Order int

const (
	Asc Order = iota
	Desc
)

// String returns the keyword Solr expects in a sort parameter.
func (o Order) String() string {
	if o == Desc {
		return "desc"
	}
	return "asc"
}

// Params represents the query object mutated by a builder chain.
// It must remain compatible with any Solr client's query type; consumers
// implement it over their client, or use the bundled QueryParams.
type Params interface {
	SetQuery(query string)
	SetFilters(filters ...string)
	AddFilter(filter string)
	SetFields(fields ...string)
	AddField(field string)
	AddSort(field string, order Order)
	SetFaceting(on bool)
	AddFacetField(field string)
	AddFacetQuery(query string)
	SetFacetLimit(limit int)
	SetFacetMinCount(min int)
}
