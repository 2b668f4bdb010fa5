package solr

import (
	"net/url"
	"strconv"
	"strings"
)

// SortClause is a sealed value type recording one AddSort call.
type SortClause struct {
	field string
	order Order
}

func (s SortClause) Field() string { return s.field }
func (s SortClause) Order() Order  { return s.order }

// QueryParams is the bundled in-memory Params implementation. It stores
// exactly what the builder sets; executing the query is the job of
// whatever client the caller hands Values() to.
type QueryParams struct {
	query         string
	filters       []string
	fields        []string
	sorts         []SortClause
	facet         bool
	facetFields   []string
	facetQueries  []string
	facetLimit    int
	facetMinCount int
	hasLimit      bool
	hasMinCount   bool
}

// NewQueryParams returns an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// SetQuery sets the base query.
func (p *QueryParams) SetQuery(query string) { p.query = query }

// SetFilters replaces the filter queries with a copy of filters.
func (p *QueryParams) SetFilters(filters ...string) {
	p.filters = append([]string(nil), filters...)
}

// AddFilter appends one filter query.
func (p *QueryParams) AddFilter(filter string) {
	p.filters = append(p.filters, filter)
}

// SetFields replaces the returned field list with a copy of fields.
func (p *QueryParams) SetFields(fields ...string) {
	p.fields = append([]string(nil), fields...)
}

// AddField appends one field to the returned field list.
func (p *QueryParams) AddField(field string) {
	p.fields = append(p.fields, field)
}

// AddSort appends a sort clause.
func (p *QueryParams) AddSort(field string, order Order) {
	p.sorts = append(p.sorts, SortClause{field: field, order: order})
}

// SetFaceting turns faceting on or off.
func (p *QueryParams) SetFaceting(on bool) { p.facet = on }

// AddFacetField appends a facet field.
func (p *QueryParams) AddFacetField(field string) {
	p.facetFields = append(p.facetFields, field)
}

// AddFacetQuery appends an ad-hoc facet query.
func (p *QueryParams) AddFacetQuery(query string) {
	p.facetQueries = append(p.facetQueries, query)
}

// SetFacetLimit caps the number of counts returned per facet.
func (p *QueryParams) SetFacetLimit(limit int) {
	p.facetLimit = limit
	p.hasLimit = true
}

// SetFacetMinCount drops facet buckets with fewer matches than min.
func (p *QueryParams) SetFacetMinCount(min int) {
	p.facetMinCount = min
	p.hasMinCount = true
}

func (p *QueryParams) Query() string          { return p.query }
func (p *QueryParams) Filters() []string      { return p.filters }
func (p *QueryParams) Fields() []string       { return p.fields }
func (p *QueryParams) Sorts() []SortClause    { return p.sorts }
func (p *QueryParams) Faceting() bool         { return p.facet }
func (p *QueryParams) FacetFields() []string  { return p.facetFields }
func (p *QueryParams) FacetQueries() []string { return p.facetQueries }

// Values renders the stored state under Solr's common parameter names,
// ready for any HTTP client that accepts url.Values. Facet parameters
// are emitted only while faceting is on; an unset facet limit or
// min-count is omitted rather than defaulted.
func (p *QueryParams) Values() url.Values {
	v := url.Values{}
	if p.query != "" {
		v.Set("q", p.query)
	}
	for _, fq := range p.filters {
		v.Add("fq", fq)
	}
	if len(p.fields) > 0 {
		v.Set("fl", strings.Join(p.fields, ","))
	}
	if len(p.sorts) > 0 {
		clauses := make([]string, len(p.sorts))
		for i, s := range p.sorts {
			clauses[i] = s.field + " " + s.order.String()
		}
		v.Set("sort", strings.Join(clauses, ","))
	}
	if p.facet {
		v.Set("facet", "true")
		for _, f := range p.facetFields {
			v.Add("facet.field", f)
		}
		for _, fq := range p.facetQueries {
			v.Add("facet.query", fq)
		}
		if p.hasLimit {
			v.Set("facet.limit", strconv.Itoa(p.facetLimit))
		}
		if p.hasMinCount {
			v.Set("facet.mincount", strconv.Itoa(p.facetMinCount))
		}
	}
	return v
}
