package solr

// Facets configures faceting on a Params sink.
// It is opened by Query.Facets, which enables faceting first.
type Facets struct {
	params Params
}

// Field adds a facet field.
func (f *Facets) Field(field string) *Facets {
	f.params.AddFacetField(field)
	return f
}

// Query adds an ad-hoc facet query.
func (f *Facets) Query(query string) *Facets {
	f.params.AddFacetQuery(query)
	return f
}

// Limit caps the number of counts returned per facet.
func (f *Facets) Limit(limit int) *Facets {
	f.params.SetFacetLimit(limit)
	return f
}

// MinCount drops facet buckets with fewer matches than min.
func (f *Facets) MinCount(min int) *Facets {
	f.params.SetFacetMinCount(min)
	return f
}
