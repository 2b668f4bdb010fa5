package solr

import (
	"reflect"
	"testing"
)

func TestQueryParamsValues(t *testing.T) {
	p := NewQueryParams()
	p.SetQuery("id:12345")
	p.AddFilter("inStock:true")
	p.AddFilter("popularity:(15 OR 20 OR 25)")
	p.SetFields("id", "name")
	p.AddField("price")
	p.AddSort("price", Asc)
	p.AddSort("score", Desc)
	p.SetFaceting(true)
	p.AddFacetField("manu")
	p.AddFacetQuery("price:[0 TO 100]")
	p.SetFacetLimit(10)
	p.SetFacetMinCount(1)

	v := p.Values()
	checks := map[string][]string{
		"q":              {"id:12345"},
		"fq":             {"inStock:true", "popularity:(15 OR 20 OR 25)"},
		"fl":             {"id,name,price"},
		"sort":           {"price asc,score desc"},
		"facet":          {"true"},
		"facet.field":    {"manu"},
		"facet.query":    {"price:[0 TO 100]"},
		"facet.limit":    {"10"},
		"facet.mincount": {"1"},
	}
	for key, want := range checks {
		if got := v[key]; !reflect.DeepEqual(got, want) {
			t.Errorf("values[%q] = %v, want %v", key, got, want)
		}
	}
	if len(v) != len(checks) {
		t.Errorf("expected %d parameters, got %d: %v", len(checks), len(v), v)
	}
}

func TestQueryParamsValuesOmitsUnset(t *testing.T) {
	p := NewQueryParams()
	p.SetQuery(MatchAll)

	v := p.Values()
	if got := v.Encode(); got != "q=%2A%3A%2A" {
		t.Errorf("expected only the q parameter, got %q", got)
	}
}

func TestValuesSkipsFacetParamsWhileFacetingOff(t *testing.T) {
	p := NewQueryParams()
	p.SetQuery(MatchAll)
	p.AddFacetField("manu")
	p.SetFacetLimit(10)

	if v := p.Values(); v.Has("facet.field") || v.Has("facet.limit") {
		t.Errorf("facet parameters emitted with faceting off: %v", v)
	}

	p.SetFaceting(true)
	if v := p.Values(); !v.Has("facet.field") || !v.Has("facet.limit") {
		t.Errorf("facet parameters missing with faceting on: %v", v)
	}
}

func TestSetFiltersReplacesAndCopies(t *testing.T) {
	p := NewQueryParams()
	p.AddFilter("old:1")

	in := []string{"a:1", "b:2"}
	p.SetFilters(in...)
	in[0] = "mutated"

	want := []string{"a:1", "b:2"}
	if !reflect.DeepEqual(p.Filters(), want) {
		t.Errorf("filters = %v, want %v", p.Filters(), want)
	}
}

func TestSortClauseAccessors(t *testing.T) {
	p := NewQueryParams()
	p.AddSort("price", Desc)

	sorts := p.Sorts()
	if len(sorts) != 1 {
		t.Fatalf("expected 1 sort clause, got %d", len(sorts))
	}
	if sorts[0].Field() != "price" || sorts[0].Order() != Desc {
		t.Errorf("sort clause = %s %s, want price desc", sorts[0].Field(), sorts[0].Order())
	}
}
