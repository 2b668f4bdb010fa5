package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tinywasm/solr"
)

type options struct {
	base          string
	filters       []string
	ranges        []string
	fields        []string
	asc           []string
	desc          []string
	facetFields   []string
	facetQueries  []string
	facetLimit    int
	facetMinCount int
	output        string
}

func NewCmdRoot() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "solrq",
		Short: "Compose Solr query parameters on the command line.",
		Long: heredoc.Doc(`
			solrq builds the parameter set for a Solr query and prints it,
			url-encoded or as YAML. It never contacts a server; paste the
			output into curl or your client of choice.

			Examples:
			  solrq -q "id:12345" --filter "popularity:(15 OR 20 OR 25)"
			  solrq --range "price=0..100" --facet-field manu --facet-limit 10
			  solrq --range "added=apr 29 2021..NOW" --output yaml

			Defaults for field, facet-limit, and output can be set in
			.solrq.yaml (current directory or home) or via SOLRQ_* variables.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.base, "query", "q", "", "base query (defaults to the match-all query)")
	flags.StringArrayVar(&opts.filters, "filter", nil, "filter query, repeatable")
	flags.StringArrayVar(&opts.ranges, "range", nil, "range filter as field=lower..upper, repeatable")
	flags.StringSliceVar(&opts.fields, "field", nil, "field to return, repeatable")
	flags.StringArrayVar(&opts.asc, "asc", nil, "ascending sort field, repeatable")
	flags.StringArrayVar(&opts.desc, "desc", nil, "descending sort field, repeatable")
	flags.StringArrayVar(&opts.facetFields, "facet-field", nil, "facet field, repeatable")
	flags.StringArrayVar(&opts.facetQueries, "facet-query", nil, "facet query, repeatable")
	flags.IntVar(&opts.facetLimit, "facet-limit", 0, "max counts returned per facet")
	flags.IntVar(&opts.facetMinCount, "facet-min-count", 0, "min count for a facet bucket to appear")
	flags.StringVar(&opts.output, "output", "url", "output format: url or yaml")

	viper.BindPFlag("field", flags.Lookup("field"))
	viper.BindPFlag("facet-limit", flags.Lookup("facet-limit"))
	viper.BindPFlag("output", flags.Lookup("output"))

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	rangeFilters := make([]string, 0, len(opts.ranges))
	for _, spec := range opts.ranges {
		filter, err := rangeFilter(spec)
		if err != nil {
			return err
		}
		rangeFilters = append(rangeFilters, filter)
	}

	// Bound through viper so config file and SOLRQ_* env can supply
	// defaults when the flag is not passed.
	fields := viper.GetStringSlice("field")
	facetLimit := viper.GetInt("facet-limit")
	output := viper.GetString("output")

	p := solr.NewQueryParams()
	solr.New(p, opts.base, func(q *solr.Query) {
		for _, fq := range opts.filters {
			q.AddFilter(fq)
		}
		for _, fq := range rangeFilters {
			q.AddFilter(fq)
		}
		if len(fields) > 0 {
			q.Fields(fields...)
		}
		for _, f := range opts.asc {
			q.Asc(f)
		}
		for _, f := range opts.desc {
			q.Desc(f)
		}
		if len(opts.facetFields)+len(opts.facetQueries) > 0 || facetLimit > 0 || opts.facetMinCount > 0 {
			q.Facets(func(fc *solr.Facets) {
				for _, f := range opts.facetFields {
					fc.Field(f)
				}
				for _, fq := range opts.facetQueries {
					fc.Query(fq)
				}
				if facetLimit > 0 {
					fc.Limit(facetLimit)
				}
				if opts.facetMinCount > 0 {
					fc.MinCount(opts.facetMinCount)
				}
			})
		}
	})

	out := cmd.OutOrStdout()
	switch output {
	case "url":
		fmt.Fprintln(out, p.Values().Encode())
	case "yaml":
		doc, err := yaml.Marshal(map[string][]string(p.Values()))
		if err != nil {
			return fmt.Errorf("rendering yaml: %w", err)
		}
		fmt.Fprint(out, string(doc))
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
	return nil
}

// rangeFilter turns "field=lower..upper" into a field:[lower TO upper]
// filter query.
func rangeFilter(spec string) (string, error) {
	field, bounds, ok := strings.Cut(spec, "=")
	if !ok {
		return "", fmt.Errorf("range %q: want field=lower..upper", spec)
	}
	lower, upper, ok := strings.Cut(bounds, "..")
	if !ok {
		return "", fmt.Errorf("range %q: want field=lower..upper", spec)
	}
	return solr.Field(field).InRange(bound(lower), bound(upper)), nil
}

// bound normalizes one range bound. Values that parse as dates are
// emitted in the RFC 3339 form Solr's date fields expect; numbers,
// wildcards, and anything unparseable pass through verbatim.
func bound(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return "*"
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return s
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	return s
}
