// Package solr builds Solr query parameters from small composable
// string helpers and a chainable builder.
//
// The expression helpers are pure functions over strings:
//
//	solr.Eq("manu", "apple")            // manu:apple
//	solr.Not("inStock", false)          // -inStock:false
//	solr.Or(15, 20, 25)                 // (15 OR 20 OR 25)
//	solr.Eq("price", solr.Range(0, 10)) // price:[0 TO 10]
//
// A Query binds them to a Params sink, normally a *QueryParams:
//
//	p := solr.NewQueryParams()
//	solr.New(p, solr.Eq("id", 12345), func(q *solr.Query) {
//		q.AddFilter(solr.Eq("popularity", solr.Or(15, 20, 25))).
//			Fields("id", "name").
//			Desc("score").
//			Facets(func(f *solr.Facets) {
//				f.Field("manu").Limit(10)
//			})
//	})
//
// Nothing here talks to a server. Hand QueryParams.Values() to whatever
// HTTP client you use, or implement Params over your client's own query
// type and the builder drives it directly.
package solr
