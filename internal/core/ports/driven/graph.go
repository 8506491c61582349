package driven

import "context"

// Binding is one result row of a structured query: variable name to value.
// Unbound optional variables are absent from the map.
type Binding map[string]string

// GraphClient executes structured queries against a knowledge-graph endpoint.
type GraphClient interface {
	// Select runs a query and returns its result rows.
	Select(ctx context.Context, query string) ([]Binding, error)
}
