// Package sources holds the source adapters that feed the aggregation engine.
//
// Each subpackage implements driven.Source for one external service:
//
//   - wikidata: one structured SPARQL query per scan, citizenship-backed leads
//   - wikipedia: keyword search over the en/it encyclopedias
//   - generative: a generative model with a web-search tool, one call per term and strategy
//
// Adapters apply the exclusion policy before returning. They report
// transport and parse failures as errors and never panic on bad input.
package sources
