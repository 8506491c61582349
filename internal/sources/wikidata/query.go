package wikidata

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

// defaultQuery selects living footballers with San Marino citizenship,
// birthplace or parentage. {min_birth_year} is the only parameter.
//
//go:embed query.sparql
var defaultQuery string

// LoadQuery returns the query template, read from path when set.
func LoadQuery(path string) (string, error) {
	if path == "" {
		return defaultQuery, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read graph query %s: %w", path, err)
	}
	return string(data), nil
}

// RenderQuery fills the birth-year floor into a query template.
func RenderQuery(tmpl string, minBirthYear int) string {
	return domain.RenderTemplate(tmpl, map[string]string{
		"min_birth_year": strconv.Itoa(minBirthYear),
	})
}
