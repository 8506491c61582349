// Package export serialises a final candidate list for hand-off: a CSV for
// spreadsheets and a printable HTML report.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
	"github.com/fsgc-labs/titan-scout/internal/core/ports/driven"
)

// Ensure CSV implements the interface.
var _ driven.Exporter = CSV{}

// csvHeader is the fixed column order.
var csvHeader = []string{"Name", "Club", "Year", "Country", "Found Via", "Source", "Reasoning"}

// CSV writes one row per candidate with every field quoted.
type CSV struct{}

// Format returns "csv".
func (CSV) Format() string {
	return "csv"
}

// Export writes candidates to w.
func (CSV) Export(w io.Writer, candidates []domain.Candidate) error {
	return WriteCSV(w, candidates)
}

// WriteCSV writes the header and one row per candidate. Every field is
// quoted and embedded quotes are doubled, so spreadsheet tools never split
// a reasoning string on its commas.
func WriteCSV(w io.Writer, candidates []domain.Candidate) error {
	bw := bufio.NewWriter(w)
	if err := writeRow(bw, csvHeader); err != nil {
		return err
	}
	for _, c := range candidates {
		row := []string{c.Name, c.Club, c.YearBorn, c.Country, c.FoundVia, c.SourceURL, c.Reasoning}
		if err := writeRow(bw, row); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func writeRow(w *bufio.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if _, err := w.WriteString(strings.Join(quoted, ",") + "\n"); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
