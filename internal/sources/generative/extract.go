package generative

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fsgc-labs/titan-scout/internal/core/domain"
)

var errNoArray = errors.New("no array brackets")

// lead is one element of the JSON array the model is asked to return.
type lead struct {
	Name      looseString `json:"name"`
	Club      looseString `json:"club"`
	YearBorn  looseString `json:"year_born"`
	Country   looseString `json:"country"`
	Reasoning looseString `json:"reasoning"`
	SourceURL looseString `json:"source_url"`
}

// looseString accepts a JSON string, number, bool or null.
// Models routinely emit year_born as 1999 rather than "1999".
type looseString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *looseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, string(data) == "null":
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case data[0] == '{' || data[0] == '[':
		*s = ""
	default:
		// numbers and booleans keep their literal form
		if f, err := strconv.ParseFloat(string(data), 64); err == nil && f == float64(int64(f)) {
			*s = looseString(strconv.FormatInt(int64(f), 10))
			return nil
		}
		*s = looseString(data)
	}
	return nil
}

// extractLeads locates the JSON array in free-form model output.
// The span from the first '[' to the last ']' is tried first, then the
// whole text. Array elements that are not objects are skipped.
func extractLeads(text string) ([]lead, error) {
	var items []json.RawMessage

	err := errNoArray
	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
		err = json.Unmarshal([]byte(text[start:end+1]), &items)
	}
	if err != nil {
		if werr := json.Unmarshal([]byte(strings.TrimSpace(text)), &items); werr != nil {
			return nil, fmt.Errorf("%w: no JSON array in model response: %v", domain.ErrParse, err)
		}
	}

	leads := make([]lead, 0, len(items))
	for _, item := range items {
		var l lead
		if json.Unmarshal(item, &l) != nil {
			continue
		}
		leads = append(leads, l)
	}
	return leads, nil
}
