package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// DiscoveryMethod is the provenance tag of a candidate.
// It is set once by the adapter that produced the lead and never changes.
type DiscoveryMethod string

const (
	// MethodGraph marks structured, citizenship-backed leads from the knowledge graph.
	MethodGraph DiscoveryMethod = "GRAPH"

	// MethodText marks heuristic leads from free-text or generative search.
	MethodText DiscoveryMethod = "TEXT"
)

// String returns the string representation.
func (m DiscoveryMethod) String() string {
	return string(m)
}

// Rank orders methods for merging and sorting. Higher wins.
func (m DiscoveryMethod) Rank() int {
	if m == MethodGraph {
		return 1
	}
	return 0
}

// Placeholder values used when a field could not be resolved.
const (
	Unknown          = "Unknown"
	NotAvailable     = "N/A"
	FreeAgent        = "Free Agent"
	DefaultReasoning = "Potential match found via search."
)

// Country classifications assigned by the adapters.
const (
	CountryAbroadVerified = "Abroad (Verified)"
	CountryTextDiscovery  = "Text Discovery"
)

// Candidate is the canonical player lead emitted by the aggregation pipeline.
type Candidate struct {
	// Identity is the dedup key derived from name and club.
	Identity string `json:"identity"`

	// Name is the player's full name.
	Name string `json:"name"`

	// Club is the current club, "Free Agent" or "Unknown" when absent.
	Club string `json:"club"`

	League      string `json:"league,omitempty"`
	Position    string `json:"position,omitempty"`
	Citizenship string `json:"citizenship,omitempty"`

	// YearBorn is a year, a full date, or a placeholder when unresolved.
	YearBorn string `json:"year_born"`

	// Country is a classification or a geographic name.
	Country string `json:"country"`

	// Reasoning is a short human-readable justification. Never empty.
	Reasoning string `json:"reasoning"`

	SourceURL string `json:"source_url"`
	ImageURL  string `json:"image_url,omitempty"`

	// FoundVia names the adapter pass that produced the lead.
	FoundVia string `json:"found_via"`

	DiscoveryMethod DiscoveryMethod `json:"discovery_method"`

	// Verified is true only for graph-sourced candidates.
	Verified bool `json:"verified"`
}

var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// BirthYear parses the four-digit birth year out of YearBorn.
// The second return value is false when no plausible year is present.
func (c Candidate) BirthYear() (int, bool) {
	return ParseYear(c.YearBorn)
}

// ParseYear extracts the first plausible four-digit year from free text
// such as "1998", "1998-05-01" or "approx. 2001".
func ParseYear(s string) (int, bool) {
	m := yearPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	y, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return y, true
}

// IdentityFor derives the dedup key for a name and club.
// Names are case-folded with whitespace collapsed; the club is only
// appended when it carries real information.
func IdentityFor(name, club string) string {
	key := NameKey(name)
	if c := ClubKey(club); c != "" {
		return key + "|" + c
	}
	return key
}

// NameKey folds a name for comparison.
func NameKey(name string) string {
	return foldKey(name)
}

// ClubKey folds a club for comparison. Placeholders fold to "".
func ClubKey(club string) string {
	c := foldKey(club)
	switch c {
	case "unknown", "free agent", "n/a":
		return ""
	}
	return c
}

func foldKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
