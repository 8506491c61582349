package domain

import (
	"regexp"
	"strings"
	"time"
)

// PositionClass selects the age ceiling applied to a player.
type PositionClass int

const (
	// PositionOutfield covers every non-goalkeeper role.
	PositionOutfield PositionClass = iota

	// PositionGoalkeeper gets the higher ceiling.
	PositionGoalkeeper
)

var goalkeeperKeywords = []string{"goalkeeper", "keeper", "portiere", "portero", "arquero", "goleiro"}

// ClassifyPosition maps a free-text position label to a PositionClass.
func ClassifyPosition(label string) PositionClass {
	l := strings.ToLower(label)
	for _, kw := range goalkeeperKeywords {
		if strings.Contains(l, kw) {
			return PositionGoalkeeper
		}
	}
	return PositionOutfield
}

// AgePolicy holds the product policy constants for age eligibility.
type AgePolicy struct {
	// MinBirthYear is the strict birth-year floor baked into the graph query.
	MinBirthYear int

	// OutfieldMaxAge is the ceiling for non-goalkeepers.
	OutfieldMaxAge int

	// GoalkeeperMaxAge is the ceiling for goalkeepers.
	GoalkeeperMaxAge int

	// YouthUnder flags players younger than this as prospects.
	YouthUnder int

	// PrimeMaxAge is the upper bound of the prime-age bracket.
	PrimeMaxAge int

	// DefaultAge is assumed when the date of birth is unknown.
	DefaultAge int
}

// Ceiling returns the maximum eligible age for a position class.
func (p AgePolicy) Ceiling(class PositionClass) int {
	if class == PositionGoalkeeper {
		return p.GoalkeeperMaxAge
	}
	return p.OutfieldMaxAge
}

// AgeBracket labels an age for reasoning strings.
type AgeBracket string

// Brackets.
const (
	BracketProspect    AgeBracket = "U-25 PROSPECT"
	BracketPrime       AgeBracket = "PRIME AGE"
	BracketExperienced AgeBracket = "EXPERIENCED"
)

// Bracket classifies an age.
func (p AgePolicy) Bracket(age int) AgeBracket {
	switch {
	case age < p.YouthUnder:
		return BracketProspect
	case age <= p.PrimeMaxAge:
		return BracketPrime
	default:
		return BracketExperienced
	}
}

// ExclusionSet is read-only policy input, loaded once per session.
// The pipeline never mutates it. All matching is case-insensitive substring
// matching; false negatives are accepted, token lists are kept specific to
// keep false positives down.
type ExclusionSet struct {
	KnownPlayers        []string
	DomesticClubs       []string
	NoiseKeywords       []string
	NationalTeamMarkers []string
	Age                 AgePolicy
}

// IsDomestic reports whether the club and league labels point at the
// federation's own league or national-team setup.
func (e *ExclusionSet) IsDomestic(club, league string) bool {
	text := strings.ToLower(club + " " + league)
	return containsAny(text, e.DomesticClubs) || containsAny(text, e.NationalTeamMarkers)
}

// MentionsDomesticClub is the light domestic check used on free-text snippets.
// Unlike IsDomestic it ignores national-team markers, because eligibility
// articles routinely mention the national team.
func (e *ExclusionSet) MentionsDomesticClub(text string) bool {
	return containsAny(strings.ToLower(text), e.DomesticClubs)
}

// IsKnown reports whether name contains an already-known player name.
// Substring matching catches name variants at the cost of occasional
// false exclusions.
func (e *ExclusionSet) IsKnown(name string) bool {
	return containsAny(strings.ToLower(name), e.KnownPlayers)
}

// AgeOf returns the calendar-year age for a birth date or year string.
// known is false when no year can be parsed.
func (e *ExclusionSet) AgeOf(birth string, now time.Time) (age int, known bool) {
	y, ok := ParseYear(birth)
	if !ok {
		return e.Age.DefaultAge, false
	}
	return now.Year() - y, true
}

// IsAgeEligible reports whether the computed age stays within the ceiling
// for the given position class. Unknown birth dates assume DefaultAge.
func (e *ExclusionSet) IsAgeEligible(birth string, class PositionClass, now time.Time) bool {
	age, _ := e.AgeOf(birth, now)
	return age <= e.Age.Ceiling(class)
}

var (
	bareYearTitle = regexp.MustCompile(`^\d{3,4}(\s|$|[-–/])`)
	listTitle     = regexp.MustCompile(`^(list of|lista di|elenco d|liste de|anexo:)`)
	categoryTitle = regexp.MustCompile(`^(category|categoria|categoría|catégorie):`)
)

var monthNames = map[string]bool{
	"january": true, "february": true, "march": true, "april": true, "may": true, "june": true,
	"july": true, "august": true, "september": true, "october": true, "november": true, "december": true,
	"gennaio": true, "febbraio": true, "marzo": true, "aprile": true, "maggio": true, "giugno": true,
	"luglio": true, "agosto": true, "settembre": true, "ottobre": true, "novembre": true, "dicembre": true,
}

// IsNoisePage reports whether a free-text hit is a non-biographical page:
// a chronological list (bare year, bare month, "list of", "category:") or a
// page whose title or snippet carries an irrelevant-context keyword.
func (e *ExclusionSet) IsNoisePage(title, snippet string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return true
	}
	if bareYearTitle.MatchString(t) || listTitle.MatchString(t) || categoryTitle.MatchString(t) {
		return true
	}
	if monthNames[strings.Join(strings.Fields(t), " ")] {
		return true
	}
	return containsAny(t, e.NoiseKeywords) || containsAny(strings.ToLower(snippet), e.NoiseKeywords)
}

// containsAny expects text to be lower-cased already.
func containsAny(text string, tokens []string) bool {
	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" && strings.Contains(text, tok) {
			return true
		}
	}
	return false
}
