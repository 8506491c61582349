package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func testExclusions() *ExclusionSet {
	return &DefaultSettings().Exclusions
}

func TestClassifyPosition(t *testing.T) {
	tests := []struct {
		label string
		want  PositionClass
	}{
		{"goalkeeper", PositionGoalkeeper},
		{"Portiere", PositionGoalkeeper},
		{"arquero", PositionGoalkeeper},
		{"midfielder", PositionOutfield},
		{"", PositionOutfield},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPosition(tt.label))
		})
	}
}

func TestAgePolicy_Bracket(t *testing.T) {
	p := testExclusions().Age

	assert.Equal(t, BracketProspect, p.Bracket(21))
	assert.Equal(t, BracketPrime, p.Bracket(25))
	assert.Equal(t, BracketPrime, p.Bracket(30))
	assert.Equal(t, BracketExperienced, p.Bracket(31))
}

func TestAgePolicy_Ceiling(t *testing.T) {
	p := testExclusions().Age

	assert.Equal(t, 33, p.Ceiling(PositionOutfield))
	assert.Equal(t, 40, p.Ceiling(PositionGoalkeeper))
}

func TestExclusionSet_IsDomestic(t *testing.T) {
	e := testExclusions()

	tests := []struct {
		name   string
		club   string
		league string
		want   bool
	}{
		{"domestic club", "SS Tre Penne", "", true},
		{"domestic league", "Some Club", "Campionato Sammarinese", true},
		{"case insensitive", "LA FIORITA", "", true},
		{"national team", "San Marino national football team", "", true},
		{"italian club", "Inter", "Serie A", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsDomestic(tt.club, tt.league))
		})
	}
}

func TestExclusionSet_MentionsDomesticClub_IgnoresNationalTeam(t *testing.T) {
	e := testExclusions()

	assert.True(t, e.MentionsDomesticClub("He joined Tre Fiori in 2020"))
	assert.False(t, e.MentionsDomesticClub("eligible for the San Marino national team"))
}

func TestExclusionSet_IsKnown(t *testing.T) {
	e := testExclusions()

	assert.True(t, e.IsKnown("Andy Selva"))
	assert.True(t, e.IsKnown("ANDY SELVA (footballer)"))
	assert.False(t, e.IsKnown("Mario Rossi"))
}

func TestExclusionSet_AgeOf(t *testing.T) {
	e := testExclusions()

	age, known := e.AgeOf("1998-05-01", testNow)
	assert.True(t, known)
	assert.Equal(t, 27, age)

	age, known = e.AgeOf("", testNow)
	assert.False(t, known)
	assert.Equal(t, 25, age)
}

func TestExclusionSet_IsAgeEligible(t *testing.T) {
	e := testExclusions()

	assert.True(t, e.IsAgeEligible("1992", PositionOutfield, testNow))
	assert.False(t, e.IsAgeEligible("1991", PositionOutfield, testNow))
	assert.True(t, e.IsAgeEligible("1986", PositionGoalkeeper, testNow))
	assert.False(t, e.IsAgeEligible("1984", PositionGoalkeeper, testNow))
	assert.True(t, e.IsAgeEligible("unknown", PositionOutfield, testNow))
}

func TestExclusionSet_IsNoisePage(t *testing.T) {
	e := testExclusions()

	tests := []struct {
		name    string
		title   string
		snippet string
		want    bool
	}{
		{"bare year", "1994", "", true},
		{"year with suffix", "1994 in football", "", true},
		{"list page", "List of San Marino international footballers", "", true},
		{"italian list", "Lista di calciatori", "", true},
		{"category", "Category:Footballers", "", true},
		{"month", "Maggio", "", true},
		{"noise keyword title", "Giovanni Rossi (politician)", "", true},
		{"noise keyword snippet", "Giovanni Rossi", "was a Sammarinese politician", true},
		{"empty title", "", "", true},
		{"player page", "Mario Rossi", "is an Italian footballer of Sammarinese descent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsNoisePage(tt.title, tt.snippet))
		})
	}
}
