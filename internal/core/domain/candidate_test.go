package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscoveryMethod_Rank(t *testing.T) {
	assert.Greater(t, MethodGraph.Rank(), MethodText.Rank())
	assert.Equal(t, "GRAPH", MethodGraph.String())
	assert.Equal(t, "TEXT", MethodText.String())
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		year int
		ok   bool
	}{
		{"1998", 1998, true},
		{"1998-05-01T00:00:00Z", 1998, true},
		{"approx. 2001", 2001, true},
		{"born 3 March 2003 in Rimini", 2003, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"1850", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			y, ok := ParseYear(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.year, y)
		})
	}
}

func TestCandidate_BirthYear(t *testing.T) {
	y, ok := Candidate{YearBorn: "2000-01-01"}.BirthYear()
	assert.True(t, ok)
	assert.Equal(t, 2000, y)

	_, ok = Candidate{YearBorn: Unknown}.BirthYear()
	assert.False(t, ok)
}

func TestIdentityFor(t *testing.T) {
	tests := []struct {
		name string
		club string
		want string
	}{
		{"Mario Rossi", "Inter", "mario rossi|inter"},
		{"  Mario   ROSSI ", "INTER", "mario rossi|inter"},
		{"Mario Rossi", "", "mario rossi"},
		{"Mario Rossi", Unknown, "mario rossi"},
		{"Mario Rossi", FreeAgent, "mario rossi"},
		{"Mario Rossi", NotAvailable, "mario rossi"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.club, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentityFor(tt.name, tt.club))
		})
	}
}

func TestIdentityFor_DistinctClubs(t *testing.T) {
	assert.NotEqual(t, IdentityFor("Luca Guidi", "Rimini"), IdentityFor("Luca Guidi", "Cesena"))
}

func TestClubKey(t *testing.T) {
	tests := []struct {
		club string
		want string
	}{
		{" FC  Inter ", "fc inter"},
		{"", ""},
		{Unknown, ""},
		{"free agent", ""},
		{NotAvailable, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClubKey(tt.club), tt.club)
	}
	assert.Equal(t, "mario rossi", NameKey(" Mario\tROSSI"))
}
