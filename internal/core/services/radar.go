package services

import (
	"net/url"
	"strings"

	"github.com/fsgc-labs/titan-scout/internal/core/ports/driving"
)

// Ensure RadarService implements the interface.
var _ driving.RadarService = (*RadarService)(nil)

const googleSearchURL = "https://www.google.com/search?q="

// RadarService is the onomastic radar over a fixed surname list.
type RadarService struct {
	surnames []string
}

// NewRadarService creates a radar over surnames.
func NewRadarService(surnames []string) *RadarService {
	return &RadarService{surnames: surnames}
}

// Surnames returns the surnames containing filter, case-insensitively,
// in configured order. An empty filter returns every surname.
func (r *RadarService) Surnames(filter string) []string {
	f := strings.ToLower(strings.TrimSpace(filter))
	out := make([]string, 0, len(r.surnames))
	for _, s := range r.surnames {
		if strings.Contains(strings.ToLower(s), f) {
			out = append(out, s)
		}
	}
	return out
}

// Links builds the manual reconnaissance searches for a surname.
func (r *RadarService) Links(surname string) driving.IntelLinks {
	surname = strings.TrimSpace(surname)
	return driving.IntelLinks{
		Surname:   surname,
		Italy:     dork(`site:tuttocampo.it OR site:transfermarkt.it "` + surname + `" calciatore`),
		Argentina: dork(`site:.ar "` + surname + `" futbol inferiores OR reserva`),
		USA:       dork(`site:.edu "` + surname + `" soccer roster`),
	}
}

func dork(q string) string {
	return googleSearchURL + url.QueryEscape(q)
}
