package services

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRadarService_Surnames(t *testing.T) {
	radar := NewRadarService([]string{"Gasperoni", "Giardi", "Zonzini", "Berardi"})

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"Gasperoni", "Giardi", "Zonzini", "Berardi"}},
		{"ardi", []string{"Giardi", "Berardi"}},
		{"  GAS ", []string{"Gasperoni"}},
		{"xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			assert.Equal(t, tt.want, radar.Surnames(tt.filter))
		})
	}
}

func TestRadarService_Links(t *testing.T) {
	radar := NewRadarService(nil)

	links := radar.Links(" Gasperoni ")

	assert.Equal(t, "Gasperoni", links.Surname)

	tests := []struct {
		name string
		link string
		want []string
	}{
		{"italy", links.Italy, []string{"site:tuttocampo.it", "site:transfermarkt.it", `"Gasperoni"`, "calciatore"}},
		{"argentina", links.Argentina, []string{"site:.ar", `"Gasperoni"`, "inferiores"}},
		{"usa", links.USA, []string{"site:.edu", `"Gasperoni"`, "soccer roster"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, strings.HasPrefix(tt.link, googleSearchURL))

			u, err := url.Parse(tt.link)
			require.NoError(t, err)
			q := u.Query().Get("q")
			for _, w := range tt.want {
				assert.Contains(t, q, w)
			}
		})
	}
}
