package util

import (
	"bytes"
	"strings"
	"testing"

	"weather-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotCandidates(t *testing.T) {
	candidates := []models.Location{
		{Lat: "52.5200", Lon: "13.4050", DisplayName: "Berlin, Deutschland"},
		{Lat: "44.4686", Lon: "-71.1851", DisplayName: "Berlin, New Hampshire"},
		{Lat: "north", Lon: "0", DisplayName: "Broken"},
	}
	var buf bytes.Buffer

	err := PlotCandidates("Berlin", candidates, &buf)

	require.NoError(t, err)
	html := buf.String()
	assert.True(t, strings.Contains(html, CANDIDATES_MAP_TITLE))
	assert.Contains(t, html, "Berlin, Deutschland")
	assert.NotContains(t, html, "Broken")
}

func TestPlotCandidates_Empty(t *testing.T) {
	var buf bytes.Buffer

	err := PlotCandidates("Atlantis", nil, &buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), CANDIDATES_MAP_TITLE)
}
