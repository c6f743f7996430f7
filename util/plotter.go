package util

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"weather-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const CANDIDATES_MAP_TITLE = "Geocoding Candidates"

// PlotCandidates renders the geocoding candidates for city as an HTML world map.
// The first candidate, the one used for the forecast, is drawn as its own series.
// Candidates whose coordinates do not parse are skipped.
func PlotCandidates(city string, candidates []models.Location, w io.Writer) error {
	var selected, others []opts.GeoData
	for i, c := range candidates {
		lat, err := strconv.ParseFloat(c.Lat, 64)
		if err != nil {
			log.Printf("[PlotCandidates] Skipping %s: bad latitude %q", c.DisplayName, c.Lat)
			continue
		}
		lon, err := strconv.ParseFloat(c.Lon, 64)
		if err != nil {
			log.Printf("[PlotCandidates] Skipping %s: bad longitude %q", c.DisplayName, c.Lon)
			continue
		}

		point := opts.GeoData{Name: c.DisplayName, Value: []float64{lon, lat}}
		if i == 0 {
			selected = append(selected, point)
		} else {
			others = append(others, point)
		}
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: CANDIDATES_MAP_TITLE,
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s: %d candidates", city, len(candidates)),
			Subtitle: "first candidate is used for the forecast",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Selected", types.ChartEffectScatter, selected,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)
	geo.AddSeries("Other candidates", types.ChartScatter, others)

	return geo.Render(w)
}
