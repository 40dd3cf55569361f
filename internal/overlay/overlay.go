// Package overlay turns the candidate list and the highway collection
// into renderer-agnostic overlay descriptors. It never touches
// renderer state; the frontend draws whatever it is handed.
package overlay

import (
	"github.com/Biniyan/sociomap/internal/category"
	"github.com/Biniyan/sociomap/internal/model"
)

// Highway polyline styling, shared with the frontend contract.
const (
	HighwayColor   = "#ef4444"
	HighwayWeight  = 4
	HighwayOpacity = 0.8
	HighwayDash    = "10, 10"
)

// MarkerStyle is the visual identity a marker inherits from its
// category.
type MarkerStyle struct {
	Color string `json:"color"`
	Glyph string `json:"glyph"`
}

// PopupContent is everything a marker popup displays.
type PopupContent struct {
	CategoryLabel string `json:"categoryLabel"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Province      string `json:"province"`
}

// Marker positions one candidate on the map.
type Marker struct {
	Lat   float64      `json:"lat"`
	Lng   float64      `json:"lng"`
	Style MarkerStyle  `json:"style"`
	Popup PopupContent `json:"popup"`
}

// LineStyle styles a highway polyline.
type LineStyle struct {
	Color   string  `json:"color"`
	Weight  int     `json:"weight"`
	Opacity float64 `json:"opacity"`
	Dash    string  `json:"dash"`
}

// LinePopup is the popup content of a highway polyline.
type LinePopup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Polyline draws one highway path.
type Polyline struct {
	Path    []model.LatLng `json:"path"`
	Style   LineStyle      `json:"style"`
	Tooltip string         `json:"tooltip"`
	Popup   LinePopup      `json:"popup"`
}

// Overlays holds everything to draw for one recomputation. Polylines
// are drawn before markers so markers stay visually on top; the
// renderer must honor slice order.
type Overlays struct {
	Polylines []Polyline `json:"polylines"`
	Markers   []Marker   `json:"markers"`
}

// DescribeOrFallback returns the feature's description, or the fixed
// fallback sentence naming its province. The feature itself is never
// modified; this is a presentation rule only.
func DescribeOrFallback(f model.Feature) string {
	if f.Description != "" {
		return f.Description
	}
	return f.Province + " प्रदेशमा अवस्थित एक महत्वपूर्ण भौगोलिक विशेषता।"
}

// Compose builds the overlay set for one candidate list. Highways are
// included only while their category is active; they are independent
// of the province scope and the search query. Marker order follows
// candidate order exactly.
func Compose(candidates []model.Candidate, highways []model.Highway, active map[model.CategoryKey]bool) Overlays {
	var out Overlays

	if active[model.CategoryHighways] {
		for _, hw := range highways {
			out.Polylines = append(out.Polylines, Polyline{
				Path: hw.Path,
				Style: LineStyle{
					Color:   HighwayColor,
					Weight:  HighwayWeight,
					Opacity: HighwayOpacity,
					Dash:    HighwayDash,
				},
				Tooltip: hw.Name,
				Popup:   LinePopup{Name: hw.Name, Description: hw.Description},
			})
		}
	}

	for _, c := range candidates {
		desc := category.Describe(c.Category)
		out.Markers = append(out.Markers, Marker{
			Lat:   c.Feature.Lat,
			Lng:   c.Feature.Lng,
			Style: MarkerStyle{Color: desc.Color, Glyph: desc.Glyph},
			Popup: PopupContent{
				CategoryLabel: desc.Label,
				Name:          c.Feature.Name,
				Description:   DescribeOrFallback(c.Feature),
				Province:      c.Feature.Province,
			},
		})
	}

	return out
}
