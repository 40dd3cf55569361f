// Package category is the closed registry of the ten feature
// categories and their fixed visual identity. The set never grows at
// runtime; asking for an unknown key is a programming error.
package category

import (
	"fmt"

	"github.com/Biniyan/sociomap/internal/model"
)

// Descriptor is the visual identity of one category: the Nepali
// display label, the marker color and the SVG path glyph drawn inside
// the marker.
type Descriptor struct {
	Key   model.CategoryKey `json:"key"`
	Label string            `json:"label"`
	Color string            `json:"color"`
	Glyph string            `json:"glyph"`
}

// Order is the fixed enumeration order of all ten categories, used for
// legend rendering and sidebar toggles.
var Order = []model.CategoryKey{
	model.CategoryMountains,
	model.CategoryRivers,
	model.CategoryLakes,
	model.CategoryProduction,
	model.CategoryProtectedAreas,
	model.CategoryReligiousSites,
	model.CategoryTradeCenters,
	model.CategoryNationalPrideProjects,
	model.CategoryHighways,
	model.CategoryCapitals,
}

// CandidateOrder is the order the filter engine walks per province.
// Highways never enter the candidate list (they come from the
// independent highway collection) and capitals always come last.
var CandidateOrder = []model.CategoryKey{
	model.CategoryMountains,
	model.CategoryRivers,
	model.CategoryLakes,
	model.CategoryProduction,
	model.CategoryProtectedAreas,
	model.CategoryReligiousSites,
	model.CategoryTradeCenters,
	model.CategoryNationalPrideProjects,
	model.CategoryCapitals,
}

var descriptors = map[model.CategoryKey]Descriptor{
	model.CategoryMountains: {
		Key:   model.CategoryMountains,
		Label: "हिमाल",
		Color: "#6d4c41",
		Glyph: "m8 3 4 8 5-5 5 15H2L8 3z",
	},
	model.CategoryRivers: {
		Key:   model.CategoryRivers,
		Label: "नदी",
		Color: "#1976d2",
		Glyph: "M2 6c.6.5 1.2 1 2.5 1C7 7 7 5 9.5 5c2.6 0 2.4 2 5 2 2.5 0 2.5-2 5-2 1.3 0 1.9.5 2.5 1M2 12c.6.5 1.2 1 2.5 1 2.5 0 2.5-2 5-2 2.6 0 2.4 2 5 2 2.5 0 2.5-2 5-2 1.3 0 1.9.5 2.5 1M2 18c.6.5 1.2 1 2.5 1 2.5 0 2.5-2 5-2 2.6 0 2.4 2 5 2 2.5 0 2.5-2 5-2 1.3 0 1.9.5 2.5 1",
	},
	model.CategoryLakes: {
		Key:   model.CategoryLakes,
		Label: "ताल",
		Color: "#00acc1",
		Glyph: "M12 22a7 7 0 0 0 7-7c0-2-1-3.9-3-5.5s-3.5-4-4-6.5c-.5 2.5-2 4.9-4 6.5C6 11.1 5 13 5 15a7 7 0 0 0 7 7z",
	},
	model.CategoryProduction: {
		Key:   model.CategoryProduction,
		Label: "उत्पादन क्षेत्र",
		Color: "#2e7d32",
		Glyph: "M7 20h10M10 20V8a2 2 0 0 1 2-2h0a2 2 0 0 1 2 2v12M12 14v6M12 10V6M12 6V3",
	},
	model.CategoryProtectedAreas: {
		Key:   model.CategoryProtectedAreas,
		Label: "संरक्षित क्षेत्र",
		Color: "#1b5e20",
		Glyph: "M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z",
	},
	model.CategoryReligiousSites: {
		Key:   model.CategoryReligiousSites,
		Label: "धार्मिक स्थल",
		Color: "#f57c00",
		Glyph: "M12 22v-9m0 0l-5-5m5 5l5-5M7 8l5-5 5 5",
	},
	model.CategoryTradeCenters: {
		Key:   model.CategoryTradeCenters,
		Label: "व्यापारिक केन्द्र",
		Color: "#455a64",
		Glyph: "M3 9l9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2z",
	},
	model.CategoryNationalPrideProjects: {
		Key:   model.CategoryNationalPrideProjects,
		Label: "राष्ट्रिय गौरव",
		Color: "#fbc02d",
		Glyph: "M12 2l3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z",
	},
	model.CategoryHighways: {
		Key:   model.CategoryHighways,
		Label: "राजमार्ग",
		Color: "#212121",
		Glyph: "M4 19l4-14M20 19l-4-14M12 5v2M12 11v2M12 17v2",
	},
	model.CategoryCapitals: {
		Key:   model.CategoryCapitals,
		Label: "राजधानी",
		Color: "#c62828",
		Glyph: "M6 22V4a2 2 0 0 1 2-2h8a2 2 0 0 1 2 2v18M6 12H4a2 2 0 0 0-2 2v6a2 2 0 0 0 2 2h2M18 9h2a2 2 0 0 1 2 2v9a2 2 0 0 1-2 2h-2M10 6h4M10 10h4M10 14h4M10 18h4",
	},
}

// Describe returns the descriptor for key. The category set is closed;
// an unknown key means a caller bug, so this panics rather than
// returning an error.
func Describe(key model.CategoryKey) Descriptor {
	d, ok := descriptors[key]
	if !ok {
		panic(fmt.Sprintf("category: unknown key %q", key))
	}
	return d
}

// Valid reports whether key names one of the ten fixed categories.
func Valid(key model.CategoryKey) bool {
	_, ok := descriptors[key]
	return ok
}

// All returns every descriptor in enumeration order.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(Order))
	for _, key := range Order {
		out = append(out, descriptors[key])
	}
	return out
}
