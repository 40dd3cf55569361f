// Package listview projects the candidate list into flat list entries
// for the list view. It reuses the candidate list as computed for the
// map, so both views always show the same filtering result.
package listview

import (
	"github.com/Biniyan/sociomap/internal/category"
	"github.com/Biniyan/sociomap/internal/model"
	"github.com/Biniyan/sociomap/internal/overlay"
)

// Entry is one list-view row. No geometry, display fields only.
type Entry struct {
	CategoryLabel string `json:"categoryLabel"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Province      string `json:"province"`
}

// Project converts candidates to list entries in the same order,
// applying the same description fallback as the map popups.
func Project(candidates []model.Candidate) []Entry {
	var out []Entry
	for _, c := range candidates {
		out = append(out, Entry{
			CategoryLabel: category.Describe(c.Category).Label,
			Name:          c.Feature.Name,
			Description:   overlay.DescribeOrFallback(c.Feature),
			Province:      c.Feature.Province,
		})
	}
	return out
}
