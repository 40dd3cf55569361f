package listview

import (
	"testing"

	"github.com/Biniyan/sociomap/internal/filter"
	"github.com/Biniyan/sociomap/internal/model"
	"github.com/Biniyan/sociomap/internal/overlay"
)

func testCandidates() []model.Candidate {
	return []model.Candidate{
		{Category: model.CategoryMountains, Feature: model.Feature{Name: "Annapurna I", Province: "Gandaki", Lat: 28.6, Lng: 83.82, Description: "आठहजारी हिमाल।"}},
		{Category: model.CategoryLakes, Feature: model.Feature{Name: "Phewa Lake", Province: "Gandaki", Lat: 28.21, Lng: 83.96}},
		{Category: model.CategoryCapitals, Feature: model.Feature{Name: "Pokhara", Province: "Gandaki", Lat: 28.21, Lng: 83.99}},
	}
}

func TestProject(t *testing.T) {
	entries := Project(testCandidates())

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "Annapurna I" || entries[0].CategoryLabel != "हिमाल" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].Description != "आठहजारी हिमाल।" {
		t.Errorf("existing description replaced: %q", entries[0].Description)
	}
	// Phewa Lake has no description, the shared fallback applies.
	if entries[1].Description != overlay.DescribeOrFallback(testCandidates()[1].Feature) {
		t.Errorf("fallback rule differs from map popups: %q", entries[1].Description)
	}
}

func TestProjectMatchesComposedMarkers(t *testing.T) {
	cands := testCandidates()
	entries := Project(cands)
	out := overlay.Compose(cands, nil, filter.ActiveSet(model.CategoryMountains, model.CategoryLakes, model.CategoryCapitals))

	if len(entries) != len(out.Markers) {
		t.Fatalf("list (%d) and map (%d) disagree on item count", len(entries), len(out.Markers))
	}
	for i := range entries {
		if entries[i].Name != out.Markers[i].Popup.Name ||
			entries[i].Province != out.Markers[i].Popup.Province {
			t.Errorf("item %d: list (%s, %s) vs map (%s, %s)", i,
				entries[i].Name, entries[i].Province,
				out.Markers[i].Popup.Name, out.Markers[i].Popup.Province)
		}
	}
}

func TestProjectEmpty(t *testing.T) {
	if got := Project(nil); len(got) != 0 {
		t.Errorf("expected no entries for empty candidates, got %d", len(got))
	}
}
