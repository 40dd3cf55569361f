package filter

import (
	"reflect"
	"testing"

	"github.com/Biniyan/sociomap/internal/model"
)

func testDataset() *model.Dataset {
	return &model.Dataset{
		Provinces: []model.Province{
			{
				Name:    "Bagmati",
				Capital: model.Feature{Name: "Kathmandu", Province: "Bagmati", Lat: 27.7, Lng: 85.3},
				Mountains: []model.Feature{
					{Name: "Ganesh Himal", Province: "Bagmati", Lat: 28.0, Lng: 85.05},
				},
				Rivers: []model.Feature{
					{Name: "Bagmati River", Province: "Bagmati", Lat: 27.7, Lng: 85.35},
				},
				ReligiousSites: []model.Feature{
					{Name: "Pashupatinath", Province: "Bagmati", Lat: 27.71, Lng: 85.35},
				},
			},
			{
				Name:    "Gandaki",
				Capital: model.Feature{Name: "Pokhara", Province: "Gandaki", Lat: 28.21, Lng: 83.99},
				Mountains: []model.Feature{
					{Name: "Annapurna I", Province: "Gandaki", Lat: 28.6, Lng: 83.82},
					{Name: "Machhapuchhre", Province: "Gandaki", Lat: 28.5, Lng: 83.95},
				},
				Lakes: []model.Feature{
					{Name: "Phewa Lake", Province: "Gandaki", Lat: 28.21, Lng: 83.96},
				},
			},
		},
		Highways: []model.Highway{
			{Name: "Prithvi Highway", Description: "KTM-Pokhara", Path: []model.LatLng{{Lat: 27.72, Lng: 85.3}, {Lat: 28.21, Lng: 83.99}}},
		},
	}
}

func names(cands []model.Candidate) []string {
	var out []string
	for _, c := range cands {
		out = append(out, c.Feature.Name)
	}
	return out
}

func TestCandidatesCategoryOrder(t *testing.T) {
	ds := testDataset()
	active := ActiveSet(model.CategoryCapitals, model.CategoryMountains)

	got := Candidates(ds, active, "", "")

	// Per province: mountains before capitals, capitals always last.
	want := []string{"Ganesh Himal", "Kathmandu", "Annapurna I", "Machhapuchhre", "Pokhara"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("expected order %v, got %v", want, names(got))
	}

	if got[1].Category != model.CategoryCapitals {
		t.Errorf("expected Kathmandu under capitals, got %s", got[1].Category)
	}
	if got[0].Category != model.CategoryMountains {
		t.Errorf("expected Ganesh Himal under mountains, got %s", got[0].Category)
	}
}

func TestCandidatesProvinceScope(t *testing.T) {
	ds := testDataset()
	active := ActiveSet(model.CategoryMountains, model.CategoryLakes)

	got := Candidates(ds, active, "Gandaki", "")
	want := []string{"Annapurna I", "Machhapuchhre", "Phewa Lake"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("expected %v, got %v", want, names(got))
	}

	for _, c := range got {
		if c.Feature.Province != "Gandaki" {
			t.Errorf("candidate %s leaked from province %s", c.Feature.Name, c.Feature.Province)
		}
	}
}

func TestCandidatesUnknownProvince(t *testing.T) {
	ds := testDataset()
	active := ActiveSet(model.CategoryMountains, model.CategoryCapitals)

	// Unknown province is a silent empty result, not an error.
	if got := Candidates(ds, active, "Khumbu", ""); len(got) != 0 {
		t.Errorf("expected empty result for unknown province, got %d candidates", len(got))
	}
}

func TestCandidatesEmptyActiveSet(t *testing.T) {
	ds := testDataset()
	if got := Candidates(ds, ActiveSet(), "", ""); len(got) != 0 {
		t.Errorf("expected empty result for empty active set, got %d candidates", len(got))
	}
}

func TestCandidatesSearch(t *testing.T) {
	ds := testDataset()
	active := ActiveSet(model.CategoryMountains, model.CategoryCapitals)

	tests := []struct {
		query string
		want  []string
	}{
		{"kathmandu", []string{"Kathmandu"}},
		{"KATHMANDU", []string{"Kathmandu"}},
		{"machha", []string{"Machhapuchhre"}},
		// Province name matches too: everything in Gandaki.
		{"gandaki", []string{"Annapurna I", "Machhapuchhre", "Pokhara"}},
		{"no such place", nil},
		// Empty query keeps everything.
		{"", []string{"Ganesh Himal", "Kathmandu", "Annapurna I", "Machhapuchhre", "Pokhara"}},
	}

	for _, tt := range tests {
		got := names(Candidates(ds, active, "", tt.query))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("query %q: expected %v, got %v", tt.query, tt.want, got)
		}
	}
}

func TestCandidatesSearchIgnoresDescription(t *testing.T) {
	ds := testDataset()
	ds.Provinces[0].Mountains[0].Description = "unique-description-token"
	active := ActiveSet(model.CategoryMountains)

	if got := Candidates(ds, active, "", "unique-description-token"); len(got) != 0 {
		t.Errorf("search must not match descriptions, got %d candidates", len(got))
	}
}

func TestCandidatesCapitalsPerProvince(t *testing.T) {
	ds := testDataset()
	got := Candidates(ds, ActiveSet(model.CategoryCapitals), "", "")

	if len(got) != len(ds.Provinces) {
		t.Fatalf("expected exactly one capital per province (%d), got %d", len(ds.Provinces), len(got))
	}
	for i, c := range got {
		if c.Feature.Province != ds.Provinces[i].Name {
			t.Errorf("capital %d: expected province %s, got %s", i, ds.Provinces[i].Name, c.Feature.Province)
		}
	}
}

func TestCandidatesMissingOptionalCollections(t *testing.T) {
	ds := testDataset()
	// Gandaki has no religiousSites/tradeCenters/etc; toggling them on
	// must not fail, just contribute nothing.
	active := ActiveSet(
		model.CategoryReligiousSites,
		model.CategoryTradeCenters,
		model.CategoryNationalPrideProjects,
		model.CategoryProtectedAreas,
	)

	got := Candidates(ds, active, "Gandaki", "")
	if len(got) != 0 {
		t.Errorf("expected no candidates from absent collections, got %d", len(got))
	}
}

func TestCandidatesPure(t *testing.T) {
	ds := testDataset()
	active := ActiveSet(model.CategoryMountains, model.CategoryRivers, model.CategoryCapitals)

	first := Candidates(ds, active, "", "a")
	second := Candidates(ds, active, "", "a")
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different candidate lists")
	}
}

func TestCandidatesBoundedByDataset(t *testing.T) {
	ds := testDataset()
	active := ActiveSet(
		model.CategoryMountains, model.CategoryRivers, model.CategoryLakes,
		model.CategoryProduction, model.CategoryProtectedAreas,
		model.CategoryReligiousSites, model.CategoryTradeCenters,
		model.CategoryNationalPrideProjects, model.CategoryCapitals,
	)

	got := Candidates(ds, active, "", "")
	if len(got) > ds.FeatureCount() {
		t.Errorf("candidate list (%d) exceeds total features (%d)", len(got), ds.FeatureCount())
	}

	for _, c := range got {
		p := ds.ProvinceByName(c.Feature.Province)
		if p == nil {
			t.Errorf("candidate %s references unknown province %q", c.Feature.Name, c.Feature.Province)
		}
	}
}

func TestCandidatesNeverIncludeHighways(t *testing.T) {
	ds := testDataset()
	active := ActiveSet(model.CategoryHighways, model.CategoryMountains)

	got := Candidates(ds, active, "", "")
	for _, c := range got {
		if c.Category == model.CategoryHighways {
			t.Error("highways must never appear in the candidate list")
		}
	}
	// Mountains still present.
	if len(got) != 3 {
		t.Errorf("expected 3 mountain candidates, got %d", len(got))
	}
}
