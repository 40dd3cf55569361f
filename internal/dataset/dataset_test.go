package dataset

import (
	"testing"

	"github.com/Biniyan/sociomap/internal/model"
)

func TestSeedParses(t *testing.T) {
	ds, err := Seed()
	if err != nil {
		t.Fatalf("parsing embedded dataset: %v", err)
	}

	if len(ds.Provinces) != 7 {
		t.Errorf("expected 7 provinces, got %d", len(ds.Provinces))
	}
	if len(ds.Highways) == 0 {
		t.Error("expected at least one highway")
	}
}

func TestSeedInvariants(t *testing.T) {
	ds, err := Seed()
	if err != nil {
		t.Fatalf("parsing embedded dataset: %v", err)
	}

	seen := make(map[string]bool)
	for i := range ds.Provinces {
		p := &ds.Provinces[i]
		if seen[p.Name] {
			t.Errorf("duplicate province name %q", p.Name)
		}
		seen[p.Name] = true

		if p.Capital.Name == "" {
			t.Errorf("province %s has no capital", p.Name)
		}
		if p.Capital.Province != p.Name {
			t.Errorf("capital %s claims province %q, owned by %q", p.Capital.Name, p.Capital.Province, p.Name)
		}

		check := func(feats []model.Feature, what string) {
			for _, f := range feats {
				if f.Province != p.Name {
					t.Errorf("%s %q claims province %q, owned by %q", what, f.Name, f.Province, p.Name)
				}
				if f.Lat < -90 || f.Lat > 90 || f.Lng < -180 || f.Lng > 180 {
					t.Errorf("%s %q has out-of-range coordinates (%v, %v)", what, f.Name, f.Lat, f.Lng)
				}
			}
		}
		check(p.Mountains, "mountain")
		check(p.Rivers, "river")
		check(p.Lakes, "lake")
		check(p.Production, "production zone")
		check(p.ProtectedAreas, "protected area")
		check(p.ReligiousSites, "religious site")
		check(p.TradeCenters, "trade center")
		check(p.NationalPrideProjects, "pride project")
	}

	for _, hw := range ds.Highways {
		if len(hw.Path) < 2 {
			t.Errorf("highway %q has fewer than 2 path points", hw.Name)
		}
		if hw.Description == "" {
			t.Errorf("highway %q has no description", hw.Name)
		}
	}
}

func TestSeedReturnsFreshCopies(t *testing.T) {
	a, err := Seed()
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	a.Provinces[0].Name = "mutated"

	b, err := Seed()
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if b.Provinces[0].Name == "mutated" {
		t.Error("mutating one copy affected another")
	}
}
