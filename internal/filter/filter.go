// Package filter computes the candidate list: the ordered set of
// (category, feature) pairs selected by the active category toggles,
// the province scope and the search query. The computation is a pure
// function of its inputs; callers rerun it after every state change.
package filter

import (
	"strings"

	"github.com/Biniyan/sociomap/internal/category"
	"github.com/Biniyan/sociomap/internal/model"
)

// ActiveSet builds an active-category set from keys.
func ActiveSet(keys ...model.CategoryKey) map[model.CategoryKey]bool {
	set := make(map[model.CategoryKey]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

// Candidates walks the provinces in dataset order and, per province,
// the active categories in enumeration order (capitals last),
// appending one candidate per feature in collection order. A province
// name that matches nothing yields an empty result, not an error.
// Highways never appear here; they are composed separately and are
// not province-scoped.
//
// A non-empty query keeps only candidates whose feature name or
// province contains it case-insensitively. Descriptions are not
// searched.
func Candidates(ds *model.Dataset, active map[model.CategoryKey]bool, province, query string) []model.Candidate {
	var result []model.Candidate

	for i := range ds.Provinces {
		p := &ds.Provinces[i]
		if province != "" && p.Name != province {
			continue
		}

		for _, key := range category.CandidateOrder {
			if !active[key] {
				continue
			}
			if key == model.CategoryCapitals {
				result = append(result, model.Candidate{Category: key, Feature: p.Capital})
				continue
			}
			for _, f := range p.Collection(key) {
				result = append(result, model.Candidate{Category: key, Feature: f})
			}
		}
	}

	if query != "" {
		q := strings.ToLower(query)
		var filtered []model.Candidate
		for _, c := range result {
			if strings.Contains(strings.ToLower(c.Feature.Name), q) ||
				strings.Contains(strings.ToLower(c.Feature.Province), q) {
				filtered = append(filtered, c)
			}
		}
		return filtered
	}

	return result
}
