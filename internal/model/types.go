package model

// CategoryKey identifies one of the ten fixed feature categories.
type CategoryKey string

const (
	CategoryMountains             CategoryKey = "mountains"
	CategoryRivers                CategoryKey = "rivers"
	CategoryLakes                 CategoryKey = "lakes"
	CategoryProduction            CategoryKey = "production"
	CategoryProtectedAreas        CategoryKey = "protectedAreas"
	CategoryReligiousSites        CategoryKey = "religiousSites"
	CategoryTradeCenters          CategoryKey = "tradeCenters"
	CategoryNationalPrideProjects CategoryKey = "nationalPrideProjects"
	CategoryHighways              CategoryKey = "highways"
	CategoryCapitals              CategoryKey = "capitals"
)

// Feature is a single named geographic point of interest. It belongs to
// exactly one province and is reachable only through that province's
// collections.
type Feature struct {
	Name        string  `json:"name"`
	Province    string  `json:"province"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description,omitempty"`
}

// Province groups the curriculum's feature collections under one name.
// The name is unique and acts as the identifier. The last four
// collections are optional in the source data; nil means empty.
type Province struct {
	Name                  string    `json:"name"`
	Capital               Feature   `json:"capital"`
	Mountains             []Feature `json:"mountains"`
	Rivers                []Feature `json:"rivers"`
	Lakes                 []Feature `json:"lakes"`
	Production            []Feature `json:"production"`
	ProtectedAreas        []Feature `json:"protectedAreas,omitempty"`
	ReligiousSites        []Feature `json:"religiousSites,omitempty"`
	TradeCenters          []Feature `json:"tradeCenters,omitempty"`
	NationalPrideProjects []Feature `json:"nationalPrideProjects,omitempty"`
}

// Collection returns the features filed under a feature-bearing
// category key, in collection order. Capitals and highways are not
// collections; they return nil.
func (p *Province) Collection(key CategoryKey) []Feature {
	switch key {
	case CategoryMountains:
		return p.Mountains
	case CategoryRivers:
		return p.Rivers
	case CategoryLakes:
		return p.Lakes
	case CategoryProduction:
		return p.Production
	case CategoryProtectedAreas:
		return p.ProtectedAreas
	case CategoryReligiousSites:
		return p.ReligiousSites
	case CategoryTradeCenters:
		return p.TradeCenters
	case CategoryNationalPrideProjects:
		return p.NationalPrideProjects
	default:
		return nil
	}
}

// LatLng is one vertex of a highway path.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Highway is a national highway drawn as a polyline. Highways are
// country-wide: they carry no province and are never province-scoped.
type Highway struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Path        []LatLng `json:"path"`
}

// Dataset is the full read-only curriculum dataset. Province order is
// the dataset's natural order and is preserved everywhere downstream.
type Dataset struct {
	Provinces []Province `json:"provinces"`
	Highways  []Highway  `json:"highways"`
}

// ProvinceByName returns the named province, or nil if absent.
func (d *Dataset) ProvinceByName(name string) *Province {
	for i := range d.Provinces {
		if d.Provinces[i].Name == name {
			return &d.Provinces[i]
		}
	}
	return nil
}

// FeatureCount counts every feature in every collection plus one
// capital per province.
func (d *Dataset) FeatureCount() int {
	n := 0
	for i := range d.Provinces {
		p := &d.Provinces[i]
		n += len(p.Mountains) + len(p.Rivers) + len(p.Lakes) + len(p.Production) +
			len(p.ProtectedAreas) + len(p.ReligiousSites) + len(p.TradeCenters) +
			len(p.NationalPrideProjects) + 1
	}
	return n
}

// Candidate pairs a feature with the category it was selected under.
// Candidates are produced fresh on every filter recomputation and
// never mutated.
type Candidate struct {
	Category CategoryKey `json:"category"`
	Feature  Feature     `json:"feature"`
}

// Role tags a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one message in the assistant log.
type ConversationTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}
