// Package store persists the curriculum dataset in DuckDB. The map
// server loads the dataset once at startup and serves it read-only;
// writes only happen through the load and import commands.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Biniyan/sociomap/internal/model"
	_ "github.com/duckdb/duckdb-go/v2"
)

// Store manages all data persistence via DuckDB.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) a DuckDB database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "sociomap.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	seqs := []string{
		"CREATE SEQUENCE IF NOT EXISTS features_seq",
	}
	for _, seq := range seqs {
		if _, err := s.DB.Exec(seq); err != nil {
			return fmt.Errorf("creating sequence: %w", err)
		}
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS provinces (
			pos INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS features (
			id INTEGER PRIMARY KEY DEFAULT nextval('features_seq'),
			province_pos INTEGER NOT NULL REFERENCES provinces(pos),
			category TEXT NOT NULL,
			pos INTEGER NOT NULL,
			name TEXT NOT NULL,
			lat DOUBLE NOT NULL,
			lng DOUBLE NOT NULL,
			description TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS highways (
			pos INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS highway_points (
			highway_pos INTEGER NOT NULL REFERENCES highways(pos),
			pos INTEGER NOT NULL,
			lat DOUBLE NOT NULL,
			lng DOUBLE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:40], err)
		}
	}

	return nil
}

// featureCategories is the category column order used when writing a
// province's collections. Capitals are stored as a one-row collection.
var featureCategories = []model.CategoryKey{
	model.CategoryCapitals,
	model.CategoryMountains,
	model.CategoryRivers,
	model.CategoryLakes,
	model.CategoryProduction,
	model.CategoryProtectedAreas,
	model.CategoryReligiousSites,
	model.CategoryTradeCenters,
	model.CategoryNationalPrideProjects,
}

// WriteDataset replaces the stored dataset wholesale.
func (s *Store) WriteDataset(ds *model.Dataset) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, tbl := range []string{"highway_points", "highways", "features", "provinces"} {
		if _, err := tx.Exec("DELETE FROM " + tbl); err != nil {
			return fmt.Errorf("clearing %s: %w", tbl, err)
		}
	}

	featStmt, err := tx.Prepare(`INSERT INTO features (province_pos, category, pos, name, lat, lng, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer featStmt.Close()

	for pi := range ds.Provinces {
		p := &ds.Provinces[pi]
		if _, err := tx.Exec("INSERT INTO provinces (pos, name) VALUES (?, ?)", pi, p.Name); err != nil {
			return fmt.Errorf("inserting province %s: %w", p.Name, err)
		}

		for _, cat := range featureCategories {
			feats := p.Collection(cat)
			if cat == model.CategoryCapitals {
				feats = []model.Feature{p.Capital}
			}
			for fi, f := range feats {
				if _, err := featStmt.Exec(pi, string(cat), fi, f.Name, f.Lat, f.Lng, f.Description); err != nil {
					return fmt.Errorf("inserting feature %s: %w", f.Name, err)
				}
			}
		}
	}

	for hi, hw := range ds.Highways {
		if _, err := tx.Exec("INSERT INTO highways (pos, name, description) VALUES (?, ?, ?)",
			hi, hw.Name, hw.Description); err != nil {
			return fmt.Errorf("inserting highway %s: %w", hw.Name, err)
		}
		for vi, pt := range hw.Path {
			if _, err := tx.Exec("INSERT INTO highway_points (highway_pos, pos, lat, lng) VALUES (?, ?, ?, ?)",
				hi, vi, pt.Lat, pt.Lng); err != nil {
				return err
			}
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('loaded_at', ?)",
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	return tx.Commit()
}

// ReadDataset loads the full dataset in stored order.
func (s *Store) ReadDataset() (*model.Dataset, error) {
	ds := &model.Dataset{}

	provRows, err := s.DB.Query("SELECT pos, name FROM provinces ORDER BY pos")
	if err != nil {
		return nil, err
	}
	defer provRows.Close()

	var positions []int
	for provRows.Next() {
		var pos int
		var name string
		if err := provRows.Scan(&pos, &name); err != nil {
			return nil, err
		}
		positions = append(positions, pos)
		ds.Provinces = append(ds.Provinces, model.Province{Name: name})
	}
	if err := provRows.Err(); err != nil {
		return nil, err
	}

	for i, pos := range positions {
		if err := s.readProvinceFeatures(&ds.Provinces[i], pos); err != nil {
			return nil, fmt.Errorf("reading features of %s: %w", ds.Provinces[i].Name, err)
		}
	}

	if err := s.readHighways(ds); err != nil {
		return nil, err
	}

	return ds, nil
}

func (s *Store) readProvinceFeatures(p *model.Province, provincePos int) error {
	rows, err := s.DB.Query(`SELECT category, name, lat, lng, description
		FROM features WHERE province_pos = ? ORDER BY category, pos`, provincePos)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var cat string
		var f model.Feature
		var desc sql.NullString
		if err := rows.Scan(&cat, &f.Name, &f.Lat, &f.Lng, &desc); err != nil {
			return err
		}
		f.Province = p.Name
		f.Description = desc.String

		switch model.CategoryKey(cat) {
		case model.CategoryCapitals:
			p.Capital = f
		case model.CategoryMountains:
			p.Mountains = append(p.Mountains, f)
		case model.CategoryRivers:
			p.Rivers = append(p.Rivers, f)
		case model.CategoryLakes:
			p.Lakes = append(p.Lakes, f)
		case model.CategoryProduction:
			p.Production = append(p.Production, f)
		case model.CategoryProtectedAreas:
			p.ProtectedAreas = append(p.ProtectedAreas, f)
		case model.CategoryReligiousSites:
			p.ReligiousSites = append(p.ReligiousSites, f)
		case model.CategoryTradeCenters:
			p.TradeCenters = append(p.TradeCenters, f)
		case model.CategoryNationalPrideProjects:
			p.NationalPrideProjects = append(p.NationalPrideProjects, f)
		}
	}
	return rows.Err()
}

func (s *Store) readHighways(ds *model.Dataset) error {
	rows, err := s.DB.Query("SELECT pos, name, description FROM highways ORDER BY pos")
	if err != nil {
		return err
	}
	defer rows.Close()

	var positions []int
	for rows.Next() {
		var pos int
		var hw model.Highway
		if err := rows.Scan(&pos, &hw.Name, &hw.Description); err != nil {
			return err
		}
		positions = append(positions, pos)
		ds.Highways = append(ds.Highways, hw)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i, pos := range positions {
		ptRows, err := s.DB.Query("SELECT lat, lng FROM highway_points WHERE highway_pos = ? ORDER BY pos", pos)
		if err != nil {
			return err
		}
		for ptRows.Next() {
			var pt model.LatLng
			if err := ptRows.Scan(&pt.Lat, &pt.Lng); err != nil {
				ptRows.Close()
				return err
			}
			ds.Highways[i].Path = append(ds.Highways[i].Path, pt)
		}
		if err := ptRows.Err(); err != nil {
			ptRows.Close()
			return err
		}
		ptRows.Close()
	}
	return nil
}

// AppendFeatures adds imported features to the end of their province
// collections. Features naming an unknown province are skipped; the
// skipped count is returned.
func (s *Store) AppendFeatures(rows []FeatureRow) (added, skipped int, err error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	provPos := make(map[string]int)
	pr, err := tx.Query("SELECT pos, name FROM provinces")
	if err != nil {
		return 0, 0, err
	}
	for pr.Next() {
		var pos int
		var name string
		if err := pr.Scan(&pos, &name); err != nil {
			pr.Close()
			return 0, 0, err
		}
		provPos[name] = pos
	}
	pr.Close()

	for _, row := range rows {
		pos, ok := provPos[row.Feature.Province]
		if !ok {
			skipped++
			continue
		}

		var next int
		if err := tx.QueryRow("SELECT COALESCE(MAX(pos), -1) + 1 FROM features WHERE province_pos = ? AND category = ?",
			pos, string(row.Category)).Scan(&next); err != nil {
			return 0, 0, err
		}

		if _, err := tx.Exec(`INSERT INTO features (province_pos, category, pos, name, lat, lng, description)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			pos, string(row.Category), next, row.Feature.Name, row.Feature.Lat, row.Feature.Lng, row.Feature.Description); err != nil {
			return 0, 0, fmt.Errorf("inserting feature %s: %w", row.Feature.Name, err)
		}
		added++
	}

	return added, skipped, tx.Commit()
}

// FeatureRow pairs an imported feature with its target category.
type FeatureRow struct {
	Category model.CategoryKey
	Feature  model.Feature
}

// LoadedAt returns when the dataset was last loaded, or "" if never.
func (s *Store) LoadedAt() string {
	var v sql.NullString
	s.DB.QueryRow("SELECT value FROM meta WHERE key = 'loaded_at'").Scan(&v)
	return v.String
}

// ProvinceCount returns the number of stored provinces.
func (s *Store) ProvinceCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM provinces").Scan(&n)
	return n
}

// FeatureCount returns the total number of stored features.
func (s *Store) FeatureCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM features").Scan(&n)
	return n
}

// HighwayCount returns the number of stored highways.
func (s *Store) HighwayCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM highways").Scan(&n)
	return n
}

// FeatureCountByCategory returns feature counts per category.
func (s *Store) FeatureCountByCategory() map[string]int {
	m := make(map[string]int)
	rows, err := s.DB.Query("SELECT category, COUNT(*) FROM features GROUP BY category ORDER BY category")
	if err != nil {
		return m
	}
	defer rows.Close()
	for rows.Next() {
		var cat string
		var cnt int
		rows.Scan(&cat, &cnt)
		m[cat] = cnt
	}
	return m
}

// FeatureCountByProvince returns feature counts per province.
func (s *Store) FeatureCountByProvince() map[string]int {
	m := make(map[string]int)
	rows, err := s.DB.Query(`SELECT p.name, COUNT(*) FROM features f
		JOIN provinces p ON f.province_pos = p.pos GROUP BY p.name ORDER BY p.name`)
	if err != nil {
		return m
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var cnt int
		rows.Scan(&name, &cnt)
		m[name] = cnt
	}
	return m
}
