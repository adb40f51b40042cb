package history

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Record is one persisted analysis run. The input, breakdown and summary are
// stored as JSON blobs; the scalar columns exist for listing and filtering.
type Record struct {
	ID            string
	CreatedAt     time.Time
	PurchasePrice float64
	Score         int
	Grade         string
	InputJSON     string
	AnalysisJSON  string
	SummaryJSON   string
}

// Store keeps analysis history in SQLite. The engine itself stays stateless;
// persistence is purely an HTTP-layer concern.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := &Store{db: db}
	if err := s.EnsureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) EnsureSchema() error {
	const createTable = `
CREATE TABLE IF NOT EXISTS analyses (
  id TEXT PRIMARY KEY,
  created_at TEXT NOT NULL,
  purchase_price REAL NOT NULL,
  score INTEGER NOT NULL,
  grade TEXT NOT NULL,
  input_json TEXT NOT NULL DEFAULT '{}',
  analysis_json TEXT NOT NULL DEFAULT '{}',
  summary_json TEXT NOT NULL DEFAULT '{}'
);
`
	if _, err := s.db.Exec(createTable); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);`); err != nil {
		return err
	}
	return nil
}

func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&n)
	return n, err
}

func (s *Store) Save(r Record) error {
	_, err := s.db.Exec(`
INSERT INTO analyses (id, created_at, purchase_price, score, grade, input_json, analysis_json, summary_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`,
		r.ID, r.CreatedAt.UTC().Format(time.RFC3339Nano), r.PurchasePrice, r.Score, r.Grade,
		r.InputJSON, r.AnalysisJSON, r.SummaryJSON,
	)
	return err
}

func (s *Store) Get(id string) (Record, bool, error) {
	var r Record
	var createdAt string

	err := s.db.QueryRow(`
SELECT id, created_at, purchase_price, score, grade, input_json, analysis_json, summary_json
FROM analyses WHERE id = ?
`, id).Scan(&r.ID, &createdAt, &r.PurchasePrice, &r.Score, &r.Grade, &r.InputJSON, &r.AnalysisJSON, &r.SummaryJSON)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return r, true, nil
}

// List returns records newest first.
func (s *Store) List(limit, offset int) ([]Record, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	total, err := s.Count()
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.Query(`
SELECT id, created_at, purchase_price, score, grade, input_json, analysis_json, summary_json
FROM analyses
ORDER BY created_at DESC
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var createdAt string
		if err := rows.Scan(&r.ID, &createdAt, &r.PurchasePrice, &r.Score, &r.Grade, &r.InputJSON, &r.AnalysisJSON, &r.SummaryJSON); err != nil {
			return nil, 0, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, r)
	}
	return out, total, rows.Err()
}
