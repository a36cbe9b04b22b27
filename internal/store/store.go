package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/doclens/doclens/apimodels"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS analyses (
    id TEXT PRIMARY KEY,
    title TEXT,
    language TEXT,
    spelling_count INTEGER,
    grammar_count INTEGER,
    style_count INTEGER,
    result TEXT,
    created_at TEXT
);

CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);
`

// Store keeps a history of produced analysis results in SQLite.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save records one analysis result and returns its generated id.
func (s *Store) Save(result apimodels.AnalysisResult) (string, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.Exec(
		`INSERT INTO analyses(id, title, language, spelling_count, grammar_count, style_count, result, created_at)
		 VALUES(?,?,?,?,?,?,?,?)`,
		id,
		result.DocumentTitle,
		result.Language,
		len(result.SpellingErrors),
		len(result.GrammarErrors),
		len(result.StyleSuggestions),
		string(raw),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert analysis: %w", err)
	}
	return id, nil
}

// Recent returns the most recent analysis records, newest first.
func (s *Store) Recent(limit int) ([]apimodels.HistoryRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, title, language, spelling_count, grammar_count, style_count, created_at
		 FROM analyses ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	records := []apimodels.HistoryRecord{}
	for rows.Next() {
		var r apimodels.HistoryRecord
		if err := rows.Scan(&r.ID, &r.DocumentTitle, &r.Language, &r.SpellingCount, &r.GrammarCount, &r.StyleCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan analysis row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate analysis rows: %w", err)
	}
	return records, nil
}

// Get returns one stored result by id, or sql.ErrNoRows.
func (s *Store) Get(id string) (*apimodels.AnalysisResult, error) {
	var raw string
	err := s.db.QueryRow(`SELECT result FROM analyses WHERE id = ?`, id).Scan(&raw)
	if err != nil {
		return nil, err
	}
	var result apimodels.AnalysisResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("unmarshal stored result: %w", err)
	}
	return &result, nil
}
