package beestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"beescraper/lib/scrapers/bee"

	_ "modernc.org/sqlite"
)

// One row per puzzle date. Re-scraping a date replaces the row, the
// way the original answers file kept exactly one entry per day.
const Schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	date          TEXT PRIMARY KEY,
	scraped_at    INTEGER NOT NULL,
	letters       TEXT NOT NULL,
	center_letter TEXT NOT NULL,
	word_count    INTEGER NOT NULL,
	pangrams      TEXT NOT NULL,
	answers       TEXT NOT NULL
);
`

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

// Open opens (creating if necessary) a puzzle database at path and
// applies the schema. Use ":memory:" in tests.
func Open(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = database.Exec(Schema)
	if err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

type Record struct {
	bee.Puzzle
	ScrapedAt time.Time
}

func (s Store) Put(ctx context.Context, puzzle bee.Puzzle, scrapedAt time.Time) error {
	pangrams, err := json.Marshal(puzzle.Pangrams)
	if err != nil {
		return err
	}
	answers, err := json.Marshal(puzzle.Answers)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO puzzles (date, scraped_at, letters, center_letter, word_count, pangrams, answers)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			scraped_at = excluded.scraped_at,
			letters = excluded.letters,
			center_letter = excluded.center_letter,
			word_count = excluded.word_count,
			pangrams = excluded.pangrams,
			answers = excluded.answers`,
		puzzle.Date,
		scrapedAt.Unix(),
		puzzle.Letters,
		puzzle.CenterLetter,
		puzzle.WordCount,
		string(pangrams),
		string(answers),
	)
	return err
}

func scanRecord(row interface{ Scan(...any) error }) (Record, error) {
	var rec Record
	var scrapedAt int64
	var pangrams, answers string

	err := row.Scan(
		&rec.Date,
		&scrapedAt,
		&rec.Letters,
		&rec.CenterLetter,
		&rec.WordCount,
		&pangrams,
		&answers,
	)
	if err != nil {
		return Record{}, err
	}

	rec.ScrapedAt = time.Unix(scrapedAt, 0)
	err = json.Unmarshal([]byte(pangrams), &rec.Pangrams)
	if err != nil {
		return Record{}, err
	}
	err = json.Unmarshal([]byte(answers), &rec.Answers)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

const selectColumns = `date, scraped_at, letters, center_letter, word_count, pangrams, answers`

func (s Store) Get(ctx context.Context, date string) (Record, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+selectColumns+` FROM puzzles WHERE date = ?`,
		date,
	)
	return scanRecord(row)
}

func (s Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+selectColumns+` FROM puzzles ORDER BY date DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
