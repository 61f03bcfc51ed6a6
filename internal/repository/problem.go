package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/mattn/go-sqlite3"

	"contestlens/analyzer/internal/domain"
)

//go:embed schema.sql
var schema string

// ErrDatabaseMissing is returned when an operation requires an
// existing database file and none is present. It is distinct from a
// database that exists but matches zero rows.
var ErrDatabaseMissing = errors.New("database file not found")

// ErrMalformedTags is returned when a stored tags column does not
// decode as a JSON array of strings.
var ErrMalformedTags = errors.New("malformed tags data")

// BandCount is one row of the rating distribution summary.
type BandCount struct {
	Band  domain.RatingBand
	Count int
}

// Summary describes the database contents at a glance.
type Summary struct {
	Total   int
	Rated   int
	Unrated int
}

type ProblemRepository interface {
	SaveProblems(ctx context.Context, problems []domain.Problem) (int, error)
	LoadRated(ctx context.Context) ([]domain.Problem, error)
	Summarize(ctx context.Context) (*Summary, error)
	BandDistribution(ctx context.Context, bands []domain.RatingBand) ([]BandCount, error)
	TopTags(ctx context.Context, limit int) ([]domain.TagCount, error)
	Close() error
}

type problemRepository struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists. The parent directory is created if needed.
func Open(path string) (ProblemRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &problemRepository{db: db}, nil
}

// OpenExisting opens the database at path, failing with
// ErrDatabaseMissing when the file does not exist. Readers use this so
// a missing upstream fetch is reported instead of silently producing
// empty results.
func OpenExisting(path string) (ProblemRepository, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseMissing, path)
		}
		return nil, fmt.Errorf("stat database: %w", err)
	}
	return Open(path)
}

func (r *problemRepository) Close() error {
	return r.db.Close()
}

// SaveProblems upserts problems in a single transaction and returns
// the number of rows written.
func (r *problemRepository) SaveProblems(ctx context.Context, problems []domain.Problem) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO problems
		    (contest_id, problem_index, name, rating, tags, solved_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	saved := 0
	for _, p := range problems {
		tags, err := json.Marshal(p.Tags)
		if err != nil {
			return saved, fmt.Errorf("encode tags for %s: %w", p.ID(), err)
		}

		var rating any
		if p.Rating != nil {
			rating = *p.Rating
		}

		if _, err := stmt.ExecContext(ctx, p.ContestID, p.Index, p.Name, rating, string(tags), p.SolvedCount); err != nil {
			return saved, fmt.Errorf("insert problem %s: %w", p.ID(), err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return saved, fmt.Errorf("commit: %w", err)
	}
	return saved, nil
}

// LoadRated returns every problem with a non-null rating. Rows with a
// tags column that does not decode as a JSON string array fail the
// whole load with ErrMalformedTags.
func (r *problemRepository) LoadRated(ctx context.Context) ([]domain.Problem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT contest_id, problem_index, name, rating, tags, solved_count
		 FROM problems WHERE rating IS NOT NULL`,
	)
	if err != nil {
		return nil, fmt.Errorf("query rated problems: %w", err)
	}
	defer rows.Close()

	var problems []domain.Problem
	for rows.Next() {
		var (
			p        domain.Problem
			rating   int
			tagsJSON string
		)
		if err := rows.Scan(&p.ContestID, &p.Index, &p.Name, &rating, &tagsJSON, &p.SolvedCount); err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		p.Rating = &rating

		if err := json.Unmarshal([]byte(tagsJSON), &p.Tags); err != nil {
			return nil, fmt.Errorf("problem %s: %w: %v", p.ID(), ErrMalformedTags, err)
		}

		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate problems: %w", err)
	}

	return problems, nil
}

func (r *problemRepository) Summarize(ctx context.Context) (*Summary, error) {
	var s Summary
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM problems").Scan(&s.Total); err != nil {
		return nil, fmt.Errorf("count problems: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM problems WHERE rating IS NOT NULL").Scan(&s.Rated); err != nil {
		return nil, fmt.Errorf("count rated problems: %w", err)
	}
	s.Unrated = s.Total - s.Rated
	return &s, nil
}

func (r *problemRepository) BandDistribution(ctx context.Context, bands []domain.RatingBand) ([]BandCount, error) {
	counts := make([]BandCount, 0, len(bands))
	for _, band := range bands {
		var count int
		err := r.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM problems WHERE rating >= ? AND rating < ?",
			band.Lo, band.Hi,
		).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("count band %s: %w", band.Key(), err)
		}
		counts = append(counts, BandCount{Band: band, Count: count})
	}
	return counts, nil
}

// TopTags counts raw tag occurrences across all rated problems and
// returns the most frequent ones.
func (r *problemRepository) TopTags(ctx context.Context, limit int) ([]domain.TagCount, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT tags FROM problems WHERE rating IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var tagsJSON string
		if err := rows.Scan(&tagsJSON); err != nil {
			return nil, fmt.Errorf("scan tags: %w", err)
		}
		var tags []string
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedTags, err)
		}
		for _, tag := range tags {
			counts[tag]++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	out := make([]domain.TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, domain.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
