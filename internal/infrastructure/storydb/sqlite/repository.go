// Package sqlite provides a SQLite implementation of the StoryStore
// interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/fabula/internal/domain/entities"
	"github.com/ersonp/fabula/internal/infrastructure/config"
)

// timeLayout stores timestamps at full precision so elapsed-time
// comparisons against the voting window survive a round-trip.
const timeLayout = time.RFC3339Nano

// Repository implements ports.StoryStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS authors (
		id TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		sentences_submitted INTEGER NOT NULL DEFAULT 0,
		wins INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS branches (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		root_sentence_id TEXT,
		event_id TEXT
	);

	CREATE TABLE IF NOT EXISTS sentences (
		id TEXT PRIMARY KEY,
		branch_id TEXT NOT NULL,
		parent_id TEXT,
		author_id TEXT NOT NULL,
		text TEXT NOT NULL,
		submitted_at TEXT NOT NULL,
		votes INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		event_id TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_sentences_parent ON sentences(parent_id);
	CREATE INDEX IF NOT EXISTS idx_sentences_status ON sentences(status);

	CREATE TABLE IF NOT EXISTS votes (
		id TEXT PRIMARY KEY,
		voter_id TEXT NOT NULL,
		sentence_id TEXT NOT NULL,
		cast_at TEXT NOT NULL,
		UNIQUE(voter_id, sentence_id)
	);
	CREATE INDEX IF NOT EXISTS idx_votes_voter ON votes(voter_id);

	CREATE TABLE IF NOT EXISTS badges (
		id TEXT PRIMARY KEY,
		author_id TEXT NOT NULL,
		name TEXT NOT NULL,
		awarded_at TEXT NOT NULL,
		UNIQUE(author_id, name)
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		active INTEGER NOT NULL DEFAULT 0,
		start_branch_id TEXT NOT NULL,
		badge_name TEXT NOT NULL
	);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Load reads the full snapshot.
func (r *Repository) Load(ctx context.Context) (*entities.Snapshot, error) {
	snap := &entities.Snapshot{}

	if err := r.loadAuthors(ctx, snap); err != nil {
		return nil, err
	}
	if err := r.loadBranches(ctx, snap); err != nil {
		return nil, err
	}
	if err := r.loadSentences(ctx, snap); err != nil {
		return nil, err
	}
	if err := r.loadVotes(ctx, snap); err != nil {
		return nil, err
	}
	if err := r.loadBadges(ctx, snap); err != nil {
		return nil, err
	}
	if err := r.loadEvents(ctx, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

// Save atomically replaces the stored snapshot: all tables are rewritten
// inside a single transaction, so a reader never observes a partial state.
func (r *Repository) Save(ctx context.Context, snap *entities.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"authors", "branches", "sentences", "votes", "badges", "events"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, a := range snap.Authors {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO authors (id, display_name, sentences_submitted, wins) VALUES (?, ?, ?, ?)`,
			a.ID, a.DisplayName, a.SentencesSubmitted, a.Wins)
		if err != nil {
			return fmt.Errorf("inserting author: %w", err)
		}
	}

	for _, b := range snap.Branches {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO branches (id, title, root_sentence_id, event_id) VALUES (?, ?, ?, ?)`,
			b.ID, b.Title, nullable(b.RootSentenceID), nullable(b.EventID))
		if err != nil {
			return fmt.Errorf("inserting branch: %w", err)
		}
	}

	for _, s := range snap.Sentences {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sentences (id, branch_id, parent_id, author_id, text, submitted_at, votes, status, event_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID, s.BranchID, nullable(s.ParentID), s.AuthorID, s.Text,
			s.SubmittedAt.Format(timeLayout), s.Votes, string(s.Status), nullable(s.EventID))
		if err != nil {
			return fmt.Errorf("inserting sentence: %w", err)
		}
	}

	for _, v := range snap.Votes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO votes (id, voter_id, sentence_id, cast_at) VALUES (?, ?, ?, ?)`,
			v.ID, v.VoterID, v.SentenceID, v.CastAt.Format(timeLayout))
		if err != nil {
			return fmt.Errorf("inserting vote: %w", err)
		}
	}

	for _, b := range snap.Badges {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO badges (id, author_id, name, awarded_at) VALUES (?, ?, ?, ?)`,
			b.ID, b.AuthorID, b.Name, b.AwardedAt.Format(timeLayout))
		if err != nil {
			return fmt.Errorf("inserting badge: %w", err)
		}
	}

	for _, e := range snap.Events {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events (id, title, description, active, start_branch_id, badge_name)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.Title, e.Description, boolToInt(e.Active), e.StartBranchID, e.BadgeName)
		if err != nil {
			return fmt.Errorf("inserting event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

func (r *Repository) loadAuthors(ctx context.Context, snap *entities.Snapshot) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, display_name, sentences_submitted, wins FROM authors`)
	if err != nil {
		return fmt.Errorf("querying authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a entities.Author
		if err := rows.Scan(&a.ID, &a.DisplayName, &a.SentencesSubmitted, &a.Wins); err != nil {
			return fmt.Errorf("scanning author: %w", err)
		}
		snap.Authors = append(snap.Authors, a)
	}
	return rows.Err()
}

func (r *Repository) loadBranches(ctx context.Context, snap *entities.Snapshot) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, root_sentence_id, event_id FROM branches`)
	if err != nil {
		return fmt.Errorf("querying branches: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b entities.Branch
		var root, event sql.NullString
		if err := rows.Scan(&b.ID, &b.Title, &root, &event); err != nil {
			return fmt.Errorf("scanning branch: %w", err)
		}
		b.RootSentenceID = root.String
		b.EventID = event.String
		snap.Branches = append(snap.Branches, b)
	}
	return rows.Err()
}

func (r *Repository) loadSentences(ctx context.Context, snap *entities.Snapshot) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, branch_id, parent_id, author_id, text, submitted_at, votes, status, event_id FROM sentences`)
	if err != nil {
		return fmt.Errorf("querying sentences: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s entities.Sentence
		var parent, event sql.NullString
		var submittedAt, status string
		if err := rows.Scan(&s.ID, &s.BranchID, &parent, &s.AuthorID, &s.Text, &submittedAt, &s.Votes, &status, &event); err != nil {
			return fmt.Errorf("scanning sentence: %w", err)
		}
		s.ParentID = parent.String
		s.EventID = event.String
		s.Status = entities.Status(status)
		s.SubmittedAt, err = time.Parse(timeLayout, submittedAt)
		if err != nil {
			return fmt.Errorf("parsing sentence timestamp: %w", err)
		}
		snap.Sentences = append(snap.Sentences, s)
	}
	return rows.Err()
}

func (r *Repository) loadVotes(ctx context.Context, snap *entities.Snapshot) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, voter_id, sentence_id, cast_at FROM votes`)
	if err != nil {
		return fmt.Errorf("querying votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v entities.Vote
		var castAt string
		if err := rows.Scan(&v.ID, &v.VoterID, &v.SentenceID, &castAt); err != nil {
			return fmt.Errorf("scanning vote: %w", err)
		}
		v.CastAt, err = time.Parse(timeLayout, castAt)
		if err != nil {
			return fmt.Errorf("parsing vote timestamp: %w", err)
		}
		snap.Votes = append(snap.Votes, v)
	}
	return rows.Err()
}

func (r *Repository) loadBadges(ctx context.Context, snap *entities.Snapshot) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, author_id, name, awarded_at FROM badges`)
	if err != nil {
		return fmt.Errorf("querying badges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b entities.Badge
		var awardedAt string
		if err := rows.Scan(&b.ID, &b.AuthorID, &b.Name, &awardedAt); err != nil {
			return fmt.Errorf("scanning badge: %w", err)
		}
		b.AwardedAt, err = time.Parse(timeLayout, awardedAt)
		if err != nil {
			return fmt.Errorf("parsing badge timestamp: %w", err)
		}
		snap.Badges = append(snap.Badges, b)
	}
	return rows.Err()
}

func (r *Repository) loadEvents(ctx context.Context, snap *entities.Snapshot) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, active, start_branch_id, badge_name FROM events`)
	if err != nil {
		return fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e entities.Event
		var active int
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &active, &e.StartBranchID, &e.BadgeName); err != nil {
			return fmt.Errorf("scanning event: %w", err)
		}
		e.Active = active != 0
		snap.Events = append(snap.Events, e)
	}
	return rows.Err()
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
