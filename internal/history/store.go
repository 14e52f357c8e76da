package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/gameshelf/internal/catalog"
	"github.com/ziadkadry99/gameshelf/internal/db"
)

// ErrNotFound is returned when a play does not exist.
var ErrNotFound = errors.New("play not found")

// Store records and queries plays.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Record inserts a play. If p.ID is empty a UUID is generated; if
// p.PlayedAt is zero the current time is used.
func (s *Store) Record(ctx context.Context, p Play) (Play, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.PlayedAt.IsZero() {
		p.PlayedAt = s.now()
	}
	if p.Resolution == "" {
		p.Resolution = catalog.ResolvedExact
	}
	p.PlayedAt = p.PlayedAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO plays (id, played_at, game_id, requested_id, resolution, referrer, user_agent)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID,
		p.PlayedAt.Format(time.DateTime),
		p.GameID,
		p.RequestedID,
		string(p.Resolution),
		p.Referrer,
		p.UserAgent,
	)
	if err != nil {
		return Play{}, fmt.Errorf("inserting play: %w", err)
	}
	return p, nil
}

// Get retrieves a single play.
func (s *Store) Get(ctx context.Context, id string) (*Play, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, played_at, game_id, requested_id, resolution, referrer, user_agent
		FROM plays WHERE id = ?`, id)
	p, err := scanPlay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Filter controls which plays Recent returns.
type Filter struct {
	GameID string
	Since  *time.Time
	Limit  int
}

// Recent returns plays newest first.
func (s *Store) Recent(ctx context.Context, f Filter) ([]Play, error) {
	var (
		clauses []string
		args    []any
	)
	if f.GameID != "" {
		clauses = append(clauses, "game_id = ?")
		args = append(args, f.GameID)
	}
	if f.Since != nil {
		clauses = append(clauses, "played_at >= ?")
		args = append(args, f.Since.UTC().Format(time.DateTime))
	}

	query := "SELECT id, played_at, game_id, requested_id, resolution, referrer, user_agent FROM plays"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY played_at DESC, rowid DESC"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying plays: %w", err)
	}
	defer rows.Close()

	plays := []Play{}
	for rows.Next() {
		p, err := scanPlay(rows)
		if err != nil {
			return nil, err
		}
		plays = append(plays, *p)
	}
	return plays, rows.Err()
}

// Top returns per-game play counts, most played first.
func (s *Store) Top(ctx context.Context, limit int) ([]GameCount, error) {
	query := `SELECT game_id, COUNT(*), MAX(played_at) FROM plays
		GROUP BY game_id ORDER BY COUNT(*) DESC, MAX(played_at) DESC, game_id`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting plays: %w", err)
	}
	defer rows.Close()

	counts := []GameCount{}
	for rows.Next() {
		var (
			c    GameCount
			last string
		)
		if err := rows.Scan(&c.GameID, &c.Plays, &last); err != nil {
			return nil, err
		}
		c.Last = parseTime(last)
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// DeleteBefore removes plays older than the given time and returns how
// many were removed.
func (s *Store) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM plays WHERE played_at < ?",
		before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("deleting old plays: %w", err)
	}
	return res.RowsAffected()
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPlay(sc scanner) (*Play, error) {
	var (
		p          Play
		ts         string
		resolution string
	)
	err := sc.Scan(&p.ID, &ts, &p.GameID, &p.RequestedID, &resolution, &p.Referrer, &p.UserAgent)
	if err != nil {
		return nil, err
	}
	p.Resolution = catalog.Resolution(resolution)
	p.PlayedAt = parseTime(ts)
	return &p, nil
}

func parseTime(ts string) time.Time {
	if t, err := time.Parse(time.DateTime, ts); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t
	}
	return time.Time{}
}
