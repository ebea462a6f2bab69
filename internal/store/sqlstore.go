package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bullsharks/internal/activity"

	_ "modernc.org/sqlite"
)

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .bullsharks) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}
	if tableCount == 0 {
		return s.freshInstall()
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return s.freshInstall()
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case v == schemaVersion:
		return nil
	default:
		return fmt.Errorf("unknown schema version %d", v)
	}
}

func (s *SqlStore) freshInstall() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(schemaV1); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	return tx.Commit()
}

const upsertActivity = `
INSERT INTO activities (
	id, date, athlete_name, resource_state, name, distance,
	moving_time, elapsed_time, total_elevation_gain, sport_type, workout_type, device_name
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	date = excluded.date,
	athlete_name = excluded.athlete_name,
	resource_state = excluded.resource_state,
	name = excluded.name,
	distance = excluded.distance,
	moving_time = excluded.moving_time,
	elapsed_time = excluded.elapsed_time,
	total_elevation_gain = excluded.total_elevation_gain,
	sport_type = excluded.sport_type,
	workout_type = excluded.workout_type,
	device_name = excluded.device_name`

func (s *SqlStore) InsertActivities(ctx context.Context, records []activity.Activity) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertActivity)
	if err != nil {
		return 0, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, a := range records {
		a = newID(a)
		_, err := stmt.ExecContext(ctx,
			a.ID, a.Date, nullable(a.AthleteName), nullable(a.ResourceState), nullable(a.Name),
			nullable(a.Distance), nullable(a.MovingTime), nullable(a.ElapsedTime),
			nullable(a.TotalElevationGain), nullable(a.SportType), nullable(a.WorkoutType),
			nullable(a.DeviceName),
		)
		if err != nil {
			return 0, fmt.Errorf("upsert activity %s: %w", a.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert tx: %w", err)
	}
	return len(records), nil
}

func (s *SqlStore) AllActivities(ctx context.Context) ([]activity.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, date, athlete_name, resource_state, name, distance,
	moving_time, elapsed_time, total_elevation_gain, sport_type, workout_type, device_name
FROM activities ORDER BY date DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	out := []activity.Activity{}
	for rows.Next() {
		var (
			a                          activity.Activity
			athlete, name, sport, dev  sql.NullString
			state, moving, elapsed, wt sql.NullInt64
			distance, elevation        sql.NullFloat64
		)
		if err := rows.Scan(&a.ID, &a.Date, &athlete, &state, &name, &distance,
			&moving, &elapsed, &elevation, &sport, &wt, &dev); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.AthleteName = nullStr(athlete)
		a.ResourceState = nullInt(state)
		a.Name = nullStr(name)
		a.Distance = nullFloat(distance)
		a.MovingTime = nullInt(moving)
		a.ElapsedTime = nullInt(elapsed)
		a.TotalElevationGain = nullFloat(elevation)
		a.SportType = nullStr(sport)
		a.WorkoutType = nullInt(wt)
		a.DeviceName = nullStr(dev)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SqlStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// nullable turns a nil pointer into a SQL NULL and dereferences the rest.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullInt(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	return &ni.Int64
}

func nullFloat(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}

var (
	_ Store = (*SqlStore)(nil)
	_ Store = (*MemStore)(nil)
)
