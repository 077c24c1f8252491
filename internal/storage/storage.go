// Package storage persists shift records to a local SQLite database, one
// table per job. Reads are whole-table; writes replace one job-date's
// rows inside a single transaction.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/malexander/workhours/internal/model"
	"github.com/malexander/workhours/internal/timecalc"
)

// Store wraps the shift database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens (or creates) the database file and verifies the connection.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the per-job shift tables when missing.
func (s *Store) Migrate(ctx context.Context) error {
	for _, job := range model.Jobs {
		query := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				date TEXT NOT NULL,
				start TEXT NOT NULL,
				"end" TEXT NOT NULL,
				scheduled INTEGER NOT NULL DEFAULT 0
			)`, job.Table())
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("creating table %s: %w", job.Table(), err)
		}
	}
	return nil
}

// ReadTable loads a job's full shift table ordered by start time.
func (s *Store) ReadTable(ctx context.Context, job model.Job) ([]model.Shift, error) {
	query := fmt.Sprintf(`SELECT id, date, start, "end", scheduled FROM %s ORDER BY start`, job.Table())
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("reading table %s: %w", job.Table(), err)
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		var id, date, start, end string
		var scheduled int
		if err := rows.Scan(&id, &date, &start, &end, &scheduled); err != nil {
			return nil, fmt.Errorf("reading table %s: %w", job.Table(), err)
		}
		shift, err := decodeRow(id, date, start, end, scheduled)
		if err != nil {
			return nil, fmt.Errorf("reading table %s: %w", job.Table(), err)
		}
		shifts = append(shifts, shift)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading table %s: %w", job.Table(), err)
	}
	return shifts, nil
}

// ReplaceDay replaces a job-date's rows with the given new rows, all in
// one transaction so the date's stored state either fully matches the new
// data or is left untouched.
//
// The write shape follows the row counts: equal counts update row-wise by
// prior row identity, an empty prior set inserts, and anything else
// deletes the prior rows then inserts the new ones.
func (s *Store) ReplaceDay(ctx context.Context, job model.Job, date time.Time, old, new []model.Shift) error {
	dateStr := date.Format(timecalc.DateFormat)
	return s.withTx(ctx, func(tx *sql.Tx) error {
		switch {
		case len(old) == len(new):
			s.log.Info("updating rows", zap.String("table", job.Table()), zap.String("date", dateStr))
			query := fmt.Sprintf(`UPDATE %s SET start = ?, "end" = ?, scheduled = ? WHERE id = ?`, job.Table())
			for i, row := range new {
				if _, err := tx.ExecContext(ctx, query,
					row.Start.Format(timecalc.DateTimeFormat),
					row.End.Format(timecalc.DateTimeFormat),
					boolToInt(row.Scheduled),
					old[i].ID,
				); err != nil {
					return fmt.Errorf("updating %s: %w", job.Table(), err)
				}
			}
		case len(old) == 0:
			s.log.Info("inserting rows", zap.String("table", job.Table()), zap.String("date", dateStr))
			if err := insertRows(ctx, tx, job, new); err != nil {
				return err
			}
		default:
			s.log.Info("deleting and inserting rows", zap.String("table", job.Table()), zap.String("date", dateStr))
			query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, job.Table())
			for _, row := range old {
				if _, err := tx.ExecContext(ctx, query, row.ID); err != nil {
					return fmt.Errorf("deleting from %s: %w", job.Table(), err)
				}
			}
			if err := insertRows(ctx, tx, job, new); err != nil {
				return err
			}
		}
		return nil
	})
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction failed (rollback error: %v): %w", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertRows(ctx context.Context, tx *sql.Tx, job model.Job, rows []model.Shift) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, date, start, "end", scheduled) VALUES (?, ?, ?, ?, ?)`, job.Table())
	for _, row := range rows {
		id := row.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := tx.ExecContext(ctx, query,
			id,
			row.Date.Format(timecalc.DateFormat),
			row.Start.Format(timecalc.DateTimeFormat),
			row.End.Format(timecalc.DateTimeFormat),
			boolToInt(row.Scheduled),
		); err != nil {
			return fmt.Errorf("inserting into %s: %w", job.Table(), err)
		}
	}
	return nil
}

func decodeRow(id, date, start, end string, scheduled int) (model.Shift, error) {
	d, err := time.ParseInLocation(timecalc.DateFormat, date, time.Local)
	if err != nil {
		return model.Shift{}, fmt.Errorf("bad date %q: %w", date, err)
	}
	st, err := time.ParseInLocation(timecalc.DateTimeFormat, start, time.Local)
	if err != nil {
		return model.Shift{}, fmt.Errorf("bad start %q: %w", start, err)
	}
	en, err := time.ParseInLocation(timecalc.DateTimeFormat, end, time.Local)
	if err != nil {
		return model.Shift{}, fmt.Errorf("bad end %q: %w", end, err)
	}
	return model.Shift{ID: id, Date: d, Start: st, End: en, Scheduled: scheduled != 0}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
