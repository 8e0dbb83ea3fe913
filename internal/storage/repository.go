package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"networth/internal/core"
	"networth/internal/ports"

	_ "modernc.org/sqlite"
)

// ErrUnavailable wraps any underlying storage I/O failure. Callers treat it
// as fatal to the current operation; nothing is retried here.
var ErrUnavailable = errors.New("storage unavailable")

// ErrEntryNotFound is returned when an entry ID does not exist.
var ErrEntryNotFound = errors.New("entry not found")

// Snapshot is one day's aggregated book value, written by the worker.
type Snapshot struct {
	Day       string
	Totals    core.Totals
	UpdatedAt time.Time
}

type SQLiteRepository struct {
	db *sql.DB

	// Appends are serialized so identifier assignment never races and a
	// concurrent reader only ever sees fully written rows.
	appendMu sync.Mutex
}

var _ ports.Store = (*SQLiteRepository)(nil)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append persists a validated entry and returns it with the assigned ID and
// creation timestamp.
func (r *SQLiteRepository) Append(ctx context.Context, e core.Entry) (core.Entry, error) {
	detailsJSON, err := json.Marshal(e.Details)
	if err != nil {
		return core.Entry{}, fmt.Errorf("marshal details: %w", err)
	}

	r.appendMu.Lock()
	defer r.appendMu.Unlock()

	createdAt := time.Now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO entries (kind, category, subcategory, name, currency, amount, owner, details_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		string(e.Kind), e.Category, e.Subcategory, e.Name, e.Currency,
		e.Amount.String(), e.Owner, string(detailsJSON), createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return core.Entry{}, fmt.Errorf("insert entry: %w: %w", ErrUnavailable, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return core.Entry{}, fmt.Errorf("last insert id: %w: %w", ErrUnavailable, err)
	}

	stored := e
	stored.ID = id
	stored.CreatedAt = createdAt

	slog.InfoContext(ctx, "Entry saved to SQLite",
		"id", stored.ID,
		"kind", stored.Kind,
		"category", stored.Category,
		"subcategory", stored.Subcategory,
		"amount", stored.Amount.String())

	return stored, nil
}

// List returns entries matching the filter, most recently created first.
func (r *SQLiteRepository) List(ctx context.Context, f ports.Filter) ([]core.Entry, error) {
	var (
		where []string
		args  []any
	)
	if f.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, string(f.Kind))
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}

	query := `SELECT id, kind, category, subcategory, name, currency, amount, owner, details_json, created_at FROM entries`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w: %w", ErrUnavailable, err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w: %w", ErrUnavailable, err)
	}
	return entries, nil
}

// GetEntry fetches a single entry by ID.
func (r *SQLiteRepository) GetEntry(ctx context.Context, id int64) (core.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, kind, category, subcategory, name, currency, amount, owner, details_json, created_at
		FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Entry{}, fmt.Errorf("%w: id %d", ErrEntryNotFound, id)
	}
	if err != nil {
		return core.Entry{}, fmt.Errorf("get entry %d: %w", id, err)
	}
	return e, nil
}

// Totals sums amounts per kind over all entries. Sums are computed with
// decimal arithmetic in Go; currencies are not converted.
func (r *SQLiteRepository) Totals(ctx context.Context) (core.Totals, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT kind, amount FROM entries`)
	if err != nil {
		return core.Totals{}, fmt.Errorf("query totals: %w: %w", ErrUnavailable, err)
	}
	defer rows.Close()

	var totals core.Totals
	for rows.Next() {
		var kind, amount string
		if err := rows.Scan(&kind, &amount); err != nil {
			return core.Totals{}, fmt.Errorf("scan totals row: %w", err)
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return core.Totals{}, fmt.Errorf("parse stored amount %q: %w", amount, err)
		}
		switch core.Kind(kind) {
		case core.Asset:
			totals.Assets = totals.Assets.Add(d)
		case core.Liability:
			totals.Liabilities = totals.Liabilities.Add(d)
		}
	}
	if err := rows.Err(); err != nil {
		return core.Totals{}, fmt.Errorf("iterate totals: %w: %w", ErrUnavailable, err)
	}
	return totals, nil
}

// SaveSnapshot upserts the aggregated book value for a day.
func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, day string, t core.Totals) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (day, total_assets, total_liabilities, net_worth, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			total_assets = excluded.total_assets,
			total_liabilities = excluded.total_liabilities,
			net_worth = excluded.net_worth,
			updated_at = excluded.updated_at`,
		day, t.Assets.String(), t.Liabilities.String(), t.NetWorth().String(), now,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w: %w", ErrUnavailable, err)
	}
	return nil
}

// GetSnapshot reads the snapshot for a day, if one was written.
func (r *SQLiteRepository) GetSnapshot(ctx context.Context, day string) (Snapshot, error) {
	var s Snapshot
	var assets, liabilities, netStr, updatedAt string
	row := r.db.QueryRowContext(ctx, `
		SELECT day, total_assets, total_liabilities, net_worth, updated_at
		FROM snapshots WHERE day = ?`, day)
	// net_worth is derivable from the other two columns; it is stored for
	// ad-hoc SQL but not surfaced here.
	if err := row.Scan(&s.Day, &assets, &liabilities, &netStr, &updatedAt); err != nil {
		return Snapshot{}, fmt.Errorf("get snapshot %q: %w", day, err)
	}
	var err error
	if s.Totals.Assets, err = decimal.NewFromString(assets); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot assets: %w", err)
	}
	if s.Totals.Liabilities, err = decimal.NewFromString(liabilities); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot liabilities: %w", err)
	}
	if s.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot timestamp: %w", err)
	}
	return s, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (core.Entry, error) {
	var e core.Entry
	var kind, amount, detailsJSON, createdAt string
	if err := s.Scan(&e.ID, &kind, &e.Category, &e.Subcategory, &e.Name, &e.Currency, &amount, &e.Owner, &detailsJSON, &createdAt); err != nil {
		return core.Entry{}, err
	}

	e.Kind = core.Kind(kind)

	var err error
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return core.Entry{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return core.Entry{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if err := json.Unmarshal([]byte(detailsJSON), &e.Details); err != nil {
		return core.Entry{}, fmt.Errorf("unmarshal details: %w", err)
	}
	return e, nil
}
