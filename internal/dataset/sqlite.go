package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"sync"

	"BikeShare/internal/config"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteReader reads trips from a database holding one table per city,
// named like the CSV file stem (chicago, new_york_city, washington)
type SQLiteReader struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// OpenSQLite returns a reader for the database at path. The file is opened
// read-only on the first Read, so a missing database surfaces as a load error
func OpenSQLite(path string) *SQLiteReader {
	return &SQLiteReader{path: path}
}

// NewSQLiteReader wraps an already opened database
func NewSQLiteReader(db *sql.DB) *SQLiteReader {
	return &SQLiteReader{db: db}
}

func (r *SQLiteReader) conn() (*sql.DB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db != nil {
		return r.db, nil
	}
	if _, err := os.Stat(r.path); err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+r.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	r.db = db
	return db, nil
}

// Read selects every row of the city table as text
func (r *SQLiteReader) Read(ctx context.Context, city string) (Records, error) {
	table, err := config.TableName(city)
	if err != nil {
		return Records{}, err
	}
	db, err := r.conn()
	if err != nil {
		return Records{}, err
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, table))
	if err != nil {
		if strings.Contains(err.Error(), "no such table") {
			return Records{}, fmt.Errorf("table %s: %w", table, os.ErrNotExist)
		}
		return Records{}, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return Records{}, fmt.Errorf("columns %s: %w", table, err)
	}

	out := Records{Header: header}
	vals := make([]sql.NullString, len(header))
	ptrs := make([]interface{}, len(header))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return Records{}, fmt.Errorf("scan %s: %w", table, err)
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			}
		}
		out.Rows = append(out.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Records{}, fmt.Errorf("read %s: %w", table, err)
	}

	return out, nil
}

// Describe names the database table for the city
func (r *SQLiteReader) Describe(city string) string {
	table, err := config.TableName(city)
	if err != nil {
		return err.Error()
	}
	return r.path + "#" + table
}

// Close closes the database if it was opened
func (r *SQLiteReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}
