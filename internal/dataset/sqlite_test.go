package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"BikeShare/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLiteReader_Read(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "new_york_city"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"Start Time", "End Time", "Start Station", "End Station", "User Type", "Gender", "Birth Year",
		}).
			AddRow("2017-01-01 09:00:00", "2017-01-01 09:30:00", "W 52 St", "Broadway", "Subscriber", "Female", int64(1988)).
			AddRow("2017-01-02 10:00:00", "2017-01-02 10:05:00", "Broadway", "W 52 St", "Customer", nil, nil))

	r := NewSQLiteReader(db)
	rec, err := r.Read(context.Background(), "new york city")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rec.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rec.Rows))
	}

	tbl, err := decode(rec, "new york city", nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !tbl.HasGender() || !tbl.HasBirthYear() {
		t.Fatal("expected optional columns to be detected from the result set")
	}
	if got := tbl.At(0).BirthYear; got != 1988 {
		t.Errorf("birth year = %d, want 1988", got)
	}
	if got := tbl.At(1).Gender; got != "" {
		t.Errorf("NULL gender should decode as unknown, got %q", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSQLiteReader_MissingTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "washington"`).
		WillReturnError(errors.New("no such table: washington"))

	_, err = NewSQLiteReader(db).Read(context.Background(), "washington")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestSQLiteReader_ThroughLoader(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "chicago"`).
		WillReturnRows(sqlmock.NewRows([]string{"Start Time", "End Time", "Start Station", "End Station", "User Type"}).
			AddRow("2017-03-06 08:00:00", "2017-03-06 08:10:00", "A", "B", "Subscriber").
			AddRow("2017-04-06 08:00:00", "2017-04-06 08:10:00", "B", "A", "Subscriber"))

	l := NewLoader(NewSQLiteReader(db), config.Default(), nil, nil)
	tbl, err := l.Load(context.Background(), Selection{City: "chicago", Month: "march", Day: 0})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 march row, got %d", tbl.Len())
	}
}

func TestOpenSQLite_MissingFileFailsOnRead(t *testing.T) {
	cfg := config.Default()
	cfg.Source = config.SourceSQLite
	cfg.DBPath = filepath.Join(t.TempDir(), "missing.db")

	r, err := NewReader(cfg)
	if err != nil {
		t.Fatalf("reader should be created before the database is needed: %v", err)
	}
	defer r.Close()

	_, err = NewLoader(r, cfg, nil, nil).LoadAll(context.Background(), "chicago")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestSQLiteReader_CloseUnopened(t *testing.T) {
	if err := OpenSQLite("unused.db").Close(); err != nil {
		t.Fatalf("closing an unopened reader: %v", err)
	}
}
