package store

import (
	"database/sql"
	"hash/fnv"
	"time"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// importLockKey derives an advisory lock key from the import's date window so
// concurrent imports over overlapping ranges serialize.
func importLockKey(minDate, maxDate string) int64 {
	h := fnv.New64a()
	h.Write([]byte(minDate))
	h.Write([]byte{0})
	h.Write([]byte(maxDate))

	return int64(h.Sum64())
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}
