package results

import (
	"database/sql"
	"log/slog"
	"os"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3" // SQLite driver registration
	"github.com/mdobak/go-xerrors"
)

// EnvelopeSummary is the EnergyPlus report holding fenestration results.
const EnvelopeSummary = "EnvelopeSummary"

const lookupQuery = `
    SELECT Value FROM TabularDataWithStrings
    WHERE TableName = ? AND ColumnName = ? AND UPPER(RowName) = UPPER(?)
      AND (? = '' OR ReportName = ?)
    LIMIT 1;
    `

// SQLiteStore reads the tabular results of an EnergyPlus SQLite output
// file (eplusout.sql).
type SQLiteStore struct {
	db     *sql.DB
	report string
	logger *slog.Logger
}

// OpenSQLite opens an existing results database read-only. When report is
// not empty lookups are restricted to that report.
func OpenSQLite(path, report string, logger *slog.Logger) (*SQLiteStore, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, xerrors.New("results database", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, xerrors.New("error connecting to SQLite", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, xerrors.New("error connecting to SQLite", err)
	}

	return &SQLiteStore{db: db, report: report, logger: logger}, nil
}

// Lookup implements Store. Query errors and non-numeric values are logged
// and reported as misses.
func (s *SQLiteStore) Lookup(row, column, table string) (float64, bool) {
	var value string
	err := s.db.QueryRow(lookupQuery, table, column, row, s.report, s.report).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, false
	}
	if err != nil {
		s.logger.Error("results lookup failed",
			slog.String("row", row),
			slog.String("column", column),
			slog.String("table", table),
			slog.Any("error", xerrors.New(err)))
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		s.logger.Warn("non-numeric result",
			slog.String("row", row),
			slog.String("column", column),
			slog.String("value", value))
		return 0, false
	}
	return v, true
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
