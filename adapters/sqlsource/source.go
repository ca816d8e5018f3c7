package sqlsource

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gowrangle/domain/core"
	"gowrangle/domain/frame"
	"gowrangle/internal"
	"gowrangle/internal/config"
	"gowrangle/internal/errors"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Source runs descriptor queries against a relational server. Each call
// opens a connection to the named database and closes it afterwards.
type Source struct {
	cfg    config.DatabaseConfig
	logger *internal.Logger
}

// New validates the connection settings and returns a source
func New(cfg config.DatabaseConfig, logger *internal.Logger) (*Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "remote source is not configured")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Source{cfg: cfg, logger: logger}, nil
}

// Fetch executes query against database and returns every row with a
// default 0..n-1 index
func (s *Source) Fetch(ctx context.Context, database, query string) (*frame.Frame, error) {
	dsn, err := DSN(s.cfg, database)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build connection string")
	}

	db, err := sqlx.ConnectContext(ctx, s.cfg.Driver, dsn)
	if err != nil {
		return nil, errors.SourceError(fmt.Sprintf("failed to connect to %s", database), fmt.Errorf("%w: %v", core.ErrSourceUnavailable, err))
	}
	defer db.Close()

	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return nil, errors.SourceError(fmt.Sprintf("query against %s failed", database), fmt.Errorf("%w: %v", core.ErrSourceUnavailable, err))
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.SourceError("failed to read result columns", err)
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.SourceError("failed to read result column types", err)
	}

	names := dedupeColumns(columns)
	cells := make(map[string][]frame.Value, len(names))
	n := 0
	for rows.Next() {
		record, err := rows.SliceScan()
		if err != nil {
			return nil, errors.SourceError("failed to scan row", err)
		}
		for j, raw := range record {
			cells[names[j]] = append(cells[names[j]], toValue(raw, types[j].DatabaseTypeName()))
		}
		n++
	}
	if err := rows.Err(); err != nil {
		return nil, errors.SourceError(fmt.Sprintf("reading rows from %s failed", database), fmt.Errorf("%w: %v", core.ErrSourceUnavailable, err))
	}

	for _, name := range names {
		if cells[name] == nil {
			cells[name] = []frame.Value{}
		}
	}

	s.logger.Debug("[sqlsource] fetched %d rows, %d columns from %s", n, len(names), database)
	return frame.New(names, frame.RangeIndex(n), cells)
}

// dedupeColumns suffixes repeated names the way a frame reader would
// (col, col.1, col.2) so joins without USING still load.
func dedupeColumns(columns []string) []string {
	seen := make(map[string]int, len(columns))
	out := make([]string, len(columns))
	for i, c := range columns {
		if k, ok := seen[c]; ok {
			out[i] = fmt.Sprintf("%s.%d", c, k)
			seen[c] = k + 1
			continue
		}
		seen[c] = 1
		out[i] = c
	}
	return out
}

// toValue converts a scanned driver value into a cell. Text-protocol
// drivers return []byte for every column, so numeric database types are
// parsed back into numbers.
func toValue(raw interface{}, dbType string) frame.Value {
	switch v := raw.(type) {
	case nil:
		return frame.NewMissingValue()
	case int64:
		return frame.NewNumericValue(float64(v))
	case float64:
		return frame.NewNumericValue(v)
	case bool:
		if v {
			return frame.NewNumericValue(1)
		}
		return frame.NewNumericValue(0)
	case []byte:
		return parseText(string(v), dbType)
	case string:
		return parseText(v, dbType)
	default:
		return frame.NewStringValue(fmt.Sprint(v))
	}
}

func parseText(s, dbType string) frame.Value {
	if isNumericType(dbType) {
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return frame.NewNumericValue(n)
		}
	}
	return frame.NewStringValue(s)
}

func isNumericType(dbType string) bool {
	switch strings.ToUpper(dbType) {
	case "INT", "INTEGER", "TINYINT", "SMALLINT", "MEDIUMINT", "BIGINT",
		"UNSIGNED INT", "UNSIGNED TINYINT", "UNSIGNED SMALLINT", "UNSIGNED MEDIUMINT", "UNSIGNED BIGINT",
		"INT2", "INT4", "INT8", "FLOAT", "FLOAT4", "FLOAT8", "DOUBLE", "REAL",
		"DECIMAL", "NUMERIC":
		return true
	}
	return false
}
