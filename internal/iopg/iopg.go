// Package iopg reads trait records from a PostgreSQL copy of the EOL
// traits export.
package iopg

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/gnames/eoltraits/internal/iocsv"
	"github.com/gnames/eoltraits/pkg/config"
	"github.com/gnames/eoltraits/pkg/ent/record"
	"github.com/gnames/eoltraits/pkg/normalizer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the part of a connection pool used by the handler.
// Both pgxpool.Pool and pgxmock pools satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// Handler reads traits from a table that has the columns of the traits
// CSV export. It implements traitsrc.Handler.
type Handler struct {
	pool  Querier
	table string
	m     normalizer.Mapping
}

// Connect opens a connection pool to the database and returns a handler
// for its traits table.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Handler, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, ConnectionError(cfg.Host, cfg.Port, cfg.Database, cfg.User, err)
	}
	return New(pool, cfg.Table), nil
}

// New creates a handler that uses an existing pool.
func New(pool Querier, table string) *Handler {
	return &Handler{
		pool:  pool,
		table: table,
		m:     normalizer.CSVMapping(),
	}
}

func (h *Handler) Mapping() normalizer.Mapping {
	return h.m
}

func (h *Handler) Close() error {
	if h.pool != nil {
		h.pool.Close()
	}
	return nil
}

func (h *Handler) Iterate(ctx context.Context) iter.Seq2[record.Raw, error] {
	return h.query(ctx, h.selectSQL(""))
}

func (h *Handler) IterateByKey(
	ctx context.Context,
	key record.Key,
	value string,
) iter.Seq2[record.Raw, error] {
	column := h.m.SourceKey(key)
	if !slices.Contains(iocsv.Columns, column) {
		return func(yield func(record.Raw, error) bool) {
			yield(nil, UnknownColumnError(column))
		}
	}
	return h.query(ctx, h.selectSQL(column), value)
}

// selectSQL reads every export column as text. If column is given, rows
// are filtered by its value.
func (h *Handler) selectSQL(column string) string {
	cols := make([]string, len(iocsv.Columns))
	for i, v := range iocsv.Columns {
		cols[i] = pgx.Identifier{v}.Sanitize() + "::text"
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(cols, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(pgx.Identifier(strings.Split(h.table, ".")).Sanitize())
	if column != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(pgx.Identifier{column}.Sanitize())
		sb.WriteString("::text = $1")
	}
	sb.WriteString(" ORDER BY eol_pk")
	return sb.String()
}

func (h *Handler) query(
	ctx context.Context,
	sql string,
	args ...any,
) iter.Seq2[record.Raw, error] {
	return func(yield func(record.Raw, error) bool) {
		rows, err := h.pool.Query(ctx, sql, args...)
		if err != nil {
			yield(nil, QueryError(h.table, err))
			return
		}
		defer rows.Close()

		vals := make([]*string, len(iocsv.Columns))
		dest := make([]any, len(vals))
		for i := range vals {
			dest[i] = &vals[i]
		}

		for rows.Next() {
			if err = rows.Scan(dest...); err != nil {
				yield(nil, QueryError(h.table, err))
				return
			}
			rec := make(record.Raw, len(iocsv.Columns))
			for i, k := range iocsv.Columns {
				if vals[i] == nil {
					rec[k] = nil
					continue
				}
				rec[k] = iocsv.Value(k, *vals[i])
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err = rows.Err(); err != nil {
			yield(nil, QueryError(h.table, err))
		}
	}
}
