package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PoolConfig struct {
	ConnStr string
}

type ConnectionPool struct {
	conn *pgxpool.Pool
}

func NewConnectionPool(ctx context.Context, cfg PoolConfig) (*ConnectionPool, error) {
	dbpool, err := pgxpool.New(ctx, cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return &ConnectionPool{conn: dbpool}, nil
}

func (p *ConnectionPool) Close() {
	p.conn.Close()
}

// LoadFromPostgres materializes the result set of a query into a Frame.
// Float, integer and numeric columns become numeric; text columns become
// categorical; NULLs load as zero / empty string.
func LoadFromPostgres(ctx context.Context, pool *ConnectionPool, query string, args ...any) (*Frame, error) {
	slog.Info("Loading dataset from Postgres", "query", query)

	rows, err := pool.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute dataset query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, fd := range fields {
		names[i] = fd.Name
	}

	values := make([][]any, len(fields))
	count := 0

	for rows.Next() {
		rowVals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to read row values: %w", err)
		}
		for i, v := range rowVals {
			values[i] = append(values[i], v)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dataset query failed: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("dataset query returned no rows")
	}

	frame := NewFrame(count)
	for i, name := range names {
		nums, numeric := coerceNumeric(values[i])
		if numeric {
			if err := frame.SetNumeric(name, nums); err != nil {
				return nil, err
			}
			continue
		}
		cats := make([]string, count)
		for j, v := range values[i] {
			if v == nil {
				continue
			}
			cats[j] = fmt.Sprintf("%v", v)
		}
		if err := frame.SetCategorical(name, cats); err != nil {
			return nil, err
		}
	}

	slog.Info("Dataset loaded from Postgres", "rows", count, "columns", len(names))
	return frame, nil
}

func coerceNumeric(column []any) ([]float64, bool) {
	nums := make([]float64, len(column))
	for i, v := range column {
		switch n := v.(type) {
		case nil:
			nums[i] = 0
		case float64:
			nums[i] = n
		case float32:
			nums[i] = float64(n)
		case int64:
			nums[i] = float64(n)
		case int32:
			nums[i] = float64(n)
		case int16:
			nums[i] = float64(n)
		default:
			return nil, false
		}
	}
	return nums, true
}
