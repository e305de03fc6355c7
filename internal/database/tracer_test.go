package database

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestQueryTracer(t *testing.T) {
	tests := []struct {
		name      string
		threshold time.Duration
		err       error
		contains  string
	}{
		{name: "Fast query is silent", threshold: time.Hour},
		{name: "Slow query warns", threshold: 0, contains: "slow query"},
		{name: "Failed query is logged", threshold: time.Hour, err: errors.New("syntax error"), contains: "query failed"},
		{name: "No rows is not a failure", threshold: time.Hour, err: pgx.ErrNoRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tracer := &queryTracer{logger: zerolog.New(&buf).Level(zerolog.DebugLevel), threshold: tt.threshold}

			ctx := tracer.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
			tracer.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: tt.err})

			if tt.contains == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.contains)
			assert.Contains(t, buf.String(), `"sql":"SELECT 1"`)
		})
	}
}

func TestQueryTracer_IgnoresUntracedContext(t *testing.T) {
	var buf bytes.Buffer
	tracer := &queryTracer{logger: zerolog.New(&buf), threshold: 0}

	tracer.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})

	assert.Empty(t, buf.String())
}
