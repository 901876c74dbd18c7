package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"radiusmgr/config"
	"radiusmgr/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), &config.Config{})

	sql, params := l.ParamsFilter(context.Background(), `UPDATE "users" SET "password_hash"=$1`, "$2a$10$secret")

	assert.Equal(t, `UPDATE "users" SET "password_hash"=$1`, sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return `SELECT * FROM "users" WHERE id = $1`, 1 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		wantLog string
	}{
		{name: "fast query is silent outside debug", begin: time.Now()},
		{name: "fast query is logged in debug", debug: true, begin: time.Now(), wantLog: "GORM query"},
		{name: "slow query warns", begin: time.Now().Add(-time.Second), wantLog: "GORM slow query"},
		{name: "failure is logged", begin: time.Now(), err: errors.New("conn reset"), wantLog: "GORM query failed"},
		{name: "record not found is not a failure", begin: time.Now(), err: gorm.ErrRecordNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

			l.Trace(context.Background(), tt.begin, query, tt.err)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), `"component":"gorm"`)
		})
	}
}

func TestGormSlogLogger_LogModeDoesNotMutate(t *testing.T) {
	l := newGormSlogLogger(slog.Default(), &config.Config{})

	silent := l.LogMode(logger.Silent)

	assert.Equal(t, logger.Warn, l.level)
	assert.Equal(t, logger.Silent, silent.(*gormSlogLogger).level)
}
