package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &zapLogger{logger: zap.New(core)}

	l.Printf("Read and execute %s\n", "000001_create_users.up.sql")

	assert.True(t, l.Verbose())
	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "Read and execute 000001_create_users.up.sql", entries[0].Message)
	}

	quiet := &zapLogger{logger: zap.NewNop()}
	assert.False(t, quiet.Verbose())
}
