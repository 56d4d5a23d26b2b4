package main

import (
	"context"
	"fmt"
	"testing"

	"airline-data-generator/internal/domain"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitConfiguration, exitCode(fmt.Errorf("load: %w", domain.ErrConfiguration)))
	assert.Equal(t, exitStorage, exitCode(fmt.Errorf("insert batch 1: %w", domain.ErrStorage)))
	assert.Equal(t, exitGeneration, exitCode(fmt.Errorf("build document 3: %w", domain.ErrGeneration)))
	assert.Equal(t, exitStorage, exitCode(context.Canceled))
}

func TestRun_BoltEndToEnd(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "bolt")
	t.Setenv("BOLT_PATH", t.TempDir()+"/run.db")
	t.Setenv("MDB_COLLECTION", "fulfillment")
	t.Setenv("NUM_DOCS", "25")
	t.Setenv("BATCH_SIZE", "10")
	t.Setenv("SEED", "5")

	assert.Equal(t, exitOK, run(context.Background()))
}

func TestRun_InvalidConfiguration(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	t.Setenv("MDB_CONNECTION", "")
	t.Setenv("MDB_COLLECTION", "fulfillment")

	assert.Equal(t, exitConfiguration, run(context.Background()))
}

func TestRun_ZeroDocumentsReportsNothing(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "bolt")
	t.Setenv("BOLT_PATH", t.TempDir()+"/empty.db")
	t.Setenv("MDB_COLLECTION", "fulfillment")
	t.Setenv("NUM_DOCS", "0")

	hook := test.NewGlobal()
	t.Cleanup(func() { log.StandardLogger().ReplaceHooks(make(log.LevelHooks)) })

	assert.Equal(t, exitOK, run(context.Background()))

	messages := map[string]bool{}
	for _, entry := range hook.AllEntries() {
		messages[entry.Message] = true
	}
	assert.True(t, messages["Nothing to generate"])
	assert.False(t, messages["Begin generating airline documents"])
	assert.False(t, messages["Docs inserted"])
	assert.False(t, messages["Finished generating airline documents"])
}
