package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-ai/helpdesk/internal/shared/config"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

func TestGenerator_CreateMigration_Sequential(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000002_create_kb_documents.up.sql"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000002_create_kb_documents.down.sql"), nil, 0644))

	g := NewGenerator(dir, logger.NewNopLogger())
	require.NoError(t, g.CreateMigration("Add_Assignee"))

	_, err := os.Stat(filepath.Join(dir, "000003_add_assignee.up.sql"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "000003_add_assignee.down.sql"))
	assert.NoError(t, err)
}

func TestGenerator_CreateMigration_InvalidName(t *testing.T) {
	g := NewGenerator(t.TempDir(), logger.NewNopLogger())

	assert.Error(t, g.CreateMigration("drop tickets; --"))
	assert.Error(t, g.CreateMigration(""))
}

func TestEmbeddedScripts_PairsAndOrder(t *testing.T) {
	gooseFiles, err := gooseScripts.ReadDir(gooseScriptsDir)
	require.NoError(t, err)
	require.Len(t, gooseFiles, 2)
	assert.Equal(t, "00001_create_tickets.sql", gooseFiles[0].Name())
	assert.Equal(t, "00002_create_kb_documents.sql", gooseFiles[1].Name())

	migrateFiles, err := golangMigrateScripts.ReadDir(golangMigrateScriptsDir)
	require.NoError(t, err)
	assert.Len(t, migrateFiles, 4)

	kb, err := gooseScripts.ReadFile(gooseScriptsDir + "/00002_create_kb_documents.sql")
	require.NoError(t, err)
	assert.Contains(t, string(kb), "helpdesk_ts_config")
	assert.Contains(t, string(kb), "USING GIN (search_tsv)")
}

func TestNewManager_SelectsStrategy(t *testing.T) {
	log := logger.NewNopLogger()

	m, err := NewManager(&config.MigrationConfig{}, t.TempDir(), log)
	require.NoError(t, err)
	assert.Equal(t, StrategyGoose, m.GetStrategy().GetName())

	m, err = NewManager(&config.MigrationConfig{Strategy: StrategyGolangMigrate}, t.TempDir(), log)
	require.NoError(t, err)
	assert.Equal(t, StrategyGolangMigrate, m.GetStrategy().GetName())

	_, err = NewManager(&config.MigrationConfig{Strategy: "flyway"}, "", log)
	assert.Error(t, err)
}
