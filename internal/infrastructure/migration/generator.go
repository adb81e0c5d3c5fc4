package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

var migrationFilePattern = regexp.MustCompile(`^(\d+)_.+\.(up|down)\.sql$`)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Generator creates golang-migrate file pairs on disk
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
	}
}

// CreateMigration creates the next numbered up/down pair. Numbers are
// sequential and zero padded to six digits.
func (g *Generator) CreateMigration(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if !migrationNamePattern.MatchString(name) {
		return fmt.Errorf("invalid migration name %q: use lowercase letters, digits and underscores", name)
	}

	g.logger.Infow("creating new migration", "name", name)

	if err := os.MkdirAll(g.scriptsPath, 0755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	next, err := g.nextVersion()
	if err != nil {
		return err
	}

	upFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%06d_%s.up.sql", next, name))
	downFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%06d_%s.down.sql", next, name))

	if err := g.writeFile(upFilePath, g.generateUpMigrationTemplate(name)); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}

	if err := g.writeFile(downFilePath, g.generateDownMigrationTemplate(name)); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return nil
}

func (g *Generator) nextVersion() (uint64, error) {
	entries, err := os.ReadDir(g.scriptsPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read scripts directory: %w", err)
	}

	var latest uint64
	for _, entry := range entries {
		match := migrationFilePattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		version, err := strconv.ParseUint(match[1], 10, 64)
		if err != nil {
			continue
		}
		if version > latest {
			latest = version
		}
	}
	return latest + 1, nil
}

// writeFile refuses to overwrite an existing migration
func (g *Generator) writeFile(filePath, content string) error {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

func (g *Generator) generateUpMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- Example:
-- ALTER TABLE tickets ADD COLUMN assignee_email VARCHAR(320) NOT NULL DEFAULT '';

`, name, time.Now().UTC().Format(time.DateTime))
}

func (g *Generator) generateDownMigrationTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s

-- Example:
-- ALTER TABLE tickets DROP COLUMN IF EXISTS assignee_email;

`, name, time.Now().UTC().Format(time.DateTime))
}
