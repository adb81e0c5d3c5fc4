package migration

import (
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists the models in foreign key order. It backs SQLite
// test databases only; PostgreSQL schemas come from the SQL scripts, which
// also create the full-text search column and trigger.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.MessageModel{},
		&models.AttachmentModel{},
		&models.AiRunModel{},
		&models.KbDocumentModel{},
	}
}
