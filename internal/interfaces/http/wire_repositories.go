package http

import (
	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	ticketRepo     *repository.TicketRepository
	messageRepo    *repository.MessageRepository
	attachmentRepo *repository.AttachmentRepository
	aiRunRepo      *repository.AiRunRepository
	kbDocumentRepo *repository.KbDocumentRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		ticketRepo:     repository.NewTicketRepository(db),
		messageRepo:    repository.NewMessageRepository(db),
		attachmentRepo: repository.NewAttachmentRepository(db),
		aiRunRepo:      repository.NewAiRunRepository(db),
		kbDocumentRepo: repository.NewKbDocumentRepository(db),
	}
}
