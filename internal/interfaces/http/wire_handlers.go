package http

import (
	emailHandlers "github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/email"
	exportHandlers "github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/export"
	healthHandlers "github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/health"
	kbHandlers "github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/knowledge"
	ticketHandlers "github.com/helpdesk-ai/helpdesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler *healthHandlers.HealthHandler
	ticketHandler *ticketHandlers.TicketHandler
	kbHandler     *kbHandlers.KBHandler
	emailHandler  *emailHandlers.EmailHandler
	exportHandler *exportHandlers.ExportHandler
}

// ============================================================
// Section 4: Handlers
// ============================================================

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		healthHandler: healthHandlers.NewHealthHandler(),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.ingestInboundUC,
			u.listTicketsUC,
			u.getTicketUC,
			u.updateTicketUC,
			u.approveSendUC,
			u.requestInfoUC,
			u.escalateTicketUC,
			log.With("component", "handler.ticket"),
		),
		kbHandler: kbHandlers.NewKBHandler(
			u.createDocumentUC,
			u.updateDocumentUC,
			u.getDocumentUC,
			u.searchDocumentsUC,
			log.With("component", "handler.kb"),
		),
		emailHandler:  emailHandlers.NewEmailHandler(u.sendEmailUC, log.With("component", "handler.email")),
		exportHandler: exportHandlers.NewExportHandler(u.exportTicketsUC, log.With("component", "handler.export")),
	}
}
