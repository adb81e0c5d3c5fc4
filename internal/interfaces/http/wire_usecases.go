package http

import (
	emailUsecases "github.com/helpdesk-ai/helpdesk/internal/application/email/usecases"
	exportUsecases "github.com/helpdesk-ai/helpdesk/internal/application/export/usecases"
	kbUsecases "github.com/helpdesk-ai/helpdesk/internal/application/knowledge/usecases"
	ticketUsecases "github.com/helpdesk-ai/helpdesk/internal/application/ticket/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Tickets
	ingestInboundUC  *ticketUsecases.IngestInboundUseCase
	listTicketsUC    *ticketUsecases.ListTicketsUseCase
	getTicketUC      *ticketUsecases.GetTicketUseCase
	updateTicketUC   *ticketUsecases.UpdateTicketUseCase
	approveSendUC    *ticketUsecases.ApproveSendUseCase
	requestInfoUC    *ticketUsecases.RequestInfoUseCase
	escalateTicketUC *ticketUsecases.EscalateTicketUseCase

	// Knowledge base
	createDocumentUC  *kbUsecases.CreateDocumentUseCase
	updateDocumentUC  *kbUsecases.UpdateDocumentUseCase
	getDocumentUC     *kbUsecases.GetDocumentUseCase
	searchDocumentsUC *kbUsecases.SearchDocumentsUseCase

	// Email and export
	sendEmailUC     *emailUsecases.SendEmailUseCase
	exportTicketsUC *exportUsecases.ExportTicketsUseCase
}

// ============================================================
// Section 3: Use cases
// ============================================================

func (c *Container) initUseCases() {
	r := c.repos
	log := c.log
	sender := c.svcs.emailSender

	c.ucs = &allUseCases{
		ingestInboundUC: ticketUsecases.NewIngestInboundUseCase(
			r.ticketRepo, r.messageRepo, r.attachmentRepo, r.aiRunRepo,
			r.kbDocumentRepo, c.svcs.analyzer, c.txMgr, c.cfg.KB.TSConfig, log,
		),
		listTicketsUC:    ticketUsecases.NewListTicketsUseCase(r.ticketRepo, log),
		getTicketUC:      ticketUsecases.NewGetTicketUseCase(r.ticketRepo, r.messageRepo, r.attachmentRepo, log),
		updateTicketUC:   ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, log),
		approveSendUC:    ticketUsecases.NewApproveSendUseCase(r.ticketRepo, r.messageRepo, sender, c.txMgr, log),
		requestInfoUC:    ticketUsecases.NewRequestInfoUseCase(r.ticketRepo, r.messageRepo, sender, c.txMgr, log),
		escalateTicketUC: ticketUsecases.NewEscalateTicketUseCase(r.ticketRepo, log),

		createDocumentUC:  kbUsecases.NewCreateDocumentUseCase(r.kbDocumentRepo, log),
		updateDocumentUC:  kbUsecases.NewUpdateDocumentUseCase(r.kbDocumentRepo, log),
		getDocumentUC:     kbUsecases.NewGetDocumentUseCase(r.kbDocumentRepo, log),
		searchDocumentsUC: kbUsecases.NewSearchDocumentsUseCase(r.kbDocumentRepo, c.cfg.KB.TSConfig, log),

		sendEmailUC:     emailUsecases.NewSendEmailUseCase(sender, log),
		exportTicketsUC: exportUsecases.NewExportTicketsUseCase(r.ticketRepo, log),
	}
}
