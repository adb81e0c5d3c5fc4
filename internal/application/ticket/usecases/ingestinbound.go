package usecases

import (
	"context"
	"strings"

	"github.com/helpdesk-ai/helpdesk/internal/application/analyzer"
	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/utils"
)

type IngestInboundCommand struct {
	Subject       string
	CustomerEmail string
	FromEmail     string
	ToEmail       string
	CleanedText   string
	RawHeaders    map[string]any
	Attachments   []dto.AttachmentInput
}

type IngestInboundResult struct {
	TicketID  int64
	MessageID int64
	Status    string
	Category  string
	Priority  string
}

// IngestInboundUseCase turns one inbound email into a classified ticket. The
// ticket, its first message, attachments and the AI run are written in one
// transaction together with the knowledge base lookup, so a failure at any
// step leaves nothing behind.
type IngestInboundUseCase struct {
	ticketRepo     ticket.TicketRepository
	messageRepo    ticket.MessageRepository
	attachmentRepo ticket.AttachmentRepository
	aiRunRepo      ticket.AiRunRepository
	searcher       knowledge.Searcher
	analyzer       MessageAnalyzer
	txMgr          *db.TransactionManager
	tsConfig       string
	logger         logger.Interface
}

func NewIngestInboundUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	attachmentRepo ticket.AttachmentRepository,
	aiRunRepo ticket.AiRunRepository,
	searcher knowledge.Searcher,
	analyzer MessageAnalyzer,
	txMgr *db.TransactionManager,
	tsConfig string,
	logger logger.Interface,
) *IngestInboundUseCase {
	return &IngestInboundUseCase{
		ticketRepo:     ticketRepo,
		messageRepo:    messageRepo,
		attachmentRepo: attachmentRepo,
		aiRunRepo:      aiRunRepo,
		searcher:       searcher,
		analyzer:       analyzer,
		txMgr:          txMgr,
		tsConfig:       tsConfig,
		logger:         logger,
	}
}

func (uc *IngestInboundUseCase) Execute(ctx context.Context, cmd IngestInboundCommand) (*IngestInboundResult, error) {
	uc.logger.Infow("executing ingest inbound use case",
		"customer_email", utils.MaskEmail(cmd.CustomerEmail),
		"attachments", len(cmd.Attachments),
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid inbound ticket command", "error", err)
		return nil, err
	}

	var result *IngestInboundResult
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		result, err = uc.ingest(txCtx, cmd)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to ingest inbound email", "error", err)
		return nil, err
	}

	uc.logger.Infow("inbound ticket created",
		"ticket_id", result.TicketID,
		"status", result.Status,
		"category", result.Category,
		"priority", result.Priority,
	)
	return result, nil
}

func (uc *IngestInboundUseCase) ingest(ctx context.Context, cmd IngestInboundCommand) (*IngestInboundResult, error) {
	t, err := ticket.NewTicket(cmd.Subject, cmd.CustomerEmail)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	msg, err := ticket.NewInboundMessage(t.ID(), cmd.FromEmail, cmd.ToEmail, cmd.Subject, cmd.CleanedText, cmd.RawHeaders)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	for _, in := range cmd.Attachments {
		att, err := ticket.NewAttachment(msg.ID(), in.Filename, in.MimeType, in.SizeBytes, in.StoragePath)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.attachmentRepo.Create(ctx, att); err != nil {
			return nil, err
		}
	}

	res := uc.analyzer.Analyze(cmd.Subject, cmd.CleanedText)

	hits, err := uc.searcher.Search(ctx, knowledge.SearchQuery{
		Text:     kbQuery(cmd.Subject, cmd.CleanedText),
		Limit:    constants.IntakeKBHitLimit,
		TSConfig: uc.tsConfig,
	})
	if err != nil {
		return nil, err
	}
	kbHits := kbHitsToJSON(hits)

	actions := res.SuggestedActions()
	actions["kb_hits"] = kbHits
	actions["entities"] = res.Entities.AsMap()

	err = t.ApplyAssessment(ticket.Assessment{
		Category:         res.Category,
		Product:          res.Product,
		Priority:         res.Priority,
		Confidence:       res.Confidence,
		Summary:          res.Summary,
		DraftReply:       res.DraftReply,
		SuggestedActions: actions,
	})
	if err != nil {
		return nil, errors.NewInternalError("failed to apply assessment", err.Error())
	}

	run, err := ticket.NewAiRun(t.ID(), res.ModelVersions, map[string]any{
		"summary":      res.Summary,
		"draft_reply":  res.DraftReply,
		"entities":     res.Entities.AsMap(),
		"missing_info": res.MissingInfo,
		"kb_hits":      kbHits,
	}, res.Confidence)
	if err != nil {
		return nil, errors.NewInternalError("failed to record ai run", err.Error())
	}
	if err := uc.aiRunRepo.Create(ctx, run); err != nil {
		return nil, err
	}

	if res.NextStep == analyzer.NextStepRequestInfo {
		if err := t.ChangeStatus(vo.StatusNeedsInfo); err != nil {
			return nil, err
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	return &IngestInboundResult{
		TicketID:  t.ID(),
		MessageID: msg.ID(),
		Status:    t.Status().String(),
		Category:  t.Category(),
		Priority:  t.Priority().String(),
	}, nil
}

func (uc *IngestInboundUseCase) validateCommand(cmd IngestInboundCommand) error {
	if strings.TrimSpace(cmd.CustomerEmail) == "" {
		return errors.NewValidationError("customer_email is required")
	}
	if strings.TrimSpace(cmd.FromEmail) == "" {
		return errors.NewValidationError("from_email is required")
	}
	if strings.TrimSpace(cmd.ToEmail) == "" {
		return errors.NewValidationError("to_email is required")
	}
	for _, a := range cmd.Attachments {
		if a.StoragePath == "" {
			return errors.NewValidationError("attachment storage_path is required")
		}
	}
	return nil
}

// kbQuery joins subject and body and keeps the first IntakeQueryMaxRunes characters.
func kbQuery(subject, body string) string {
	q := subject + "\n" + body
	n := 0
	for i := range q {
		if n == constants.IntakeQueryMaxRunes {
			return q[:i]
		}
		n++
	}
	return q
}

func kbHitsToJSON(hits []knowledge.SearchHit) []any {
	out := make([]any, len(hits))
	for i, h := range hits {
		out[i] = map[string]any{
			"id":      h.ID,
			"title":   h.Title,
			"rank":    h.Rank,
			"snippet": h.Snippet,
		}
	}
	return out
}
