package ticket

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/usecases"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	ingestInboundUC usecases.IngestInboundExecutor
	listTicketsUC   usecases.ListTicketsExecutor
	getTicketUC     usecases.GetTicketExecutor
	updateTicketUC  usecases.UpdateTicketExecutor
	approveSendUC   usecases.ApproveSendExecutor
	requestInfoUC   usecases.RequestInfoExecutor
	escalateUC      usecases.EscalateTicketExecutor
	logger          logger.Interface
}

func NewTicketHandler(
	ingestInboundUC usecases.IngestInboundExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	approveSendUC usecases.ApproveSendExecutor,
	requestInfoUC usecases.RequestInfoExecutor,
	escalateUC usecases.EscalateTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		ingestInboundUC: ingestInboundUC,
		listTicketsUC:   listTicketsUC,
		getTicketUC:     getTicketUC,
		updateTicketUC:  updateTicketUC,
		approveSendUC:   approveSendUC,
		requestInfoUC:   requestInfoUC,
		escalateUC:      escalateUC,
		logger:          logger,
	}
}

// CreateInbound handles POST /tickets/inbound
// @Summary Ingest an inbound email
// @Description Create a ticket from an inbound email, classify it and attach knowledge base hits
// @Tags tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.InboundTicketRequest true "Inbound email"
// @Success 201 {object} utils.IDResponse
// @Failure 422 {object} utils.ErrorEnvelope
// @Router /tickets/inbound [post]
func (h *TicketHandler) CreateInbound(c *gin.Context) {
	var req dto.InboundTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for inbound ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.ingestInboundUC.Execute(c.Request.Context(), usecases.IngestInboundCommand{
		Subject:       req.Subject,
		CustomerEmail: req.CustomerEmail,
		FromEmail:     req.FromEmail,
		ToEmail:       req.ToEmail,
		CleanedText:   req.CleanedText,
		RawHeaders:    req.RawHeaders,
		Attachments:   req.Attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, utils.IDResponse{ID: result.TicketID})
}

// ListTickets handles GET /tickets
// @Summary List tickets
// @Description List tickets ordered by last update, newest first
// @Tags tickets
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Page size (1-200)" default(20)
// @Param offset query int false "Offset" default(0)
// @Param status query string false "Status filter"
// @Param priority query string false "Priority filter"
// @Param q query string false "Substring of subject or customer email"
// @Success 200 {object} utils.ListResponse
// @Failure 422 {object} utils.ErrorEnvelope
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	page, err := utils.ParsePagination(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Status:   strings.TrimSpace(c.Query("status")),
		Priority: strings.TrimSpace(c.Query("priority")),
		Query:    strings.TrimSpace(c.Query("q")),
		Limit:    page.Limit,
		Offset:   page.Offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Limit, result.Offset)
}

// GetTicket handles GET /tickets/:id
// @Summary Get a ticket with its messages
// @Tags tickets
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} dto.TicketDetailDTO
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateTicket handles PATCH /tickets/:id
// @Summary Partially update a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ticket ID"
// @Param request body dto.UpdateTicketRequest true "Fields to change"
// @Success 200 {object} dto.TicketDTO
// @Failure 404 {object} utils.ErrorEnvelope
// @Failure 422 {object} utils.ErrorEnvelope
// @Router /tickets/{id} [patch]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID: ticketID,
		Status:   req.Status,
		Category: req.Category,
		Product:  req.Product,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ApproveSend handles POST /tickets/:id/approve-send
// @Summary Send the approved reply to the customer
// @Tags tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ticket ID"
// @Param request body dto.ApproveSendRequest true "Reply"
// @Success 200 {object} utils.OKResponse
// @Failure 404 {object} utils.ErrorEnvelope
// @Failure 502 {object} utils.ErrorEnvelope
// @Router /tickets/{id}/approve-send [post]
func (h *TicketHandler) ApproveSend(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ApproveSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for approve-send", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	err = h.approveSendUC.Execute(c.Request.Context(), usecases.ApproveSendCommand{
		TicketID:  ticketID,
		ReplyText: req.ReplyText,
		ToEmail:   req.ToEmail,
		Subject:   req.Subject,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OK(c)
}

// RequestInfo handles POST /tickets/:id/request-info
// @Summary Ask the customer for more information
// @Tags tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ticket ID"
// @Param request body dto.RequestInfoRequest true "Questions"
// @Success 200 {object} utils.OKResponse
// @Failure 404 {object} utils.ErrorEnvelope
// @Failure 502 {object} utils.ErrorEnvelope
// @Router /tickets/{id}/request-info [post]
func (h *TicketHandler) RequestInfo(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.RequestInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for request-info", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	err = h.requestInfoUC.Execute(c.Request.Context(), usecases.RequestInfoCommand{
		TicketID:  ticketID,
		Questions: req.Questions,
		ToEmail:   req.ToEmail,
		Subject:   req.Subject,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OK(c)
}

// Escalate handles POST /tickets/:id/escalate
// @Summary Escalate a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ticket ID"
// @Param request body dto.EscalateRequest false "Optional note"
// @Success 200 {object} utils.OKResponse
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /tickets/{id}/escalate [post]
func (h *TicketHandler) Escalate(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional.
	var req dto.EscalateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, utils.BindError(err))
			return
		}
	}

	err = h.escalateUC.Execute(c.Request.Context(), usecases.EscalateTicketCommand{
		TicketID: ticketID,
		Note:     req.Note,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OK(c)
}

func parseTicketID(c *gin.Context) (int64, error) {
	return utils.ParseIDParam(c, "id", "ticket")
}
