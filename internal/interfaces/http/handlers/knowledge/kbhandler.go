package knowledge

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/dto"
	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/usecases"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/utils"
)

type KBHandler struct {
	createDocumentUC  usecases.CreateDocumentExecutor
	updateDocumentUC  usecases.UpdateDocumentExecutor
	getDocumentUC     usecases.GetDocumentExecutor
	searchDocumentsUC usecases.SearchDocumentsExecutor
	logger            logger.Interface
}

func NewKBHandler(
	createDocumentUC usecases.CreateDocumentExecutor,
	updateDocumentUC usecases.UpdateDocumentExecutor,
	getDocumentUC usecases.GetDocumentExecutor,
	searchDocumentsUC usecases.SearchDocumentsExecutor,
	logger logger.Interface,
) *KBHandler {
	return &KBHandler{
		createDocumentUC:  createDocumentUC,
		updateDocumentUC:  updateDocumentUC,
		getDocumentUC:     getDocumentUC,
		searchDocumentsUC: searchDocumentsUC,
		logger:            logger,
	}
}

// CreateDocument handles POST /kb/documents
// @Summary Create a knowledge base document
// @Tags kb
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.KbDocumentRequest true "Document"
// @Success 201 {object} dto.KbDocumentDTO
// @Failure 422 {object} utils.ErrorEnvelope
// @Router /kb/documents [post]
func (h *KBHandler) CreateDocument(c *gin.Context) {
	var req dto.KbDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create document", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createDocumentUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateDocument handles PUT /kb/documents/:id
// @Summary Replace a knowledge base document
// @Tags kb
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Document ID"
// @Param request body dto.KbDocumentRequest true "Document"
// @Success 200 {object} dto.KbDocumentDTO
// @Failure 404 {object} utils.ErrorEnvelope
// @Failure 422 {object} utils.ErrorEnvelope
// @Router /kb/documents/{id} [put]
func (h *KBHandler) UpdateDocument(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.KbDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update document", "document_id", id, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateDocumentUC.Execute(c.Request.Context(), usecases.UpdateDocumentCommand{
		ID:      id,
		Request: req,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetDocument handles GET /kb/documents/:id
// @Summary Get a knowledge base document
// @Tags kb
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.KbDocumentDTO
// @Failure 404 {object} utils.ErrorEnvelope
// @Router /kb/documents/{id} [get]
func (h *KBHandler) GetDocument(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "document")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDocumentUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// Search handles GET /kb/search
// @Summary Full-text search over active documents
// @Tags kb
// @Produce json
// @Security ApiKeyAuth
// @Param q query string true "Query"
// @Param limit query int false "Maximum hits (1-20)" default(5)
// @Param language query string false "Language code or text search configuration"
// @Success 200 {object} dto.KbSearchResponse
// @Failure 422 {object} utils.ErrorEnvelope
// @Router /kb/search [get]
func (h *KBHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("q is required"))
		return
	}

	limit, err := utils.ParseQueryInt(c, "limit", constants.DefaultKBSearchLimit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.searchDocumentsUC.Execute(c.Request.Context(), usecases.SearchDocumentsQuery{
		Text:     q,
		Limit:    limit,
		Language: strings.TrimSpace(c.Query("language")),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
