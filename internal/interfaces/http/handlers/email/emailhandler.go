package email

import (
	"github.com/gin-gonic/gin"

	"github.com/helpdesk-ai/helpdesk/internal/application/email/dto"
	"github.com/helpdesk-ai/helpdesk/internal/application/email/usecases"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/utils"
)

type EmailHandler struct {
	sendEmailUC usecases.SendEmailExecutor
	logger      logger.Interface
}

func NewEmailHandler(sendEmailUC usecases.SendEmailExecutor, logger logger.Interface) *EmailHandler {
	return &EmailHandler{
		sendEmailUC: sendEmailUC,
		logger:      logger,
	}
}

// Send handles POST /email/send
// @Summary Send an email without touching any ticket
// @Tags email
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.SendEmailRequest true "Email"
// @Success 200 {object} utils.OKResponse
// @Failure 422 {object} utils.ErrorEnvelope
// @Failure 502 {object} utils.ErrorEnvelope
// @Router /email/send [post]
func (h *EmailHandler) Send(c *gin.Context) {
	var req dto.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send email", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	if err := h.sendEmailUC.Execute(c.Request.Context(), req.ToOutbound()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OK(c)
}
