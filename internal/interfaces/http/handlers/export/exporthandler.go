package export

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-ai/helpdesk/internal/application/export/usecases"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/utils"
)

type ExportHandler struct {
	exportTicketsUC usecases.ExportTicketsExecutor
	logger          logger.Interface
}

func NewExportHandler(exportTicketsUC usecases.ExportTicketsExecutor, logger logger.Interface) *ExportHandler {
	return &ExportHandler{
		exportTicketsUC: exportTicketsUC,
		logger:          logger,
	}
}

// TicketsCSV handles GET /export/tickets.csv
// @Summary Export all tickets as CSV
// @Tags export
// @Produce text/csv
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Router /export/tickets.csv [get]
func (h *ExportHandler) TicketsCSV(c *gin.Context) {
	h.export(c, usecases.FormatCSV)
}

// TicketsXLSX handles GET /export/tickets.xlsx
// @Summary Export all tickets as an XLSX workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Success 200 {file} file
// @Router /export/tickets.xlsx [get]
func (h *ExportHandler) TicketsXLSX(c *gin.Context) {
	h.export(c, usecases.FormatXLSX)
}

func (h *ExportHandler) export(c *gin.Context, format string) {
	result, err := h.exportTicketsUC.Execute(c.Request.Context(), format)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
