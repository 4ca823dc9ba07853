package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snowonice/venue-api/internal/core/ports"
)

// ReportHandler serves the read-side aggregates behind the dashboard and the
// reports screen. Both render the same summary; they differ only in the
// capability that guards them.
type ReportHandler struct {
	salesService ports.SalesService
}

func NewReportHandler(salesService ports.SalesService) *ReportHandler {
	return &ReportHandler{salesService: salesService}
}

// Dashboard returns the venue-wide summary for the landing screen.
//
// @Summary      Dashboard summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.SalesSummary
// @Failure      503  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	summary, err := h.salesService.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Reports returns the same aggregates for the reporting screen.
//
// @Summary      Sales report
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.SalesSummary
// @Failure      503  {object}  map[string]string
// @Router       /v1/reports [get]
func (h *ReportHandler) Reports(c echo.Context) error {
	summary, err := h.salesService.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
