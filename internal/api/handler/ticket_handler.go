package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snowonice/venue-api/internal/api/metrics"
	"github.com/snowonice/venue-api/internal/core/ports"
)

// TicketHandler records event ticket sales.
type TicketHandler struct {
	salesService ports.SalesService
}

func NewTicketHandler(salesService ports.SalesService) *TicketHandler {
	return &TicketHandler{salesService: salesService}
}

type createTicketSaleRequest struct {
	Customer   string  `json:"customer"    validate:"required"`
	Event      string  `json:"event"       validate:"required"`
	EventDate  string  `json:"event_date"  validate:"required"`
	Tickets    int     `json:"tickets"     validate:"required,min=1"`
	TicketType string  `json:"ticket_type" validate:"required"`
	Total      float64 `json:"total"       validate:"required,gt=0"`
}

// List returns event ticket sales, newest first.
//
// @Summary      List ticket sales
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TicketSale
// @Failure      503  {object}  map[string]string
// @Router       /v1/ticket-sales [get]
func (h *TicketHandler) List(c echo.Context) error {
	ticketSales, err := h.salesService.ListTicketSales(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticketSales)
}

// Create records an event ticket purchase and credits the ticket balance
// when the customer field references a registered customer.
//
// @Summary      Record a ticket sale
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTicketSaleRequest  true  "Ticket purchase details"
// @Success      201   {object}  domain.TicketSale
// @Failure      400   {object}  map[string]string
// @Router       /v1/ticket-sales [post]
func (h *TicketHandler) Create(c echo.Context) error {
	var req createTicketSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticketSale, err := h.salesService.CreateTicketSale(c.Request().Context(), ports.CreateTicketSaleInput{
		Customer:   req.Customer,
		Event:      req.Event,
		EventDate:  req.EventDate,
		Tickets:    req.Tickets,
		TicketType: req.TicketType,
		Total:      req.Total,
	})
	if err != nil {
		return err
	}

	metrics.SalesTotal.WithLabelValues("ticket").Inc()
	metrics.SalesRevenue.WithLabelValues("ticket").Add(ticketSale.Total)

	return c.JSON(http.StatusCreated, ticketSale)
}

// Delete removes a recorded ticket sale.
//
// @Summary      Delete a ticket sale
// @Tags         tickets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Ticket sale ID"
// @Success      204  "ticket sale removed"
// @Failure      404  {object}  map[string]string
// @Router       /v1/ticket-sales/{id} [delete]
func (h *TicketHandler) Delete(c echo.Context) error {
	if err := h.salesService.DeleteTicketSale(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
