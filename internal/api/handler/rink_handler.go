package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/snowonice/venue-api/internal/api/metrics"
	"github.com/snowonice/venue-api/internal/core/domain"
	"github.com/snowonice/venue-api/internal/core/ports"
)

// RinkHandler exposes the rink check-in board: timed entries, pause control,
// and the live countdown view.
type RinkHandler struct {
	rinkService ports.RinkService
}

func NewRinkHandler(rinkService ports.RinkService) *RinkHandler {
	return &RinkHandler{rinkService: rinkService}
}

type checkInRequest struct {
	CustomerNumber int `json:"customer_number" validate:"required,min=1,max=999"`
	Minutes        int `json:"minutes"         validate:"required,min=1"`
}

type rinkCustomerResponse struct {
	CustomerNumber   int       `json:"customer_number"`
	EntryTime        time.Time `json:"entry_time"`
	ScheduledExit    time.Time `json:"scheduled_exit"`
	TotalMinutes     int       `json:"total_minutes"`
	Paused           bool      `json:"paused"`
	RemainingSeconds int       `json:"remaining_seconds"`
	Expired          bool      `json:"expired"`
}

type checkInResponse struct {
	Customer rinkCustomerResponse `json:"customer"`
	TopUp    bool                 `json:"top_up"`
}

type pauseAllResponse struct {
	Paused bool `json:"paused"`
}

func toRinkCustomerResponse(s ports.RinkSnapshot) rinkCustomerResponse {
	return rinkCustomerResponse{
		CustomerNumber:   s.CustomerNumber,
		EntryTime:        s.EntryTime,
		ScheduledExit:    s.ScheduledExit,
		TotalMinutes:     s.TotalMinutes,
		Paused:           s.Paused,
		RemainingSeconds: int(s.Remaining / time.Second),
		Expired:          s.Remaining <= 0,
	}
}

// customerNumberParam parses the :number path segment. Non-numeric input is
// folded into the same error as an out-of-range number.
func customerNumberParam(c echo.Context) (int, error) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		return 0, domain.ErrInvalidCustomerNumber
	}
	return number, nil
}

// List returns the live countdown board, ordered by customer number.
//
// @Summary      List tracked customers
// @Tags         rink
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   rinkCustomerResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/rink/customers [get]
func (h *RinkHandler) List(c echo.Context) error {
	snapshots := h.rinkService.List()
	out := make([]rinkCustomerResponse, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, toRinkCustomerResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

// CheckIn starts tracking a customer, or adds minutes when the number is
// already on the rink.
//
// @Summary      Check a customer in
// @Tags         rink
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      checkInRequest  true  "Customer number and skate minutes"
// @Success      201   {object}  checkInResponse
// @Failure      400   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /v1/rink/customers [post]
func (h *RinkHandler) CheckIn(c echo.Context) error {
	var req checkInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.rinkService.CheckIn(c.Request().Context(), req.CustomerNumber, req.Minutes)
	if err != nil {
		return err
	}

	kind := "new"
	if result.TopUp {
		kind = "topup"
	}
	metrics.RinkCheckinsTotal.WithLabelValues(kind).Inc()

	return c.JSON(http.StatusCreated, checkInResponse{
		Customer: toRinkCustomerResponse(result.Snapshot),
		TopUp:    result.TopUp,
	})
}

// Get returns the live snapshot for one tracked customer.
//
// @Summary      Inspect a tracked customer
// @Tags         rink
// @Produce      json
// @Security     BearerAuth
// @Param        number  path      int  true  "Customer number (1-999)"
// @Success      200     {object}  rinkCustomerResponse
// @Failure      404     {object}  map[string]string
// @Router       /v1/rink/customers/{number} [get]
func (h *RinkHandler) Get(c echo.Context) error {
	number, err := customerNumberParam(c)
	if err != nil {
		return err
	}

	snapshot, err := h.rinkService.Inspect(number)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRinkCustomerResponse(*snapshot))
}

// TogglePause flips one customer's countdown between running and frozen.
//
// @Summary      Pause or resume a customer
// @Tags         rink
// @Produce      json
// @Security     BearerAuth
// @Param        number  path      int  true  "Customer number (1-999)"
// @Success      200     {object}  rinkCustomerResponse
// @Failure      404     {object}  map[string]string
// @Failure      503     {object}  map[string]string
// @Router       /v1/rink/customers/{number}/pause [post]
func (h *RinkHandler) TogglePause(c echo.Context) error {
	number, err := customerNumberParam(c)
	if err != nil {
		return err
	}

	snapshot, err := h.rinkService.TogglePause(c.Request().Context(), number)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRinkCustomerResponse(*snapshot))
}

// TogglePauseAll pauses every countdown unless all are already paused, in
// which case it resumes all.
//
// @Summary      Pause or resume every customer
// @Tags         rink
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pauseAllResponse
// @Failure      503  {object}  map[string]string
// @Router       /v1/rink/pause-all [post]
func (h *RinkHandler) TogglePauseAll(c echo.Context) error {
	paused, err := h.rinkService.TogglePauseAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pauseAllResponse{Paused: paused})
}

// CheckOut removes a customer from the rink.
//
// @Summary      Check a customer out
// @Tags         rink
// @Produce      json
// @Security     BearerAuth
// @Param        number  path      int  true  "Customer number (1-999)"
// @Success      204     "customer checked out"
// @Failure      404     {object}  map[string]string
// @Failure      503     {object}  map[string]string
// @Router       /v1/rink/customers/{number} [delete]
func (h *RinkHandler) CheckOut(c echo.Context) error {
	number, err := customerNumberParam(c)
	if err != nil {
		return err
	}

	if err := h.rinkService.CheckOut(c.Request().Context(), number); err != nil {
		return err
	}
	metrics.RinkCheckoutsTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
