package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snowonice/venue-api/internal/api/metrics"
	"github.com/snowonice/venue-api/internal/core/ports"
)

// SaleHandler records point-of-sale transactions.
type SaleHandler struct {
	salesService ports.SalesService
}

func NewSaleHandler(salesService ports.SalesService) *SaleHandler {
	return &SaleHandler{salesService: salesService}
}

type cartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type createSaleRequest struct {
	CustomerID string            `json:"customer_id"`
	Items      []cartItemRequest `json:"items" validate:"required,min=1,dive"`
}

// List returns recorded sales joined with their line items, newest first.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.SaleDetail
// @Failure      503  {object}  map[string]string
// @Router       /v1/sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.salesService.ListSales(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sales)
}

// Create records a transaction: stock is decremented per line and ticket
// items credit the named customer.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSaleRequest  true  "Cart contents"
// @Success      201   {object}  ports.SaleDetail
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.CartItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.CartItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	detail, err := h.salesService.CreateSale(c.Request().Context(), ports.CreateSaleInput{
		CustomerID: req.CustomerID,
		Items:      items,
	})
	if err != nil {
		return err
	}

	metrics.SalesTotal.WithLabelValues("sale").Inc()
	metrics.SalesRevenue.WithLabelValues("sale").Add(detail.Sale.Total)

	return c.JSON(http.StatusCreated, detail)
}
