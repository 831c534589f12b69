package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/middleware"
	"github.com/jmorrow/cartwheel/internal/service"
)

type OrderHandler struct {
	orders service.OrderService
}

func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type placeOrderRequest struct {
	CartItemIDs []int64 `json:"cartItemIds" validate:"required,min=1,dive,gt=0"`
}

type orderLineResponse struct {
	ProductID  int64  `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	ImageURL   string `json:"imageUrl"`
	Quantity   int32  `json:"quantity"`
}

type orderResponse struct {
	ID        int64               `json:"id"`
	CreatedAt string              `json:"createdAt"`
	Lines     []orderLineResponse `json:"orderLines"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, orderLineResponse{
			ProductID:  line.ProductID,
			Name:       line.Name,
			PriceCents: line.PriceCents,
			ImageURL:   line.ImageURL,
			Quantity:   line.Quantity,
		})
	}
	return orderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt.UTC().Format(time.RFC3339),
		Lines:     lines,
	}
}

// Place converts cart items into an order and points at the new resource.
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("handler.PlaceOrder", "Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer := middleware.CustomerFromContext(c)
	orderID, err := h.orders.PlaceOrder(c.Request().Context(), customer.ID, req.CartItemIDs)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/orders/%d", orderID))
	return c.JSON(http.StatusCreated, map[string]int64{"id": orderID})
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	customer := middleware.CustomerFromContext(c)
	order, err := h.orders.GetOrder(c.Request().Context(), customer.ID, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOrderResponse(order))
}

func (h *OrderHandler) List(c echo.Context) error {
	customer := middleware.CustomerFromContext(c)
	orders, err := h.orders.ListOrders(c.Request().Context(), customer.ID)
	if err != nil {
		return err
	}

	resp := make([]orderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, newOrderResponse(&orders[i]))
	}
	return c.JSON(http.StatusOK, resp)
}
