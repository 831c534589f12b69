package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/middleware"
	"github.com/jmorrow/cartwheel/internal/service"
)

type CartHandler struct {
	cart service.CartService
}

func NewCartHandler(cart service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

type addCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int32 `json:"quantity" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int32 `json:"quantity" validate:"required,gt=0"`
}

type cartItemResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	// PriceCents and Stock reflect the product as it is now, not as it was
	// when the item entered the cart.
	PriceCents int64  `json:"priceCents"`
	Stock      int32  `json:"stock"`
	ImageURL   string `json:"imageUrl"`
	Quantity   int32  `json:"quantity"`
}

func newCartItemResponse(item *domain.CartItem) cartItemResponse {
	return cartItemResponse{
		ID:         item.ID,
		ProductID:  item.Product.ID,
		Name:       item.Product.Name,
		PriceCents: item.Product.PriceCents,
		Stock:      item.Product.Stock,
		ImageURL:   item.Product.ImageURL,
		Quantity:   item.Quantity.Value(),
	}
}

func (h *CartHandler) Add(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("handler.AddCartItem", "Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer := middleware.CustomerFromContext(c)
	item, err := h.cart.AddItem(c.Request().Context(), customer.ID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newCartItemResponse(item))
}

func (h *CartHandler) List(c echo.Context) error {
	customer := middleware.CustomerFromContext(c)
	items, err := h.cart.ListItems(c.Request().Context(), customer.ID)
	if err != nil {
		return err
	}

	resp := make([]cartItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, newCartItemResponse(&items[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("handler.UpdateCartItem", "Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	customer := middleware.CustomerFromContext(c)
	item, err := h.cart.UpdateItemQuantity(c.Request().Context(), customer.ID, id, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newCartItemResponse(item))
}

func (h *CartHandler) Remove(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	customer := middleware.CustomerFromContext(c)
	if err := h.cart.RemoveItem(c.Request().Context(), customer.ID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
