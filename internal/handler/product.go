package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jmorrow/cartwheel/internal/domain"
	"github.com/jmorrow/cartwheel/internal/service"
)

type ProductHandler struct {
	products service.ProductService
}

func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	PriceCents int64  `json:"priceCents" validate:"required,gt=0"`
	Stock      int32  `json:"stock" validate:"gte=0"`
	ImageURL   string `json:"imageUrl" validate:"omitempty,url"`
}

type productResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Stock      int32  `json:"stock"`
	ImageURL   string `json:"imageUrl"`
}

func newProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:         p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Stock:      p.Stock,
		ImageURL:   p.ImageURL,
	}
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("handler.CreateProduct", "Invalid request body.")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.products.Create(c.Request().Context(), service.CreateProductParams{
		Name:       req.Name,
		PriceCents: req.PriceCents,
		Stock:      req.Stock,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newProductResponse(product))
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newProductResponse(product))
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]productResponse, 0, len(products))
	for i := range products {
		resp = append(resp, newProductResponse(&products[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.Invalid("handler.pathID", "Invalid id.")
	}
	return id, nil
}
