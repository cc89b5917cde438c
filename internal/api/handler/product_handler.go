package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/couleurbar/theke-system/internal/core/ports"
)

// ProductHandler serves the price list.
type ProductHandler struct {
	products ports.ProductRepository
}

func NewProductHandler(products ports.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /v1/products.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"products": products})
}
