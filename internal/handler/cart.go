package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"spinwheel-cart-demo/internal/dto"
	"spinwheel-cart-demo/internal/service"
)

type CartHandler struct {
	promoService service.PromoService
}

func NewCartHandler(promoService service.PromoService) *CartHandler {
	return &CartHandler{
		promoService: promoService,
	}
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	snapshot, err := h.promoService.UpdateQuantity(c.Param("id"), c.Param("itemID"), req.Quantity)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	snapshot, err := h.promoService.RemoveItem(c.Param("id"), c.Param("itemID"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, snapshot)
}
