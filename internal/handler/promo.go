package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"spinwheel-cart-demo/internal/dto"
	"spinwheel-cart-demo/internal/service"
)

type PromoHandler struct {
	promoService service.PromoService
}

func NewPromoHandler(promoService service.PromoService) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

func (h *PromoHandler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	snapshot, err := h.promoService.CreateSession(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, snapshot)
}

func (h *PromoHandler) GetSession(c echo.Context) error {
	snapshot, err := h.promoService.Snapshot(c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

func (h *PromoHandler) GetWheel(c echo.Context) error {
	return c.JSON(http.StatusOK, h.promoService.Wheel())
}

func (h *PromoHandler) StartSpin(c echo.Context) error {
	resp, err := h.promoService.StartSpin(c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PromoHandler) SettleSpin(c echo.Context) error {
	resp, err := h.promoService.SettleSpin(c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *PromoHandler) Decide(c echo.Context) error {
	var req dto.DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	switch req.Action {
	case "apply", "ignore":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "action must be apply or ignore")
	}

	snapshot, err := h.promoService.Decide(c.Param("id"), req.Action == "apply")
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

func (h *PromoHandler) ApplySavedCoupon(c echo.Context) error {
	snapshot, err := h.promoService.ApplySavedCoupon(c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

func (h *PromoHandler) WithdrawCoupon(c echo.Context) error {
	snapshot, err := h.promoService.WithdrawCoupon(c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, snapshot)
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSpinInFlight):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNoSavedCoupon):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
