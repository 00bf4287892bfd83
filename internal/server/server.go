package server

import (
	"context"

	"spinwheel-cart-demo/internal/handler"
	"spinwheel-cart-demo/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo         *echo.Echo
	promoHandler *handler.PromoHandler
	cartHandler  *handler.CartHandler
}

func NewServer(promoService service.PromoService) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	promoHandler := handler.NewPromoHandler(promoService)
	cartHandler := handler.NewCartHandler(promoService)

	s := &Server{
		echo:         e,
		promoHandler: promoHandler,
		cartHandler:  cartHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/wheel", s.promoHandler.GetWheel)

	// -------- session / spin --------
	sessions := api.Group("/sessions")
	sessions.POST("", s.promoHandler.CreateSession)
	sessions.GET("/:id", s.promoHandler.GetSession)
	sessions.POST("/:id/spin", s.promoHandler.StartSpin)
	sessions.POST("/:id/spin/settle", s.promoHandler.SettleSpin)

	// -------- coupon --------
	sessions.POST("/:id/coupon/decision", s.promoHandler.Decide)
	sessions.POST("/:id/coupon/apply", s.promoHandler.ApplySavedCoupon)
	sessions.DELETE("/:id/coupon", s.promoHandler.WithdrawCoupon)

	// -------- cart items --------
	sessions.PATCH("/:id/items/:itemID", s.cartHandler.UpdateQuantity)
	sessions.DELETE("/:id/items/:itemID", s.cartHandler.RemoveItem)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
