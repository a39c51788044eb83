package server

import (
	"bistro-api/internal/auth"
	"bistro-api/internal/handler"
	mw "bistro-api/internal/middleware"
	"bistro-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	menuHandler    *handler.MenuHandler
	cartHandler    *handler.CartHandler
	paymentHandler *handler.PaymentHandler
	statsHandler   *handler.StatsHandler

	requireToken echo.MiddlewareFunc
	requireAdmin echo.MiddlewareFunc
}

func NewServer(
	tokens *auth.TokenManager,
	userService service.UserService,
	menuService service.MenuService,
	cartService service.CartService,
	paymentService service.PaymentService,
	statsService service.StatsService,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		authHandler:    handler.NewAuthHandler(tokens),
		userHandler:    handler.NewUserHandler(userService),
		menuHandler:    handler.NewMenuHandler(menuService),
		cartHandler:    handler.NewCartHandler(cartService),
		paymentHandler: handler.NewPaymentHandler(paymentService),
		statsHandler:   handler.NewStatsHandler(statsService),

		requireToken: mw.RequireToken(tokens),
		requireAdmin: mw.RequireAdmin(userService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	e.POST("/jwt", s.authHandler.IssueToken)

	// -------- users --------
	e.GET("/users", s.userHandler.ListUsers, s.requireToken, s.requireAdmin)
	e.GET("/users/admin/:email", s.userHandler.CheckAdmin, s.requireToken)
	e.POST("/users", s.userHandler.CreateUser)
	// grant-admin lives under :id so the param name lines up with DELETE
	// /users/:id; echo rejects /users/admin/:id next to /users/admin/:email
	e.PATCH("/users/:id/admin", s.userHandler.GrantAdmin, s.requireToken, s.requireAdmin)
	e.DELETE("/users/:id", s.userHandler.DeleteUser, s.requireToken, s.requireAdmin)

	// -------- menu --------
	e.POST("/menu", s.menuHandler.AddItem, s.requireToken, s.requireAdmin)
	e.PATCH("/menu/:id", s.menuHandler.UpdateItem)
	e.DELETE("/menu/:id", s.menuHandler.DeleteItem, s.requireToken, s.requireAdmin)

	// -------- carts --------
	e.GET("/carts", s.cartHandler.List)
	e.POST("/carts", s.cartHandler.Add)
	e.DELETE("/carts/:id", s.cartHandler.Remove)

	// -------- payments --------
	e.POST("/create-payment-intent", s.paymentHandler.CreateIntent)
	e.GET("/payments/:email", s.paymentHandler.History, s.requireToken)
	e.POST("/payments", s.paymentHandler.Settle)

	// -------- stats --------
	e.GET("/admin-stats", s.statsHandler.AdminStats, s.requireToken, s.requireAdmin)
	e.GET("/order-stats", s.statsHandler.OrderStats, s.requireToken, s.requireAdmin)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
