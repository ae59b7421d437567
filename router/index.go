package router

import (
	"cinebook/handler"
	"cinebook/middleware"
	"cinebook/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	// Admin surface.
	movie := v1.Group("/movie", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Get("/:movieId", validate.GetById("movieId"), handler.GetMovieById)
	movie.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateMovie(), handler.CreateMovie)
	movie.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteMovies)

	show := v1.Group("/show", logger.New())
	show.Get("/", handler.GetShows)
	show.Get("/:showId/seats", validate.GetById("showId"), handler.GetShowSeats)
	show.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateShow(), handler.CreateShow)
	show.Delete("/:showId", middleware.Protected(), middleware.AdminOnly(), validate.GetById("showId"), handler.DeleteShow)

	snack := v1.Group("/snack", logger.New())
	snack.Get("/", handler.GetSnacks)
	snack.Post("/", middleware.Protected(), middleware.AdminOnly(), validate.CreateSnack(), handler.CreateSnack)
	snack.Delete("/", middleware.Protected(), middleware.AdminOnly(), validate.Delete(), handler.DeleteSnacks)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetOrders)
	order.Patch("/:orderId/status", middleware.Protected(), middleware.AdminOnly(), validate.GetById("orderId"), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
	order.Post("/", middleware.OptionalJWT(), middleware.CustomerRequired(), validate.CreateOrder(), handler.CreateOrder)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), middleware.AdminOnly(), handler.GetAdminStats)

	v1.Post("/cloudinary-signature", middleware.Protected(), middleware.AdminOnly(), handler.GenerateSignature)
	v1.Post("/upload", middleware.Protected(), middleware.AdminOnly(), handler.UploadImage)

	// Customer surface.
	customer := v1.Group("/customer")
	customer.Post("/register", validate.RegisterCustomer(), handler.RegisterCustomer)
	customer.Post("/login", validate.CustomerLogin(), handler.CustomerLogin)
	customer.Get("/me", middleware.OptionalJWT(), middleware.CustomerRequired(), handler.GetCurrentCustomer)
	customer.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	customer.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	myOrder := v1.Group("/my-order", logger.New())
	myOrder.Get("/", middleware.OptionalJWT(), middleware.CustomerRequired(), handler.GetMyOrders)
	myOrder.Get("/:orderCode", middleware.OptionalJWT(), middleware.CustomerRequired(), handler.GetOrderDetail)

	// Change feed: one socket per watched table.
	v1.Get("/ws/:table", websocket.New(handler.ChangeFeedWebsocket))
}
