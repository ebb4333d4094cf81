package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/brasserie/internal/config"
	"github.com/example/brasserie/internal/handlers"
	"github.com/example/brasserie/internal/middleware"
)

// Register wires up all HTTP routes. Static segments are registered before
// parameterized ones so /current/ and /all/ are not captured by /:id.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)
	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	reservationHandler := handlers.NewReservationHandler(db)

	authed := middleware.AuthMiddleware(db, cfg)
	adminOnly := middleware.RequireAdmin()

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/token", authHandler.Token)

	users := api.Group("/users")
	users.Post("/", userHandler.Register)
	users.Post("/admin", userHandler.RegisterAdmin)
	users.Get("/current/", authed, userHandler.Current)
	users.Get("/all/", authed, adminOnly, userHandler.List)
	users.Get("/phone/:phone_number", authed, userHandler.GetByPhone)
	users.Get("/:id", authed, userHandler.Get)
	users.Patch("/:id", authed, userHandler.Update)
	users.Delete("/:id", authed, userHandler.Delete)

	categories := api.Group("/categories")
	categories.Post("/", authed, adminOnly, catalogHandler.CreateCategory)
	categories.Get("/all/", catalogHandler.ListCategories)
	categories.Get("/slug/:slug", catalogHandler.GetCategoryBySlug)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Patch("/:id", authed, adminOnly, catalogHandler.UpdateCategory)
	categories.Delete("/:id", authed, adminOnly, catalogHandler.DeleteCategory)

	products := api.Group("/products")
	products.Post("/", authed, adminOnly, productHandler.Create)
	products.Get("/all/", productHandler.List)
	products.Get("/category/:category_slug", productHandler.ListByCategorySlug)
	products.Get("/:id", productHandler.Get)
	products.Patch("/:id", authed, adminOnly, productHandler.Update)
	products.Delete("/:id", authed, adminOnly, productHandler.Delete)

	cart := api.Group("/cart", authed)
	cart.Get("/", cartHandler.Get)
	cart.Patch("/add/:product_id", cartHandler.Add)
	cart.Patch("/quantity/:product_id", cartHandler.SetQuantity)
	cart.Patch("/remove/:product_id", cartHandler.Remove)

	orders := api.Group("/orders", authed)
	orders.Post("/", orderHandler.Create)
	orders.Get("/all/", adminOnly, orderHandler.ListAll)
	orders.Get("/user/current/", orderHandler.ListCurrent)
	orders.Get("/user/:user_id", orderHandler.ListByUser)
	orders.Get("/:id", orderHandler.Get)
	orders.Patch("/:id", adminOnly, orderHandler.UpdateStatus)

	reservations := api.Group("/reservations", authed)
	reservations.Post("/", reservationHandler.Create)
	reservations.Get("/all/", adminOnly, reservationHandler.ListAll)
	reservations.Get("/user/current/", reservationHandler.ListCurrent)
	reservations.Get("/user/:user_id", reservationHandler.ListByUser)
	reservations.Get("/:id", reservationHandler.Get)
	reservations.Delete("/", reservationHandler.Delete)
}
