package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/craftside/marketplace/internal/api/http/handlers"
	"github.com/craftside/marketplace/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Pages    *handlers.PagesHandler
	Catalog  *handlers.CatalogHandler
	Cart     *handlers.CartHandler
	Wishlist *handlers.WishlistHandler
	Orders   *handlers.OrdersHandler
	Reviews  *handlers.ReviewsHandler
	Uploads  *handlers.UploadsHandler

	Guard    *auth.RouteGuard
	Resolver *auth.SessionResolver
}

// RegisterRoutes wires HTTP routes. The route guard runs ahead of every
// handler so protected page paths are gated before dispatch.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Guard.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/login", cfg.Pages.Login)
	app.Get("/dashboard", cfg.Pages.Dashboard)
	app.Get("/dashboard/*", cfg.Pages.Dashboard)

	authGroup := app.Group("/auth")
	authGroup.Post("/signup", cfg.Auth.Signup)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)

	authProtected := authGroup.Group("", auth.RequireUser(cfg.Resolver))
	authProtected.Get("/me", cfg.Auth.Me)
	authProtected.Post("/password/change", cfg.Auth.ChangePassword)

	api := app.Group("/api")
	api.Get("/categories", cfg.Catalog.ListCategories)
	api.Get("/products", cfg.Catalog.ListProducts)
	api.Get("/products/:slug", cfg.Catalog.GetProduct)
	api.Get("/products/:slug/reviews", cfg.Reviews.List)

	protected := api.Group("", auth.RequireUser(cfg.Resolver))
	protected.Post("/products", cfg.Catalog.CreateProduct)
	protected.Put("/products/:slug", cfg.Catalog.UpdateProduct)
	protected.Delete("/products/:slug", cfg.Catalog.DeleteProduct)
	protected.Post("/products/:slug/reviews", cfg.Reviews.Submit)

	protected.Get("/cart", cfg.Cart.Get)
	protected.Post("/cart/items", cfg.Cart.SetItem)
	protected.Delete("/cart/items/:productID", cfg.Cart.RemoveItem)
	protected.Delete("/cart", cfg.Cart.Clear)

	protected.Get("/wishlist", cfg.Wishlist.List)
	protected.Post("/wishlist", cfg.Wishlist.Add)
	protected.Delete("/wishlist/:productID", cfg.Wishlist.Remove)

	protected.Post("/orders", cfg.Orders.Place)
	protected.Get("/orders", cfg.Orders.List)
	protected.Get("/orders/:id", cfg.Orders.Get)

	protected.Post("/uploads/images", cfg.Uploads.PresignImage)
}
