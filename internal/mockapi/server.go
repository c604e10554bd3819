package mockapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"go-travel-agency/internal/middleware"
)

type Server struct {
	store    *Store
	tokenTTL time.Duration
}

type Options struct {
	// TokenTTL controls issued token lifetime. Defaults to 24h.
	TokenTTL time.Duration
	// RequestLog enables per-request logging; tests leave it off.
	RequestLog bool
}

// New wires the stub API the way the real backend lays out its routes:
// auth is public, storefront submissions are public, everything the
// dashboard touches sits behind auth plus a permission code.
func New(store *Store, opts Options) *fiber.App {
	ttl := opts.TokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	s := &Server{store: store, tokenTTL: ttl}

	app := fiber.New(fiber.Config{AppName: "Travel Agency Stub API"})
	app.Use(recover.New())
	app.Use(cors.New())
	if opts.RequestLog {
		app.Use(logger.New())
	}

	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", s.login)

	api.Get("/trips", s.listTrips)
	api.Get("/countries", s.listCountries)
	api.Get("/products", s.listProducts)
	api.Post("/bookings", s.createBooking)
	api.Post("/contacts", s.createContact)
	api.Post("/reviews", s.createReview)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	protected.Get("/users", middleware.RequirePermission("user:list"), s.listUsers)
	protected.Post("/users", middleware.RequirePermission("user:create"), s.createUser)
	protected.Put("/users/:id", middleware.RequirePermission("user:update"), s.updateUser)
	protected.Delete("/users/:id", middleware.RequirePermission("user:delete"), s.deleteUser)

	protected.Post("/products", middleware.RequirePermission("product:create"), s.createProduct)
	protected.Put("/products/:id", middleware.RequirePermission("product:update"), s.updateProduct)
	protected.Delete("/products/:id", middleware.RequirePermission("product:delete"), s.deleteProduct)

	protected.Get("/orders", middleware.RequirePermission("orders:list"), s.listOrders)
	protected.Post("/orders", middleware.RequirePermission("orders:create"), s.createOrder)
	protected.Put("/orders/:id", middleware.RequirePermission("orders:update"), s.updateOrder)
	protected.Delete("/orders/:id", middleware.RequirePermission("orders:delete"), s.deleteOrder)

	protected.Get("/reviews", middleware.RequirePermission("review:list"), s.listReviews)
	protected.Put("/reviews/:id", middleware.RequirePermission("review:update"), s.updateReview)
	protected.Delete("/reviews/:id", middleware.RequirePermission("review:delete"), s.deleteReview)

	protected.Get("/contacts", middleware.RequirePermission("contact:list"), s.listContacts)
	protected.Put("/contacts/:id", middleware.RequirePermission("contact:update"), s.updateContact)
	protected.Delete("/contacts/:id", middleware.RequirePermission("contact:delete"), s.deleteContact)

	protected.Get("/blogs", middleware.RequirePermission("blog:list"), s.listBlogs)
	protected.Post("/blogs", middleware.RequirePermission("blog:create"), s.createBlog)
	protected.Put("/blogs/:id", middleware.RequirePermission("blog:update"), s.updateBlog)
	protected.Delete("/blogs/:id", middleware.RequirePermission("blog:delete"), s.deleteBlog)

	protected.Get("/bookings", middleware.RequirePermission("booking:list"), s.listBookings)

	return app
}
