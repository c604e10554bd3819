package mockapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-travel-agency/internal/model"
	"go-travel-agency/internal/permission"
	"go-travel-agency/internal/pricing"
	"go-travel-agency/pkg/jwt"
)

// POST /api/v1/auth/login
func (s *Server) login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	acct, ok := s.store.Authenticate(req.Email, req.Password)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	flat := acct.Permissions.Flatten()
	token, err := jwt.GenerateToken(acct.ID, acct.Email, acct.Name, acct.Role, flat, s.tokenTTL)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to issue token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"data": fiber.Map{
			"id":              acct.ID.String(),
			"name":            acct.Name,
			"email":           acct.Email,
			"role":            acct.Role,
			"permissions":     acct.Permissions,
			"permissionsList": flat,
		},
	})
}

// ---------- users ----------

type userPayload struct {
	model.User
	Password        string   `json:"password"`
	PermissionsList []string `json:"permissionsList"`
}

func (p *userPayload) permissionSet() map[string][]string {
	if len(p.Permissions) > 0 {
		return p.Permissions
	}
	return permission.FromList(p.PermissionsList)
}

func (s *Server) listUsers(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.store.Users.List()})
}

func (s *Server) createUser(c *fiber.Ctx) error {
	var req userPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Password == "" || len(req.Password) < 6 {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 6 characters"})
	}
	for _, existing := range s.store.Users.List() {
		if existing.Email == req.Email {
			return c.Status(400).JSON(fiber.Map{"error": "email already exists"})
		}
	}

	user := req.User
	user.ID = uuid.NewString()
	user.Permissions = req.permissionSet()
	s.store.Users.Put(user.ID, user)
	if err := s.store.AddAccount(user, req.Password); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to register account"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "User created successfully", "data": user})
}

func (s *Server) updateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := s.store.Users.Get(id); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var req userPayload
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	user := req.User
	user.ID = id
	user.Permissions = req.permissionSet()
	s.store.Users.Put(id, user)

	return c.JSON(fiber.Map{"message": "User updated successfully", "data": user})
}

func (s *Server) deleteUser(c *fiber.Ctx) error {
	if !s.store.Users.Delete(c.Params("id")) {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}

// ---------- products ----------

func (s *Server) listProducts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.store.Products.List()})
}

func (s *Server) createProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product.ID = uuid.NewString()
	product.FinalPrice = pricing.FinalPrice(product.OriginalPrice, product.DiscountPercent)
	s.store.Products.Put(product.ID, product)
	return c.Status(201).JSON(fiber.Map{"message": "Product created successfully", "data": product})
}

func (s *Server) updateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := s.store.Products.Get(id); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	product.ID = id
	product.FinalPrice = pricing.FinalPrice(product.OriginalPrice, product.DiscountPercent)
	s.store.Products.Put(id, product)
	return c.JSON(fiber.Map{"message": "Product updated successfully", "data": product})
}

func (s *Server) deleteProduct(c *fiber.Ctx) error {
	if !s.store.Products.Delete(c.Params("id")) {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}

// ---------- orders ----------

func (s *Server) listOrders(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.store.Orders.List()})
}

func (s *Server) createOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	order.ID = uuid.NewString()
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}
	s.store.Orders.Put(order.ID, order)
	return c.Status(201).JSON(fiber.Map{"message": "Order created successfully", "data": order})
}

func (s *Server) updateOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := s.store.Orders.Get(id); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
	}
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	order.ID = id
	s.store.Orders.Put(id, order)
	return c.JSON(fiber.Map{"message": "Order updated successfully", "data": order})
}

func (s *Server) deleteOrder(c *fiber.Ctx) error {
	if !s.store.Orders.Delete(c.Params("id")) {
		return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}

// ---------- reviews ----------

func (s *Server) listReviews(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.store.Reviews.List()})
}

func (s *Server) createReview(c *fiber.Ctx) error {
	var review model.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	review.ID = uuid.NewString()
	s.store.Reviews.Put(review.ID, review)
	return c.Status(201).JSON(fiber.Map{"message": "Review submitted successfully", "data": review})
}

func (s *Server) updateReview(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := s.store.Reviews.Get(id); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Review not found"})
	}
	var review model.Review
	if err := c.BodyParser(&review); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	review.ID = id
	s.store.Reviews.Put(id, review)
	return c.JSON(fiber.Map{"message": "Review updated successfully", "data": review})
}

func (s *Server) deleteReview(c *fiber.Ctx) error {
	if !s.store.Reviews.Delete(c.Params("id")) {
		return c.Status(404).JSON(fiber.Map{"error": "Review not found"})
	}
	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}

// ---------- contacts ----------

func (s *Server) listContacts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.store.Contacts.List()})
}

func (s *Server) createContact(c *fiber.Ctx) error {
	var contact model.Contact
	if err := c.BodyParser(&contact); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	contact.ID = uuid.NewString()
	contact.CreatedAt = time.Now().UTC()
	s.store.Contacts.Put(contact.ID, contact)
	return c.Status(201).JSON(fiber.Map{"message": "Message sent successfully", "data": contact})
}

func (s *Server) updateContact(c *fiber.Ctx) error {
	id := c.Params("id")
	existing, ok := s.store.Contacts.Get(id)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Contact not found"})
	}
	var contact model.Contact
	if err := c.BodyParser(&contact); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	contact.ID = id
	contact.CreatedAt = existing.CreatedAt
	s.store.Contacts.Put(id, contact)
	return c.JSON(fiber.Map{"message": "Contact updated successfully", "data": contact})
}

func (s *Server) deleteContact(c *fiber.Ctx) error {
	if !s.store.Contacts.Delete(c.Params("id")) {
		return c.Status(404).JSON(fiber.Map{"error": "Contact not found"})
	}
	return c.JSON(fiber.Map{"message": "Contact deleted successfully"})
}

// ---------- bookings, trips, countries ----------

func (s *Server) listBookings(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.store.Bookings.List()})
}

func (s *Server) createBooking(c *fiber.Ctx) error {
	var booking model.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	booking.ID = uuid.NewString()
	s.store.Bookings.Put(booking.ID, booking)
	return c.Status(201).JSON(fiber.Map{"message": "Booking submitted successfully", "data": booking})
}

func (s *Server) listTrips(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.store.Trips})
}

func (s *Server) listCountries(c *fiber.Ctx) error {
	// answered as a bare array; the client tolerates both shapes
	return c.JSON(s.store.Countries)
}
