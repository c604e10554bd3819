// Package mockapi is the in-process stand-in for the travel-agency REST
// backend. It exists so the client, the CLI and the tests have a live
// HTTP surface; state is held in memory and rebuilt on every start,
// matching how the real client treats the server as the only source of
// truth.
package mockapi

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"go-travel-agency/internal/model"
	"go-travel-agency/internal/permission"
	"go-travel-agency/internal/pricing"
)

// collection is a mutex-guarded map that preserves insertion order for
// stable listings.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: map[string]T{}}
}

func (c *collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

func (c *collection[T]) Put(id string, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		c.order = append(c.order, id)
	}
	c.items[id] = item
}

func (c *collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[id]; !exists {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// account is a login identity. Dashboard users (the managed records) are
// separate from accounts that can sign in; the seed admin is both.
type account struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         string
	PasswordHash []byte
	Permissions  permission.Set
}

type Store struct {
	mu       sync.RWMutex
	accounts map[string]*account

	Users    *collection[model.User]
	Products *collection[model.Product]
	Orders   *collection[model.Order]
	Reviews  *collection[model.Review]
	Contacts *collection[model.Contact]
	Blogs    *collection[model.Blog]
	Bookings *collection[model.Booking]

	Trips     []model.Trip
	Countries []model.Country
}

func NewStore() *Store {
	s := &Store{
		accounts: map[string]*account{},
		Users:    newCollection[model.User](),
		Products: newCollection[model.Product](),
		Orders:   newCollection[model.Order](),
		Reviews:  newCollection[model.Review](),
		Contacts: newCollection[model.Contact](),
		Blogs:    newCollection[model.Blog](),
		Bookings: newCollection[model.Booking](),
	}
	s.seed()
	return s
}

func (s *Store) seed() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	s.accounts["admin@example.com"] = &account{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		Name:         "Master Administrator",
		Role:         model.RoleAdmin,
		PasswordHash: hash,
		Permissions:  permission.Full(),
	}

	s.Trips = []model.Trip{
		{ID: uuid.NewString(), Title: "Island Hop", Subtitle: "Seven days at sea", OriginalPrice: decimal.NewFromInt(250), DiscountPercent: decimal.NewFromInt(20)},
		{ID: uuid.NewString(), Title: "Mountain Trek", Subtitle: "Alpine crossing", OriginalPrice: decimal.NewFromInt(400), DiscountPercent: decimal.Zero},
	}
	s.Countries = []model.Country{
		{Name: "Portugal", Code: "PT"},
		{Name: "Japan", Code: "JP"},
		{Name: "Peru", Code: "PE"},
	}

	original := decimal.NewFromInt(30)
	discount := decimal.NewFromInt(10)
	s.Products.Put("seed-mug", model.Product{
		ID:              "seed-mug",
		Category:        "Souvenirs",
		ProductName:     "Agency Mug",
		OriginalPrice:   original,
		DiscountPercent: discount,
		FinalPrice:      pricing.FinalPrice(original, discount),
		Description:     "A mug with the agency logo",
		StockQuantity:   25,
	})
}

// Authenticate checks the credentials and returns the account.
func (s *Store) Authenticate(email, password string) (*account, bool) {
	s.mu.RLock()
	acct, ok := s.accounts[email]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword(acct.PasswordHash, []byte(password)) != nil {
		return nil, false
	}
	return acct, true
}

// AddAccount registers a login identity for a created dashboard user.
func (s *Store) AddAccount(user model.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(user.ID)
	if err != nil {
		id = uuid.New()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[user.Email] = &account{
		ID:           id,
		Email:        user.Email,
		Name:         user.Name,
		Role:         user.Role,
		PasswordHash: hash,
		Permissions:  permission.Set(user.Permissions),
	}
	return nil
}
