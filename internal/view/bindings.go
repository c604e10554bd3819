package view

import (
	"strings"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
	"go-travel-agency/internal/permission"
)

// Per-entity bindings. Delete and fetch-failure behavior is declared
// here, one line per entity, instead of diverging inside each view.

func Users(client *api.Client, perms *permission.Evaluator, notifier notify.Notifier) *List[model.User] {
	return NewList(client, perms, notifier, Binding[model.User]{
		Module:     "user",
		Label:      "User",
		Path:       api.Users(),
		DeletePath: api.User,
		ID:         func(u model.User) string { return u.ID },
		SearchText: func(u model.User) string {
			return strings.Join([]string{u.Name, u.Email, u.IdentificationNo, u.Role, u.Status}, " ")
		},
		DeletePolicy: DeletePessimistic,
		FetchFailure: FailNotify,
	})
}

func Products(client *api.Client, perms *permission.Evaluator, notifier notify.Notifier) *List[model.Product] {
	return NewList(client, perms, notifier, Binding[model.Product]{
		Module:     "product",
		Label:      "Product",
		Path:       api.Products(),
		DeletePath: api.Product,
		ID:         func(p model.Product) string { return p.ID },
		SearchText: func(p model.Product) string {
			return strings.Join([]string{p.ProductName, p.Category, p.Description}, " ")
		},
		DeletePolicy: DeletePessimistic,
		FetchFailure: FailNotify,
	})
}

func Orders(client *api.Client, perms *permission.Evaluator, notifier notify.Notifier) *List[model.Order] {
	return NewList(client, perms, notifier, Binding[model.Order]{
		Module:     "orders",
		Label:      "Order",
		Path:       api.Orders(),
		DeletePath: api.Order,
		ID:         func(o model.Order) string { return o.ID },
		SearchText: func(o model.Order) string {
			return strings.Join([]string{o.Name, o.Email, o.Phone, o.Status}, " ")
		},
		DeletePolicy: DeletePessimistic,
		FetchFailure: FailNotify,
	})
}

func Reviews(client *api.Client, perms *permission.Evaluator, notifier notify.Notifier) *List[model.Review] {
	return NewList(client, perms, notifier, Binding[model.Review]{
		Module:     "review",
		Label:      "Review",
		Path:       api.Reviews(),
		DeletePath: api.Review,
		ID:         func(r model.Review) string { return r.ID },
		SearchText: func(r model.Review) string {
			// rating participates in search as text
			return strings.Join([]string{r.Name, r.Email, r.Rating, r.Comment}, " ")
		},
		DeletePolicy: DeletePessimistic,
		FetchFailure: FailLog,
	})
}

func Contacts(client *api.Client, perms *permission.Evaluator, notifier notify.Notifier) *List[model.Contact] {
	return NewList(client, perms, notifier, Binding[model.Contact]{
		Module:     "contact",
		Label:      "Contact",
		Path:       api.Contacts(),
		DeletePath: api.Contact,
		ID:         func(c model.Contact) string { return c.ID },
		SearchText: func(c model.Contact) string {
			return strings.Join([]string{c.Name, c.Email, c.Subject, c.Message}, " ")
		},
		DeletePolicy: DeleteOptimistic,
		FetchFailure: FailNotify,
	})
}

func Blogs(client *api.Client, perms *permission.Evaluator, notifier notify.Notifier) *List[model.Blog] {
	return NewList(client, perms, notifier, Binding[model.Blog]{
		Module:     "blog",
		Label:      "Blog",
		Path:       api.Blogs(),
		DeletePath: api.Blog,
		ID:         func(b model.Blog) string { return b.ID },
		SearchText: func(b model.Blog) string {
			parts := []string{b.Category}
			for _, item := range b.Items {
				parts = append(parts, item.Title, item.Content)
			}
			return strings.Join(parts, " ")
		},
		DeletePolicy: DeletePessimistic,
		FetchFailure: FailLog,
	})
}
