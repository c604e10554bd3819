package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/auth"
	"go-travel-agency/internal/config"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
	"go-travel-agency/internal/pricing"
	"go-travel-agency/internal/session"
	"go-travel-agency/internal/view"
)

func main() {
	email := flag.String("email", "admin@example.com", "login email")
	password := flag.String("password", "admin123", "login password")
	entity := flag.String("entity", "contacts", "entity to list: users|products|orders|reviews|contacts|blogs")
	search := flag.String("search", "", "filter the list")
	page := flag.Int("page", 1, "page to show")
	deleteID := flag.String("delete", "", "delete a record by id before listing")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	store := session.Open(cfg.Session.TokenFile)
	client := api.New(cfg.API, store, func() {
		log.Println("Session expired, please log in again")
	})
	notifier := notify.NewLog()
	ctx := context.Background()

	identity, perms, err := auth.Login(ctx, client, store, *email, *password)
	if err != nil {
		log.Fatalf("Login failed: %s", api.Message(err, err.Error()))
	}
	log.Printf("Signed in as %s (%s)", identity.Name, identity.Role)

	switch *entity {
	case "users":
		run(ctx, view.Users(client, perms, notifier), *search, *page, *deleteID, func(w *tabwriter.Writer, u model.User) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.Status)
		})
	case "products":
		run(ctx, view.Products(client, perms, notifier), *search, *page, *deleteID, func(w *tabwriter.Writer, p model.Product) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.ProductName, p.Category, pricing.Display(p.FinalPrice), p.StockQuantity)
		})
	case "orders":
		run(ctx, view.Orders(client, perms, notifier), *search, *page, *deleteID, func(w *tabwriter.Writer, o model.Order) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.Name, o.Status, pricing.Display(o.Subtotal), pricing.Display(o.Total))
		})
	case "reviews":
		run(ctx, view.Reviews(client, perms, notifier), *search, *page, *deleteID, func(w *tabwriter.Writer, r model.Review) {
			fmt.Fprintf(w, "%s\t%s\t%s/5\t%s\n", r.ID, r.Name, r.Rating, r.Comment)
		})
	case "contacts":
		run(ctx, view.Contacts(client, perms, notifier), *search, *page, *deleteID, func(w *tabwriter.Writer, c model.Contact) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Subject)
		})
	case "blogs":
		run(ctx, view.Blogs(client, perms, notifier), *search, *page, *deleteID, func(w *tabwriter.Writer, b model.Blog) {
			published := "draft"
			if b.IsPublished {
				published = "published"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d items\n", b.ID, b.Category, published, len(b.Items))
		})
	default:
		log.Fatalf("Unknown entity %q", *entity)
	}
}

func run[T any](ctx context.Context, list *view.List[T], search string, page int, deleteID string, printRow func(*tabwriter.Writer, T)) {
	list.Fetch(ctx)
	if list.State() != view.StateReady {
		os.Exit(1)
	}

	if deleteID != "" {
		if !list.CanDelete() {
			log.Fatal("You do not have permission to delete here")
		}
		list.Delete(ctx, deleteID)
	}

	list.SetSearch(search)
	for list.Page() < page && list.CanNext() {
		list.Next()
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, record := range list.Visible() {
		printRow(w, record)
	}
	w.Flush()
	fmt.Printf("page %d/%d, %d record(s) total\n", list.Page(), list.PageCount(), len(list.Filtered()))
}
