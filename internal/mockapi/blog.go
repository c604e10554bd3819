package mockapi

import (
	"mime/multipart"
	"regexp"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"go-travel-agency/internal/model"
)

// Blog submissions arrive as multipart bodies with bracketed keys:
// items[i][title], items[i][subcontents][j], items[i][images][].

var (
	itemFieldPattern  = regexp.MustCompile(`^items\[(\d+)\]\[(title|link|content)\]$`)
	subcontentPattern = regexp.MustCompile(`^items\[(\d+)\]\[subcontents\]\[(\d+)\]$`)
	imagesPattern     = regexp.MustCompile(`^items\[(\d+)\]\[images\]\[\]$`)
)

func (s *Server) listBlogs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": s.store.Blogs.List()})
}

func (s *Server) createBlog(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Expected multipart form data"})
	}
	blog := parseBlogForm(form)
	if blog.Category == "" || len(blog.Items) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Category and at least one item are required"})
	}
	blog.ID = uuid.NewString()
	s.store.Blogs.Put(blog.ID, blog)
	return c.Status(201).JSON(fiber.Map{"message": "Blog saved successfully!", "data": blog})
}

func (s *Server) updateBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, ok := s.store.Blogs.Get(id); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Blog not found"})
	}
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Expected multipart form data"})
	}
	blog := parseBlogForm(form)
	blog.ID = id
	s.store.Blogs.Put(id, blog)
	return c.JSON(fiber.Map{"message": "Blog saved successfully!", "data": blog})
}

func (s *Server) deleteBlog(c *fiber.Ctx) error {
	if !s.store.Blogs.Delete(c.Params("id")) {
		return c.Status(404).JSON(fiber.Map{"error": "Blog not found"})
	}
	return c.JSON(fiber.Map{"message": "Blog deleted successfully"})
}

func parseBlogForm(form *multipart.Form) model.Blog {
	blog := model.Blog{}
	if v := formValue(form, "category"); v != "" {
		blog.Category = v
	}
	blog.IsPublished = formValue(form, "is_published") == "true"
	blog.PublishedAt = formValue(form, "published_at")

	items := map[int]*model.BlogItem{}
	subcontents := map[int]map[int]string{}

	itemAt := func(idx int) *model.BlogItem {
		if items[idx] == nil {
			items[idx] = &model.BlogItem{}
		}
		return items[idx]
	}

	for key, values := range form.Value {
		if len(values) == 0 {
			continue
		}
		if m := itemFieldPattern.FindStringSubmatch(key); m != nil {
			idx, _ := strconv.Atoi(m[1])
			item := itemAt(idx)
			switch m[2] {
			case "title":
				item.Title = values[0]
			case "link":
				item.Link = values[0]
			case "content":
				item.Content = values[0]
			}
			continue
		}
		if m := subcontentPattern.FindStringSubmatch(key); m != nil {
			idx, _ := strconv.Atoi(m[1])
			sIdx, _ := strconv.Atoi(m[2])
			if subcontents[idx] == nil {
				subcontents[idx] = map[int]string{}
			}
			subcontents[idx][sIdx] = values[0]
		}
	}

	for key, files := range form.File {
		m := imagesPattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		idx, _ := strconv.Atoi(m[1])
		item := itemAt(idx)
		for _, fh := range files {
			item.Images = append(item.Images, model.ImageMeta{
				Name: fh.Filename,
				Size: fh.Size,
				Type: fh.Header.Get("Content-Type"),
			})
		}
	}

	indexes := make([]int, 0, len(items))
	for idx := range items {
		indexes = append(indexes, idx)
	}
	sort.Ints(indexes)

	for _, idx := range indexes {
		item := items[idx]
		if subs := subcontents[idx]; len(subs) > 0 {
			sIdxs := make([]int, 0, len(subs))
			for s := range subs {
				sIdxs = append(sIdxs, s)
			}
			sort.Ints(sIdxs)
			for _, s := range sIdxs {
				item.Subcontents = append(item.Subcontents, subs[s])
			}
		}
		blog.Items = append(blog.Items, *item)
	}
	return blog
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}
