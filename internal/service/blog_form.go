package service

import (
	"context"
	"fmt"
	"strconv"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
)

// BlogFormValues is the serializable blog state. Image binaries ride in
// Attachments, owned by the form and bound to items by index; the field
// naming convention is applied only when the multipart body is built.
type BlogFormValues struct {
	Category    string           `validate:"required,oneof=Main Content"`
	IsPublished bool
	PublishedAt string // YYYY-MM-DD, optional
	Items       []BlogItemValues `validate:"required,min=1,dive"`
	Attachments []model.Attachment
}

type BlogItemValues struct {
	Title       string `validate:"required"`
	Link        string
	Content     string `validate:"required"`
	Subcontents []string
}

type BlogForm struct {
	submitGuard
	client   *api.Client
	notifier notify.Notifier
	editing  *model.Blog
}

func NewBlogForm(client *api.Client, notifier notify.Notifier, editing *model.Blog) *BlogForm {
	return &BlogForm{client: client, notifier: notifier, editing: editing}
}

// Values initializes from the editing record. Stored image metadata is
// preview-only; attachments always start empty.
func (f *BlogForm) Values() BlogFormValues {
	if f.editing == nil {
		return BlogFormValues{Items: []BlogItemValues{{Subcontents: []string{""}}}}
	}
	items := make([]BlogItemValues, len(f.editing.Items))
	for i, item := range f.editing.Items {
		subcontents := item.Subcontents
		if len(subcontents) == 0 {
			subcontents = []string{""}
		}
		items[i] = BlogItemValues{
			Title:       item.Title,
			Link:        item.Link,
			Content:     item.Content,
			Subcontents: subcontents,
		}
	}
	return BlogFormValues{
		Category:    f.editing.Category,
		IsPublished: f.editing.IsPublished,
		PublishedAt: f.editing.PublishedAt,
		Items:       items,
	}
}

func (f *BlogForm) Submit(ctx context.Context, values BlogFormValues) (*model.Blog, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	if err := validate(&values); err != nil {
		return nil, err
	}

	fields := buildBlogFields(values)

	var saved model.Blog
	var err error
	if f.editing != nil {
		err = f.client.PutForm(ctx, api.Blog(f.editing.ID), fields, &saved)
	} else {
		err = f.client.PostForm(ctx, api.Blogs(), fields, &saved)
	}
	if err != nil {
		f.notifier.Error(api.Message(err, "Failed to save blog. Please try again."))
		return nil, err
	}
	f.notifier.Success("Blog saved successfully!")
	return &saved, nil
}

// buildBlogFields lays the form out as bracketed multipart keys:
// items[i][title], items[i][subcontents][j], items[i][images][].
func buildBlogFields(values BlogFormValues) []api.FormField {
	fields := []api.FormField{
		{Name: "category", Value: values.Category},
		{Name: "is_published", Value: strconv.FormatBool(values.IsPublished)},
	}
	if values.PublishedAt != "" {
		fields = append(fields, api.FormField{Name: "published_at", Value: values.PublishedAt})
	}

	for idx, item := range values.Items {
		prefix := fmt.Sprintf("items[%d]", idx)
		fields = append(fields,
			api.FormField{Name: prefix + "[title]", Value: item.Title},
			api.FormField{Name: prefix + "[link]", Value: item.Link},
			api.FormField{Name: prefix + "[content]", Value: item.Content},
		)
		for sIdx, sub := range item.Subcontents {
			fields = append(fields, api.FormField{
				Name:  fmt.Sprintf("%s[subcontents][%d]", prefix, sIdx),
				Value: sub,
			})
		}
		for _, att := range values.Attachments {
			if att.Item != idx {
				continue
			}
			fields = append(fields, api.FormField{
				Name:        prefix + "[images][]",
				FileName:    att.Name,
				ContentType: att.ContentType,
				Reader:      att.Content,
			})
		}
	}
	return fields
}
