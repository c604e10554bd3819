package service

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
)

func TestBuildBlogFieldNaming(t *testing.T) {
	values := BlogFormValues{
		Category:    model.BlogCategoryMain,
		IsPublished: true,
		PublishedAt: "2026-01-15",
		Items: []BlogItemValues{
			{Title: "First", Link: "https://a", Content: "c1", Subcontents: []string{"s0", "s1"}},
			{Title: "Second", Content: "c2", Subcontents: []string{"s0"}},
		},
		Attachments: []model.Attachment{
			{Item: 0, Name: "a.jpg", ContentType: "image/jpeg", Content: strings.NewReader("jpegdata")},
			{Item: 1, Name: "b.png", ContentType: "image/png", Content: strings.NewReader("pngdata")},
			{Item: 0, Name: "c.jpg", ContentType: "image/jpeg", Content: strings.NewReader("more")},
		},
	}

	fields := buildBlogFields(values)

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"category",
		"is_published",
		"published_at",
		"items[0][title]",
		"items[0][link]",
		"items[0][content]",
		"items[0][subcontents][0]",
		"items[0][subcontents][1]",
		"items[0][images][]",
		"items[0][images][]",
		"items[1][title]",
		"items[1][link]",
		"items[1][content]",
		"items[1][subcontents][0]",
		"items[1][images][]",
	}, names)
}

func TestBlogSubmitMultipartBody(t *testing.T) {
	var parts map[string][]string
	var fileNames []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		require.NoError(t, err)
		require.Equal(t, "multipart/form-data", mediaType)

		parts = map[string][]string{}
		reader := multipart.NewReader(r.Body, params["boundary"])
		for {
			part, err := reader.NextPart()
			if err != nil {
				break
			}
			if part.FileName() != "" {
				fileNames = append(fileNames, part.FileName())
				parts[part.FormName()] = append(parts[part.FormName()], part.FileName())
				continue
			}
			body, err := io.ReadAll(part)
			require.NoError(t, err)
			parts[part.FormName()] = append(parts[part.FormName()], string(body))
		}
		w.Write([]byte(`{"message":"ok","data":{"id":"b1","category":"Main"}}`))
	})

	client := newClient(t, handler)
	rec := &notify.Recorder{}
	form := NewBlogForm(client, rec, nil)

	values := BlogFormValues{
		Category: model.BlogCategoryMain,
		Items: []BlogItemValues{
			{Title: "Trip notes", Content: "Full story", Subcontents: []string{"part one"}},
		},
		Attachments: []model.Attachment{
			{Item: 0, Name: "cover.jpg", ContentType: "image/jpeg", Content: strings.NewReader("binary")},
		},
	}

	saved, err := form.Submit(context.Background(), values)
	require.NoError(t, err)
	assert.Equal(t, "b1", saved.ID)

	assert.Equal(t, []string{"Main"}, parts["category"])
	assert.Equal(t, []string{"false"}, parts["is_published"])
	assert.Equal(t, []string{"Trip notes"}, parts["items[0][title]"])
	assert.Equal(t, []string{"part one"}, parts["items[0][subcontents][0]"])
	assert.Equal(t, []string{"cover.jpg"}, parts["items[0][images][]"])
	assert.Equal(t, []string{"cover.jpg"}, fileNames)
	require.Len(t, rec.Successes, 1)
}

func TestBlogValidation(t *testing.T) {
	form := NewBlogForm(nil, &notify.Recorder{}, nil)

	_, err := form.Submit(context.Background(), BlogFormValues{Category: "Weird"})
	require.Error(t, err)

	_, err = form.Submit(context.Background(), BlogFormValues{
		Category: model.BlogCategoryContent,
		Items:    []BlogItemValues{{Title: "t"}}, // missing content
	})
	require.Error(t, err)
}

func TestBlogValuesFromEditingRecord(t *testing.T) {
	editing := &model.Blog{
		ID:          "b1",
		Category:    model.BlogCategoryContent,
		IsPublished: true,
		Items: []model.BlogItem{
			{Title: "T", Content: "C", Images: []model.ImageMeta{{Name: "old.jpg"}}},
		},
	}
	form := NewBlogForm(nil, &notify.Recorder{}, editing)
	values := form.Values()

	require.Len(t, values.Items, 1)
	assert.Equal(t, "T", values.Items[0].Title)
	assert.Equal(t, []string{""}, values.Items[0].Subcontents, "empty subcontents seeded with one blank entry")
	assert.Empty(t, values.Attachments, "stored metadata never becomes an attachment")
}
