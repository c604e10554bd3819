package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/go-resty/resty/v2"

	"go-travel-agency/internal/config"
	"go-travel-agency/internal/session"
)

// Substrings in a server error message that mean the session is gone.
var expirySignatures = []string{"jwt expired", "TokenExpiredError"}

// Error is a non-2xx answer from the API, carrying the server-provided
// message when the body had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Message returns the server-provided message from err, or fallback when
// there is none.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// FormField is one multipart part; Reader set means a file part.
type FormField struct {
	Name        string
	Value       string
	FileName    string
	ContentType string
	Reader      io.Reader
}

// Client is the single shared request client. Every call carries the
// bearer token from the session store; every failed response is checked
// for the expired-session signatures, which clear the store and fire the
// logout hook before the error reaches the caller.
type Client struct {
	http *resty.Client
}

func New(cfg config.APIConfig, store session.Store, onLogout func()) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := store.Token(); token != "" {
			req.SetAuthToken(token)
		}
		return nil
	})

	httpClient.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.IsSuccess() {
			return nil
		}
		message := serverMessage(resp.Body())
		if message == "" {
			message = resp.Status()
		}
		if isExpired(message) {
			store.Clear()
			if onLogout != nil {
				onLogout()
			}
		}
		return &Error{Status: resp.StatusCode(), Message: message}
	})

	return &Client{http: httpClient}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return err
	}
	return decodeInto(resp.Body(), out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return err
	}
	return decodeInto(resp.Body(), out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Put(path)
	if err != nil {
		return err
	}
	return decodeInto(resp.Body(), out)
}

// PostRaw returns the undecoded response body, for callers that need
// more of the envelope than "data" (the login flow wants the token too).
func (c *Client) PostRaw(ctx context.Context, path string, body interface{}) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.http.R().SetContext(ctx).Delete(path)
	return err
}

// PostForm submits ordered multipart fields, file parts included.
func (c *Client) PostForm(ctx context.Context, path string, fields []FormField, out interface{}) error {
	resp, err := c.formRequest(ctx, fields).Post(path)
	if err != nil {
		return err
	}
	return decodeInto(resp.Body(), out)
}

// PutForm is PostForm over PUT, for multipart updates.
func (c *Client) PutForm(ctx context.Context, path string, fields []FormField, out interface{}) error {
	resp, err := c.formRequest(ctx, fields).Put(path)
	if err != nil {
		return err
	}
	return decodeInto(resp.Body(), out)
}

func (c *Client) formRequest(ctx context.Context, fields []FormField) *resty.Request {
	req := c.http.R().SetContext(ctx)
	parts := make([]*resty.MultipartField, 0, len(fields))
	for _, f := range fields {
		part := &resty.MultipartField{Param: f.Name}
		if f.Reader != nil {
			part.FileName = f.FileName
			part.ContentType = f.ContentType
			part.Reader = f.Reader
		} else {
			part.Reader = strings.NewReader(f.Value)
		}
		parts = append(parts, part)
	}
	return req.SetMultipartFields(parts...)
}

// serverMessage pulls the error text out of a response body, preferring
// the "error" property over "message".
func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

func isExpired(message string) bool {
	for _, sig := range expirySignatures {
		if strings.Contains(message, sig) {
			return true
		}
	}
	return false
}
