package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is a {message} reply from the kiosk API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("kiosk api: %s (status %d)", e.Message, e.Status)
}

// Session talks to the kiosk API on behalf of one Store. Every call
// dispatches a request action followed by its success or fail action.
type Session struct {
	BaseURL string
	Store   *Store
	HTTP    *http.Client
}

// NewSession expects baseURL to include the API prefix, e.g.
// "http://localhost:5000/api".
func NewSession(baseURL string, store *Store) *Session {
	return &Session{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Store:   store,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Session) LoadCategories(ctx context.Context) error {
	s.Store.Dispatch(CategoryListRequest{})
	var out []Category
	if err := s.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		s.Store.Dispatch(CategoryListFail{Err: err})
		return err
	}
	s.Store.Dispatch(CategoryListSuccess{Categories: out})
	return nil
}

// LoadProducts lists one category, or every product when category is empty.
func (s *Session) LoadProducts(ctx context.Context, category string) error {
	s.Store.Dispatch(ProductListRequest{})
	path := "/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out []Product
	if err := s.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		s.Store.Dispatch(ProductListFail{Err: err})
		return err
	}
	s.Store.Dispatch(ProductListSuccess{Products: out})
	return nil
}

type createdReply struct {
	CreatedOrder
	Message string `json:"message"`
}

// SubmitOrder sends the current order and, once the server has stored it,
// removes the submitted lines. Lines added while the request was in flight
// are kept. A {message} reply is a failure even with status 200.
func (s *Session) SubmitOrder(ctx context.Context) (CreatedOrder, error) {
	order := s.Store.State().Order
	s.Store.Dispatch(OrderCreateRequest{})

	var reply createdReply
	err := s.do(ctx, http.MethodPost, "/orders", order, &reply)
	if err == nil && reply.ID == "" {
		msg := reply.Message
		if msg == "" {
			msg = "empty order reply"
		}
		err = &APIError{Status: http.StatusOK, Message: msg}
	}
	if err != nil {
		s.Store.Dispatch(OrderCreateFail{Err: err})
		return CreatedOrder{}, err
	}

	s.Store.Dispatch(OrderCreateSuccess{Order: reply.CreatedOrder})
	s.Store.Dispatch(ClearSubmitted{Items: order.OrderItems})
	return reply.CreatedOrder, nil
}

func (s *Session) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := s.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if res.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: res.StatusCode, Message: http.StatusText(res.StatusCode)}
		var m struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &m) == nil && m.Message != "" {
			apiErr.Message = m.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// IsAPIError reports whether err came back from the API as a {message}.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
