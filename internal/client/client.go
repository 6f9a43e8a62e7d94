// Package client is the API-facing half of the presentation layer: a
// cookie-jar HTTP client over the task board API plus the route guard.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"taskboard/internal/model"
)

// ErrUnreachable wraps transport-level failures so callers can tell a
// dead network apart from a server that said no.
var ErrUnreachable = fmt.Errorf("server unreachable")

// APIError is an application-level rejection carrying the server's
// status code and message body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// User mirrors the server's user response.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Avatar   string `json:"avatar"`
}

// Task mirrors the server's task response.
type Task struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      model.Status    `json:"status"`
	Priority    *model.Priority `json:"priority,omitempty"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
	UserID      string          `json:"user_id"`
}

// TaskInput is the full task payload sent on create and edit.
type TaskInput struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      model.Status    `json:"status"`
	Priority    *model.Priority `json:"priority,omitempty"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client against the API base URL. The cookie jar holds
// the session cookie between calls.
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) SignUp(ctx context.Context, fullname, email, password string) (*User, error) {
	body := map[string]string{"fullname": fullname, "email": email, "password": password}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GoogleSignIn posts externally verified profile claims; the server
// creates the account on first sight.
func (c *Client) GoogleSignIn(ctx context.Context, email, fullname, photo string) (*User, error) {
	body := map[string]string{"email": email, "fullname": fullname, "photo": photo}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/google", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil)
}

func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth/get-user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateTask(ctx context.Context, input TaskInput) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/api/task/create", input, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) EditTask(ctx context.Context, id string, input TaskInput) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPut, "/api/task/edit/"+id, input, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/task/delete/"+id, nil, nil)
}

func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, "/api/task/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) TasksByStatus(ctx context.Context, status model.Status) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/task/status/"+string(status), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) AllTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/task/all", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
