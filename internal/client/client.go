// Package client is a typed HTTP client for the task tracker API.
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

	"github.com/aidar/task-tracker/internal/domain"
)

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: %s (%d): %s", e.Code, e.Status, e.Message)
}

// IsCode reports whether err is an *APIError carrying code.
func IsCode(err error, code domain.ErrorCode) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == string(code)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(cl *Client) {
		cl.token = strings.TrimSpace(token)
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")

	cl := &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(cl)
	}
	return cl, nil
}

// SetToken replaces the bearer token, typically after Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// Login exchanges a user ID for a JWT and stores it on the client.
func (c *Client) Login(ctx context.Context, userID string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{"user_id": userID}, &out); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

func (c *Client) CreateUser(ctx context.Context, username, email string) (*domain.User, error) {
	var out struct {
		User *domain.User `json:"user"`
	}
	body := map[string]string{"username": username, "email": email}
	if err := c.do(ctx, http.MethodPost, "/users/create", body, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

// GetUser fetches a user; an empty userID means the caller.
func (c *Client) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var out struct {
		User *domain.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, withQuery("/users/get", "user_id", userID), nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) GetUserTasks(ctx context.Context, userID string) ([]*domain.TaskShort, error) {
	var out struct {
		Tasks []*domain.TaskShort `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, withQuery("/users/getTasks", "user_id", userID), nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *Client) GetUserProjects(ctx context.Context, userID string) ([]*domain.ProjectShort, error) {
	var out struct {
		Projects []*domain.ProjectShort `json:"projects"`
	}
	if err := c.do(ctx, http.MethodGet, withQuery("/users/getProjects", "user_id", userID), nil, &out); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

func (c *Client) CreateProject(ctx context.Context, name string) (*domain.Project, error) {
	return c.project(ctx, http.MethodPost, "/projects/create", map[string]string{"name": name})
}

func (c *Client) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	return c.project(ctx, http.MethodGet, withQuery("/projects/get", "project_id", projectID), nil)
}

func (c *Client) AddMember(ctx context.Context, projectID, userID string) (*domain.Project, error) {
	body := map[string]string{"project_id": projectID, "user_id": userID}
	return c.project(ctx, http.MethodPost, "/projects/addMember", body)
}

// ListProjectTasks lists project tasks; an empty status returns all of them.
func (c *Client) ListProjectTasks(ctx context.Context, projectID, status string) ([]*domain.TaskShort, error) {
	q := url.Values{}
	q.Set("project_id", projectID)
	if status != "" {
		q.Set("status", status)
	}

	var out struct {
		Tasks []*domain.TaskShort `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/projects/getTasks?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, projectID, title, description string) (*domain.Task, error) {
	body := map[string]string{"project_id": projectID, "title": title, "description": description}
	return c.task(ctx, http.MethodPost, "/tasks/create", body)
}

func (c *Client) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	return c.task(ctx, http.MethodGet, withQuery("/tasks/get", "task_id", taskID), nil)
}

func (c *Client) ChangeStatus(ctx context.Context, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	body := map[string]string{"task_id": taskID, "status": string(status)}
	return c.task(ctx, http.MethodPost, "/tasks/changeStatus", body)
}

// Assign sets the task assignee; an empty userID unassigns.
func (c *Client) Assign(ctx context.Context, taskID, userID string) (*domain.Task, error) {
	body := map[string]string{"task_id": taskID, "user_id": userID}
	return c.task(ctx, http.MethodPost, "/tasks/assign", body)
}

// AutoAssign picks a random member and returns the task and the chosen user ID.
func (c *Client) AutoAssign(ctx context.Context, taskID string) (*domain.Task, string, error) {
	var out struct {
		Task       *domain.Task `json:"task"`
		AssignedTo string       `json:"assigned_to"`
	}
	if err := c.do(ctx, http.MethodPost, "/tasks/autoAssign", map[string]string{"task_id": taskID}, &out); err != nil {
		return nil, "", err
	}
	return out.Task, out.AssignedTo, nil
}

func (c *Client) AddComment(ctx context.Context, taskID, content string) (*domain.Comment, error) {
	return c.comment(ctx, "/comments/add", map[string]string{"task_id": taskID, "content": content})
}

func (c *Client) EditComment(ctx context.Context, commentID, content string) (*domain.Comment, error) {
	return c.comment(ctx, "/comments/edit", map[string]string{"comment_id": commentID, "content": content})
}

func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var out domain.Stats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	var out domain.UserStats
	if err := c.do(ctx, http.MethodGet, withQuery("/stats/user", "user_id", userID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) project(ctx context.Context, method, path string, body any) (*domain.Project, error) {
	var out struct {
		Project *domain.Project `json:"project"`
	}
	if err := c.do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return out.Project, nil
}

func (c *Client) task(ctx context.Context, method, path string, body any) (*domain.Task, error) {
	var out struct {
		Task *domain.Task `json:"task"`
	}
	if err := c.do(ctx, method, path, body, &out); err != nil {
		return nil, err
	}
	return out.Task, nil
}

func (c *Client) comment(ctx context.Context, path string, body any) (*domain.Comment, error) {
	var out struct {
		Comment *domain.Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return out.Comment, nil
}

func withQuery(path, key, value string) string {
	if value == "" {
		return path
	}
	return path + "?" + url.Values{key: []string{value}}.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("http %s %s: decode response: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		apiErr.Code = payload.Error.Code
		apiErr.Message = payload.Error.Message
	}
	return apiErr
}
