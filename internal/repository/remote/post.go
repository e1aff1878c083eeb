package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/BloggingApp/post-manager/internal/model"
)

const POSTS_ENDPOINT = "/posts"

type postRepo struct {
	baseURL    string
	httpClient *http.Client
}

func newPostRepo(baseURL string, httpClient *http.Client) Post {
	return &postRepo{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (r *postRepo) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := r.do(ctx, "list", http.MethodGet, POSTS_ENDPOINT, nil, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) Create(ctx context.Context, fields model.FormFields) (*model.Post, error) {
	var post model.Post
	if err := r.do(ctx, "create", http.MethodPost, POSTS_ENDPOINT, fields, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Update(ctx context.Context, id int64, fields model.FormFields) (*model.Post, error) {
	var post model.Post
	if err := r.do(ctx, "update", http.MethodPut, postPath(id), fields, &post); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Delete(ctx context.Context, id int64) error {
	return r.do(ctx, "delete", http.MethodDelete, postPath(id), nil, nil)
}

func postPath(id int64) string {
	return POSTS_ENDPOINT + "/" + strconv.FormatInt(id, 10)
}

// do sends one request and decodes the JSON response into out when out is
// not nil. Every failure is reported as ErrNetwork.
func (r *postRepo) do(ctx context.Context, op string, method string, endpoint string, in interface{}, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		gatewayRequests.WithLabelValues(op, outcome).Inc()
		gatewayRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed to encode %s request: %s", ErrNetwork, op, err.Error())
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s request: %s", ErrNetwork, op, err.Error())
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to send %s request: %s", ErrNetwork, op, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read %s response body: %s", ErrNetwork, op, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s returned status %d", ErrNetwork, method, endpoint, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s response body: %s", ErrNetwork, op, err.Error())
	}

	return nil
}
