package api

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListJobs(ctx context.Context, search JobSearch) ([]Job, error) {
	query := url.Values{}
	if search.Query != "" {
		query.Set("q", search.Query)
	}
	if search.Location != "" {
		query.Set("location", search.Location)
	}

	var out []Job
	if err := c.do(ctx, http.MethodGet, "/jobs", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Job(ctx context.Context, id string) (*Job, error) {
	var out Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateJob(ctx context.Context, form JobForm) (*Job, error) {
	var out Job
	if err := c.do(ctx, http.MethodPost, "/jobs", nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateJob(ctx context.Context, id string, form JobForm) (*Job, error) {
	var out Job
	if err := c.do(ctx, http.MethodPut, "/jobs/"+id, nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/jobs/"+id, nil, nil, nil)
}

func (c *Client) MyJobs(ctx context.Context) ([]Job, error) {
	var out []Job
	if err := c.do(ctx, http.MethodGet, "/jobs/company/my-jobs", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recommendations fetches the AI-match list. The scoring happens entirely
// server side; we only render score and breakdown.
func (c *Client) Recommendations(ctx context.Context) ([]Recommendation, error) {
	var out []Recommendation
	if err := c.do(ctx, http.MethodGet, "/jobs/recommendations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
