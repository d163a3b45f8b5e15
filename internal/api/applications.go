package api

import (
	"context"
	"net/http"
)

func (c *Client) Apply(ctx context.Context, jobID string, req ApplyRequest) (*Application, error) {
	var out Application
	if err := c.do(ctx, http.MethodPost, "/applications/jobs/"+jobID, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyApplications(ctx context.Context) ([]Application, error) {
	var out []Application
	if err := c.do(ctx, http.MethodGet, "/applications/my", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) JobApplications(ctx context.Context, jobID string) ([]Application, error) {
	var out []Application
	if err := c.do(ctx, http.MethodGet, "/applications/jobs/"+jobID, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id string, req UpdateApplicationStatusRequest) (*Application, error) {
	var out Application
	if err := c.do(ctx, http.MethodPut, "/applications/"+id+"/status", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) WithdrawApplication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/applications/"+id, nil, nil, nil)
}

func (c *Client) ScheduleInterview(ctx context.Context, id string, req InterviewRequest) error {
	return c.do(ctx, http.MethodPost, "/applications/"+id+"/interview", nil, req, nil)
}

func (c *Client) SendApplicationEmail(ctx context.Context, id string, req ApplicationEmailRequest) error {
	return c.do(ctx, http.MethodPost, "/applications/"+id+"/email", nil, req, nil)
}
