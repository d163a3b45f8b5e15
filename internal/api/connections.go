package api

import (
	"context"
	"net/http"
)

func (c *Client) Connections(ctx context.Context) ([]Connection, error) {
	var out []Connection
	if err := c.do(ctx, http.MethodGet, "/connections", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RequestConnection(ctx context.Context, userID string) (*Connection, error) {
	var out Connection
	if err := c.do(ctx, http.MethodPost, "/connections/"+userID, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AcceptConnection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/connections/"+id+"/accept", nil, nil, nil)
}

func (c *Client) RejectConnection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/connections/"+id+"/reject", nil, nil, nil)
}

func (c *Client) RemoveConnection(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/connections/"+id, nil, nil, nil)
}
