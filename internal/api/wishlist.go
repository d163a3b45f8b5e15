package api

import (
	"context"
	"net/http"
)

func (c *Client) Wishlist(ctx context.Context) ([]WishlistItem, error) {
	var out []WishlistItem
	if err := c.do(ctx, http.MethodGet, "/wishlist", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddToWishlist(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodPost, "/wishlist/"+jobID, nil, nil, nil)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/"+jobID, nil, nil, nil)
}

// WishlistJobStatus reports whether a single job is saved. Job-list pages
// fire one of these per visible job, concurrently.
func (c *Client) WishlistJobStatus(ctx context.Context, jobID string) (bool, error) {
	var out WishlistStatus
	if err := c.do(ctx, http.MethodGet, "/wishlist/status/"+jobID, nil, nil, &out); err != nil {
		return false, err
	}
	return out.Saved, nil
}
