package pages

import (
	"context"
	"sync"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/person"
	"go.uber.org/zap"
)

type WishlistPage struct {
	api    *api.Client
	store  credstore.Store
	logger *zap.Logger

	Items    []api.WishlistItem
	Statuses map[string]bool
	Err      string
}

func NewWishlistPage(client *api.Client, store credstore.Store, logger *zap.Logger) *WishlistPage {
	return &WishlistPage{
		api:      client,
		store:    store,
		logger:   logger,
		Statuses: make(map[string]bool),
	}
}

func (p *WishlistPage) Enter() (redirect string, ok bool) {
	return requireRole(p.store, person.RoleSeeker)
}

func (p *WishlistPage) Load(ctx context.Context) {
	p.Err = ""
	items, err := p.api.Wishlist(ctx)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Items = items
}

// LoadStatuses checks saved-state for every job id concurrently. The checks
// race independently and are reconciled by job id, so the final map is the
// same whatever order responses land in. Failed checks are simply absent.
func (p *WishlistPage) LoadStatuses(ctx context.Context, jobIDs []string) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	statuses := make(map[string]bool, len(jobIDs))

	for _, id := range jobIDs {
		wg.Add(1)
		go func(jobID string) {
			defer wg.Done()
			saved, err := p.api.WishlistJobStatus(ctx, jobID)
			if err != nil {
				p.logger.Debug("wishlist status check failed",
					zap.String("job_id", jobID),
					zap.Error(err),
				)
				return
			}
			mu.Lock()
			statuses[jobID] = saved
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	p.Statuses = statuses
}

// Toggle flips a job's saved state based on the last known status.
func (p *WishlistPage) Toggle(ctx context.Context, jobID string) bool {
	p.Err = ""

	var err error
	if p.Statuses[jobID] {
		err = p.api.RemoveFromWishlist(ctx, jobID)
	} else {
		err = p.api.AddToWishlist(ctx, jobID)
	}
	if err != nil {
		p.Err = banner(err)
		return false
	}

	p.Statuses[jobID] = !p.Statuses[jobID]
	return true
}

func (p *WishlistPage) Remove(ctx context.Context, jobID string) bool {
	p.Err = ""
	if err := p.api.RemoveFromWishlist(ctx, jobID); err != nil {
		p.Err = banner(err)
		return false
	}

	kept := p.Items[:0]
	for _, it := range p.Items {
		if it.JobID != jobID {
			kept = append(kept, it)
		}
	}
	p.Items = kept
	p.Statuses[jobID] = false
	return true
}
