package pages

import (
	"context"
	"sync"
	"time"

	"github.com/mehmetcc/oseek/internal/api"
	"go.uber.org/zap"
)

type NotificationsPage struct {
	api    *api.Client
	logger *zap.Logger

	Items []api.Notification
	Err   string
}

func NewNotificationsPage(client *api.Client, logger *zap.Logger) *NotificationsPage {
	return &NotificationsPage{api: client, logger: logger}
}

func (p *NotificationsPage) Load(ctx context.Context) {
	p.Err = ""
	items, err := p.api.Notifications(ctx)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Items = items
}

func (p *NotificationsPage) MarkRead(ctx context.Context, id string) bool {
	p.Err = ""
	if err := p.api.MarkNotificationRead(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}
	for i := range p.Items {
		if p.Items[i].ID == id {
			p.Items[i].Read = true
		}
	}
	return true
}

func (p *NotificationsPage) MarkAllRead(ctx context.Context) bool {
	p.Err = ""
	if err := p.api.MarkAllNotificationsRead(ctx); err != nil {
		p.Err = banner(err)
		return false
	}
	for i := range p.Items {
		p.Items[i].Read = true
	}
	return true
}

func (p *NotificationsPage) Delete(ctx context.Context, id string) bool {
	p.Err = ""
	if err := p.api.DeleteNotification(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}
	kept := p.Items[:0]
	for _, n := range p.Items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	p.Items = kept
	return true
}

// UnreadCounter is the one call the poller needs; *api.Client implements it.
type UnreadCounter interface {
	UnreadCount(ctx context.Context) (int, error)
}

// UnreadPoller periodically refreshes the unread-notification badge. It is
// explicitly stopped on page teardown and pauses while the app is not
// visible. Poll failures keep the last good count; nothing is retried out
// of band.
type UnreadPoller struct {
	counter  UnreadCounter
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	count   int
	visible bool

	stopOnce sync.Once
	stopped  chan struct{}
}

func NewUnreadPoller(counter UnreadCounter, interval time.Duration, logger *zap.Logger) *UnreadPoller {
	return &UnreadPoller{
		counter:  counter,
		interval: interval,
		logger:   logger,
		visible:  true,
		stopped:  make(chan struct{}),
	}
}

// Start launches the poll loop. It refreshes once immediately, then on every
// tick while visible, and exits on Stop or context cancellation.
func (p *UnreadPoller) Start(ctx context.Context) {
	go func() {
		p.refresh(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.stopped:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !p.Visible() {
					continue
				}
				p.refresh(ctx)
			}
		}
	}()
}

// Stop is idempotent.
func (p *UnreadPoller) Stop() {
	p.stopOnce.Do(func() { close(p.stopped) })
}

func (p *UnreadPoller) SetVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visible = visible
}

func (p *UnreadPoller) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

func (p *UnreadPoller) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

func (p *UnreadPoller) refresh(ctx context.Context) {
	count, err := p.counter.UnreadCount(ctx)
	if err != nil {
		p.logger.Debug("unread count poll failed", zap.Error(err))
		return
	}
	p.mu.Lock()
	p.count = count
	p.mu.Unlock()
}
