package pages

import (
	"context"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/guard"
	"go.uber.org/zap"
)

// ConnectionsPage lists connection requests and accepted connections. Any
// logged-in role can use it; there is no role gate here, only a login gate.
type ConnectionsPage struct {
	api    *api.Client
	store  credstore.Store
	logger *zap.Logger

	Connections []api.Connection
	Err         string
}

func NewConnectionsPage(client *api.Client, store credstore.Store, logger *zap.Logger) *ConnectionsPage {
	return &ConnectionsPage{api: client, store: store, logger: logger}
}

func (p *ConnectionsPage) Enter() (redirect string, ok bool) {
	if p.store.Load().User == nil {
		return guard.LoginRoute, false
	}
	return "", true
}

func (p *ConnectionsPage) Load(ctx context.Context) {
	p.Err = ""
	conns, err := p.api.Connections(ctx)
	if err != nil {
		p.Err = banner(err)
		return
	}
	p.Connections = conns
}

func (p *ConnectionsPage) Request(ctx context.Context, userID string) bool {
	p.Err = ""
	conn, err := p.api.RequestConnection(ctx, userID)
	if err != nil {
		p.Err = banner(err)
		return false
	}
	p.Connections = append(p.Connections, *conn)
	return true
}

func (p *ConnectionsPage) Accept(ctx context.Context, id string) bool {
	p.Err = ""
	if err := p.api.AcceptConnection(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}
	for i := range p.Connections {
		if p.Connections[i].ID == id {
			p.Connections[i].Status = api.ConnectionAccepted
		}
	}
	return true
}

func (p *ConnectionsPage) Reject(ctx context.Context, id string) bool {
	p.Err = ""
	if err := p.api.RejectConnection(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}
	p.drop(id)
	return true
}

func (p *ConnectionsPage) Remove(ctx context.Context, id string) bool {
	p.Err = ""
	if err := p.api.RemoveConnection(ctx, id); err != nil {
		p.Err = banner(err)
		return false
	}
	p.drop(id)
	return true
}

func (p *ConnectionsPage) drop(id string) {
	kept := p.Connections[:0]
	for _, c := range p.Connections {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	p.Connections = kept
}
