package mockapi

import (
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
)

func (s *Server) handleConnections(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.state.mu.Lock()
	conns := make([]api.Connection, 0)
	for _, c := range s.state.connections {
		if c.RequesterID == u.ID || c.AddresseeID == u.ID {
			conns = append(conns, *c)
		}
	}
	s.state.mu.Unlock()

	sort.Slice(conns, func(i, k int) bool { return conns[i].CreatedAt.After(conns[k].CreatedAt) })
	httpx.WriteJSON(w, http.StatusOK, conns)
}

func (s *Server) handleRequestConnection(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userID")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	target, ok := s.state.users[targetID]
	if !ok {
		notFound(w, "user")
		return
	}
	if targetID == u.ID {
		httpx.WriteError(w, http.StatusUnprocessableEntity, httpx.ErrorBody{
			Message:     "you cannot connect with yourself",
			MessageCode: httpx.CodeValidationFailed,
		})
		return
	}
	for _, c := range s.state.connections {
		if (c.RequesterID == u.ID && c.AddresseeID == targetID) ||
			(c.RequesterID == targetID && c.AddresseeID == u.ID) {
			httpx.WriteError(w, http.StatusConflict, httpx.ErrorBody{
				Message:     "connection already exists",
				MessageCode: httpx.CodeConflict,
			})
			return
		}
	}

	conn := &api.Connection{
		ID:            uuid.NewString(),
		RequesterID:   u.ID,
		RequesterName: u.Name,
		AddresseeID:   target.ID,
		AddresseeName: target.Name,
		Status:        api.ConnectionPending,
		CreatedAt:     time.Now().UTC(),
	}
	s.state.connections[conn.ID] = conn
	s.state.notify(target.ID, u.Name+" wants to connect with you", uuid.NewString())

	httpx.WriteJSON(w, http.StatusCreated, conn)
}

func (s *Server) handleAcceptConnection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	conn, ok := s.state.connections[id]
	if !ok || conn.AddresseeID != u.ID {
		notFound(w, "connection request")
		return
	}

	conn.Status = api.ConnectionAccepted
	s.state.notify(conn.RequesterID, u.Name+" accepted your connection request", uuid.NewString())

	httpx.WriteJSON(w, http.StatusOK, conn)
}

func (s *Server) handleRejectConnection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	conn, ok := s.state.connections[id]
	if !ok || conn.AddresseeID != u.ID {
		notFound(w, "connection request")
		return
	}

	delete(s.state.connections, id)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "connection request rejected"})
}

func (s *Server) handleRemoveConnection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	conn, ok := s.state.connections[id]
	if !ok || (conn.RequesterID != u.ID && conn.AddresseeID != u.ID) {
		notFound(w, "connection")
		return
	}

	delete(s.state.connections, id)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "connection removed"})
}
