package mockapi

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
)

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.state.mu.Lock()
	items := append([]api.Notification(nil), s.state.notifications[u.ID]...)
	s.state.mu.Unlock()

	sort.Slice(items, func(i, k int) bool { return items[i].CreatedAt.After(items[k].CreatedAt) })
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) handleUnreadCount(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.state.mu.Lock()
	count := 0
	for _, n := range s.state.notifications[u.ID] {
		if !n.Read {
			count++
		}
	}
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusOK, api.UnreadCountResponse{Count: count})
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	items := s.state.notifications[u.ID]
	for i := range items {
		if items[i].ID == id {
			items[i].Read = true
			httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "marked read"})
			return
		}
	}
	notFound(w, "notification")
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.state.mu.Lock()
	items := s.state.notifications[u.ID]
	for i := range items {
		items[i].Read = true
	}
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "all marked read"})
}

func (s *Server) handleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	items := s.state.notifications[u.ID]
	for i := range items {
		if items[i].ID == id {
			s.state.notifications[u.ID] = append(items[:i], items[i+1:]...)
			httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "notification deleted"})
			return
		}
	}
	notFound(w, "notification")
}
