package mockapi

import (
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
)

func (s *Server) handleWishlist(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r)

	s.state.mu.Lock()
	items := make([]api.WishlistItem, 0)
	for jobID, added := range s.state.wishlist[u.ID] {
		j, ok := s.state.jobs[jobID]
		if !ok {
			continue
		}
		items = append(items, api.WishlistItem{JobID: jobID, Job: *j, AddedAt: added})
	}
	s.state.mu.Unlock()

	sort.Slice(items, func(i, k int) bool { return items[i].AddedAt.After(items[k].AddedAt) })
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) handleWishlistStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	u := currentUser(r)

	s.state.mu.Lock()
	_, saved := s.state.wishlist[u.ID][jobID]
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusOK, api.WishlistStatus{Saved: saved})
}

func (s *Server) handleAddWishlist(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	u := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.jobs[jobID]; !ok {
		notFound(w, "job")
		return
	}
	if s.state.wishlist[u.ID] == nil {
		s.state.wishlist[u.ID] = make(map[string]time.Time)
	}
	s.state.wishlist[u.ID][jobID] = time.Now().UTC()

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": "job saved"})
}

func (s *Server) handleRemoveWishlist(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	u := currentUser(r)

	s.state.mu.Lock()
	delete(s.state.wishlist[u.ID], jobID)
	s.state.mu.Unlock()

	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "job removed"})
}
