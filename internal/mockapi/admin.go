package mockapi

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/httpx"
)

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	s.state.mu.Lock()
	users := make([]api.AdminUser, 0, len(s.state.users))
	for _, u := range s.state.users {
		users = append(users, api.AdminUser{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	s.state.mu.Unlock()

	sort.Slice(users, func(i, k int) bool { return users[i].CreatedAt.Before(users[k].CreatedAt) })
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (s *Server) handleUpdateRole(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateRoleRequest
	if !s.decode(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")
	admin := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	u, ok := s.state.users[id]
	if !ok {
		notFound(w, "user")
		return
	}
	if u.ID == admin.ID {
		httpx.WriteError(w, http.StatusUnprocessableEntity, httpx.ErrorBody{
			Message:     "you cannot change your own role",
			MessageCode: httpx.CodeValidationFailed,
		})
		return
	}

	u.Role = req.Role
	httpx.WriteJSON(w, http.StatusOK, api.AdminUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	})
}

func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	admin := currentUser(r)

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, ok := s.state.users[id]; !ok {
		notFound(w, "user")
		return
	}
	if id == admin.ID {
		httpx.WriteError(w, http.StatusUnprocessableEntity, httpx.ErrorBody{
			Message:     "you cannot delete your own account from the admin panel",
			MessageCode: httpx.CodeValidationFailed,
		})
		return
	}

	s.state.removeUser(id)
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
