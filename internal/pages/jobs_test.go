package pages

import (
	"context"
	"testing"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJobsPage(t *testing.T) {
	t.Run("lists seeded jobs without logging in", func(t *testing.T) {
		client, _ := newBackend(t)
		page := NewJobsPage(client, zap.NewNop())

		page.Load(context.Background(), api.JobSearch{})
		require.Empty(t, page.Err)
		assert.Len(t, page.Jobs, 2)
	})

	t.Run("query filters by title and description", func(t *testing.T) {
		client, _ := newBackend(t)
		page := NewJobsPage(client, zap.NewNop())

		page.Load(context.Background(), api.JobSearch{Query: "go engineer"})
		require.Empty(t, page.Err)
		require.Len(t, page.Jobs, 1)
		assert.Equal(t, "Senior Go Engineer", page.Jobs[0].Title)

		page.Load(context.Background(), api.JobSearch{Location: "remote"})
		require.Empty(t, page.Err)
		require.Len(t, page.Jobs, 1)
		assert.Equal(t, "Frontend Developer", page.Jobs[0].Title)
	})

	t.Run("show unknown id is a banner, not a panic", func(t *testing.T) {
		client, _ := newBackend(t)
		page := NewJobsPage(client, zap.NewNop())

		page.Show(context.Background(), "no-such-job")
		assert.Equal(t, "job not found", page.Err)
		assert.Nil(t, page.Selected)
	})
}

func TestMyJobsPage(t *testing.T) {
	t.Run("seeker cannot enter", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedSeekerEmail)

		page := NewMyJobsPage(client, store, zap.NewNop())
		redirect, ok := page.Enter()
		assert.False(t, ok)
		assert.Equal(t, "/", redirect)
	})

	t.Run("company manages its postings", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedCompanyEmail)

		page := NewMyJobsPage(client, store, zap.NewNop())
		_, ok := page.Enter()
		require.True(t, ok)

		page.Load(context.Background())
		require.Empty(t, page.Err)
		before := len(page.Jobs)

		created := page.Create(context.Background(), api.JobForm{
			Title:       "Platform Engineer",
			Description: "Keep the robots' cloud running.",
			Location:    "Istanbul",
			TechStack:   []string{"Go", "Kubernetes"},
		})
		require.True(t, created, page.Err)
		require.Len(t, page.Jobs, before+1)
		newID := page.Jobs[before].ID

		updated := page.Update(context.Background(), newID, api.JobForm{
			Title:       "Senior Platform Engineer",
			Description: "Keep the robots' cloud running.",
			Location:    "Istanbul",
		})
		require.True(t, updated, page.Err)

		t.Run("delete without confirmation is refused locally", func(t *testing.T) {
			assert.False(t, page.Delete(context.Background(), newID, false))
			assert.NotEmpty(t, page.Err)
			assert.Len(t, page.Jobs, before+1, "nothing was sent")
		})

		require.True(t, page.Delete(context.Background(), newID, true), page.Err)
		assert.Len(t, page.Jobs, before)
	})

	t.Run("create with a too-short title fails locally", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedCompanyEmail)

		page := NewMyJobsPage(client, store, zap.NewNop())
		ok := page.Create(context.Background(), api.JobForm{Title: "x", Description: "too short", Location: "here"})
		assert.False(t, ok)
		assert.NotEmpty(t, page.FieldErrors)
	})
}
