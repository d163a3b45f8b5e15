package pages

import (
	"context"
	"testing"
	"time"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seededJobID(t *testing.T, client *api.Client, title string) string {
	t.Helper()
	jobs := NewJobsPage(client, zap.NewNop())
	jobs.Load(context.Background(), api.JobSearch{Query: title})
	require.Empty(t, jobs.Err)
	require.NotEmpty(t, jobs.Jobs)
	return jobs.Jobs[0].ID
}

func TestActivityPage(t *testing.T) {
	t.Run("apply, list, refuse duplicate", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedSeekerEmail)
		jobID := seededJobID(t, client, "go engineer")

		page := NewActivityPage(client, store, zap.NewNop())
		_, ok := page.Enter()
		require.True(t, ok)

		require.True(t, page.Apply(context.Background(), jobID, api.ApplyRequest{CoverLetter: "hi"}), page.Err)
		require.Len(t, page.Applications, 1)
		assert.Equal(t, api.ApplicationApplied, page.Applications[0].Status)

		ok = page.Apply(context.Background(), jobID, api.ApplyRequest{})
		assert.False(t, ok)
		assert.Equal(t, "you already applied to this job", page.Err, "server message shown verbatim")
	})

	t.Run("withdraw needs confirmation", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedSeekerEmail)
		jobID := seededJobID(t, client, "go engineer")

		page := NewActivityPage(client, store, zap.NewNop())
		require.True(t, page.Apply(context.Background(), jobID, api.ApplyRequest{}), page.Err)
		appID := page.Applications[0].ID

		assert.False(t, page.Withdraw(context.Background(), appID, false))
		assert.Equal(t, api.ApplicationApplied, page.Applications[0].Status)

		require.True(t, page.Withdraw(context.Background(), appID, true), page.Err)
		assert.Equal(t, api.ApplicationWithdrawn, page.Applications[0].Status)
	})

	t.Run("withdrawing frees the job for a fresh application", func(t *testing.T) {
		client, store := newBackend(t)
		loginAs(t, client, store, seedSeekerEmail)
		jobID := seededJobID(t, client, "go engineer")

		page := NewActivityPage(client, store, zap.NewNop())
		require.True(t, page.Apply(context.Background(), jobID, api.ApplyRequest{}), page.Err)
		require.True(t, page.Withdraw(context.Background(), page.Applications[0].ID, true), page.Err)
		assert.True(t, page.Apply(context.Background(), jobID, api.ApplyRequest{}), page.Err)
	})
}

func TestApplicantsPage(t *testing.T) {
	client, store := newBackend(t)

	// the seeker applies first
	loginAs(t, client, store, seedSeekerEmail)
	jobID := seededJobID(t, client, "go engineer")
	seekerSide := NewActivityPage(client, store, zap.NewNop())
	require.True(t, seekerSide.Apply(context.Background(), jobID, api.ApplyRequest{}), seekerSide.Err)

	// then the company takes over the session
	loginAs(t, client, store, seedCompanyEmail)
	page := NewApplicantsPage(client, store, zap.NewNop())
	_, ok := page.Enter()
	require.True(t, ok)

	page.Load(context.Background(), jobID)
	require.Empty(t, page.Err)
	require.Len(t, page.Applications, 1)
	appID := page.Applications[0].ID

	t.Run("status moves through the pipeline", func(t *testing.T) {
		require.True(t, page.UpdateStatus(context.Background(), appID, api.ApplicationReviewed), page.Err)
		assert.Equal(t, api.ApplicationReviewed, page.Applications[0].Status)

		assert.False(t, page.UpdateStatus(context.Background(), appID, "promoted"))
		assert.NotEmpty(t, page.FieldErrors, "unknown status rejected locally")
	})

	t.Run("interview needs a time and a place", func(t *testing.T) {
		ok := page.ScheduleInterview(context.Background(), appID, api.InterviewRequest{})
		assert.False(t, ok)
		assert.NotEmpty(t, page.FieldErrors)

		ok = page.ScheduleInterview(context.Background(), appID, api.InterviewRequest{
			ScheduledAt: time.Now().Add(48 * time.Hour),
			Location:    "video call",
		})
		assert.True(t, ok, page.Err)
	})

	t.Run("email the applicant", func(t *testing.T) {
		ok := page.SendEmail(context.Background(), appID, api.ApplicationEmailRequest{
			Subject: "Next steps",
			Body:    "Looking forward to the interview.",
		})
		assert.True(t, ok, page.Err)
	})
}
