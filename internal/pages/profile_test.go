package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSeekerProfilePage(t *testing.T) {
	client, store := newBackend(t)
	loginAs(t, client, store, seedSeekerEmail)

	page := NewSeekerProfilePage(client, store, zap.NewNop())
	_, ok := page.Enter()
	require.True(t, ok)

	page.Load(context.Background())
	require.Empty(t, page.Err)
	require.NotNil(t, page.Profile)
	assert.Len(t, page.Profile.Skills, 2, "seeded skills")

	t.Run("save refreshes the profile", func(t *testing.T) {
		ok := page.Save(context.Background(), api.SeekerProfileForm{
			Headline: "Distributed systems person",
			Summary:  "I like queues.",
			Location: "Ankara",
		})
		require.True(t, ok, page.Err)
		assert.Equal(t, "Distributed systems person", page.Profile.Headline)
		assert.Equal(t, "Ankara", page.Profile.Location)
	})

	t.Run("skills", func(t *testing.T) {
		require.True(t, page.AddSkill(context.Background(), api.Skill{Name: "Kafka", Level: "intermediate"}), page.Err)
		require.Len(t, page.Profile.Skills, 3)
		added := page.Profile.Skills[2]
		require.NotEmpty(t, added.ID)

		require.True(t, page.RemoveSkill(context.Background(), added.ID), page.Err)
		assert.Len(t, page.Profile.Skills, 2)

		assert.False(t, page.AddSkill(context.Background(), api.Skill{Name: "", Level: "wizard"}))
		assert.NotEmpty(t, page.FieldErrors)
	})

	t.Run("experience and education", func(t *testing.T) {
		require.True(t, page.AddExperience(context.Background(), api.Experience{
			Title:     "Backend Developer",
			Company:   "Previous Employer",
			StartDate: "2019-01",
			EndDate:   "2022-06",
		}), page.Err)
		require.Len(t, page.Profile.Experience, 1)

		require.True(t, page.AddEducation(context.Background(), api.Education{
			School:    "Some University",
			Degree:    "BSc",
			Field:     "Computer Engineering",
			StartYear: 2013,
			EndYear:   2017,
		}), page.Err)
		require.Len(t, page.Profile.Education, 1)

		require.True(t, page.RemoveExperience(context.Background(), page.Profile.Experience[0].ID), page.Err)
		assert.Empty(t, page.Profile.Experience)
		require.True(t, page.RemoveEducation(context.Background(), page.Profile.Education[0].ID), page.Err)
		assert.Empty(t, page.Profile.Education)
	})

	t.Run("cv download streams bytes", func(t *testing.T) {
		var buf bytes.Buffer
		require.True(t, page.DownloadCV(context.Background(), &buf), page.Err)
		assert.NotZero(t, buf.Len())
	})

	t.Run("load refreshes the cached user summary", func(t *testing.T) {
		page.Load(context.Background())
		require.Empty(t, page.Err)
		require.NotNil(t, store.Load().User)
		assert.Equal(t, page.Profile.User.ID, store.Load().User.ID)
	})
}

func TestCompanyProfilePage(t *testing.T) {
	client, store := newBackend(t)
	loginAs(t, client, store, seedCompanyEmail)

	page := NewCompanyProfilePage(client, store, zap.NewNop())
	_, ok := page.Enter()
	require.True(t, ok)

	page.Load(context.Background())
	require.Empty(t, page.Err)
	require.NotNil(t, page.Profile)
	assert.Equal(t, "Robotics", page.Profile.Industry)

	t.Run("save", func(t *testing.T) {
		ok := page.Save(context.Background(), api.CompanyProfileForm{
			Website:  "https://acme.example.com",
			Industry: "Logistics Robotics",
			Size:     "201-500",
			About:    "We build and ship warehouse robots.",
			Location: "Istanbul",
		})
		require.True(t, ok, page.Err)
		assert.Equal(t, "Logistics Robotics", page.Profile.Industry)
	})

	t.Run("bad website url fails locally", func(t *testing.T) {
		ok := page.Save(context.Background(), api.CompanyProfileForm{Website: "not a url"})
		assert.False(t, ok)
		assert.NotEmpty(t, page.FieldErrors)
	})

	t.Run("pdf download streams bytes", func(t *testing.T) {
		var buf bytes.Buffer
		require.True(t, page.DownloadPDF(context.Background(), &buf), page.Err)
		assert.NotZero(t, buf.Len())
	})

	t.Run("seeker cannot enter", func(t *testing.T) {
		loginAs(t, client, store, seedSeekerEmail)
		p := NewCompanyProfilePage(client, store, zap.NewNop())
		redirect, ok := p.Enter()
		assert.False(t, ok)
		assert.Equal(t, "/", redirect)
	})
}
