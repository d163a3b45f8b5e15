package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/mehmetcc/oseek/internal/api"
	"github.com/mehmetcc/oseek/internal/credstore"
	"github.com/mehmetcc/oseek/internal/httpx"
	"github.com/mehmetcc/oseek/internal/person"
	"go.uber.org/zap"
)

// RecommendationsPage renders the AI-match list. The match itself is an
// opaque server response; all we do here is show score and breakdown.
type RecommendationsPage struct {
	api    *api.Client
	store  credstore.Store
	logger *zap.Logger

	Recommendations []api.Recommendation
	Err             string
	Reason          httpx.MessageCode
}

func NewRecommendationsPage(client *api.Client, store credstore.Store, logger *zap.Logger) *RecommendationsPage {
	return &RecommendationsPage{api: client, store: store, logger: logger}
}

func (p *RecommendationsPage) Enter() (redirect string, ok bool) {
	return requireRole(p.store, person.RoleSeeker)
}

func (p *RecommendationsPage) Load(ctx context.Context) {
	p.Err, p.Reason = "", ""

	recs, err := p.api.Recommendations(ctx)
	if err != nil {
		if apiErr, ok := api.AsError(err); ok {
			p.Reason = apiErr.MessageCode
			p.Err = reasonText(apiErr)
			return
		}
		p.Err = banner(err)
		return
	}
	p.Recommendations = recs
}

// reasonText prefers a friendlier line for the couple of known messageCodes;
// everything else is the server message verbatim.
func reasonText(apiErr *api.Error) string {
	switch apiErr.MessageCode {
	case httpx.CodeProfileIncomplete:
		return "complete your profile to get job recommendations"
	case httpx.CodeNoRecommendations:
		return "no matching jobs right now, check back later"
	}
	return apiErr.Message
}

// ScoreBar renders the match score as the text version of the progress
// widget, e.g. "[#######---]  72%".
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 10
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	filled := int(score/100*float64(width) + 0.5)
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", bar, score)
}
