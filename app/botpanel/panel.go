// Package botpanel drives the synthetic-account configuration: CRUD over
// bots and their behavioral profiles, plus the fire-and-forget bulk actions
// whose only client duty is to surface the server's summary.
package botpanel

import (
	"context"
	"fmt"
	"strings"

	"nuclight.org/feedctl/app/api"
	"nuclight.org/feedctl/pkg/entities"
	"nuclight.org/feedctl/pkg/logger"
)

const defaultListLimit = 50

type BotAPI interface {
	CreateBot(ctx context.Context, params api.BotParams) (entities.Bot, error)
	Bots(ctx context.Context, skip, limit int) ([]entities.Bot, error)
	ToggleBot(ctx context.Context, id int64) (entities.Bot, error)
	ActivateBot(ctx context.Context, id int64) (entities.Bot, error)
	DeactivateBot(ctx context.Context, id int64) (entities.Bot, error)
	DeleteBot(ctx context.Context, id int64) error
	ActivateAllBots(ctx context.Context) (api.BulkResult, error)
	DeactivateAllBots(ctx context.Context) (api.BulkResult, error)
	ProcessPosts(ctx context.Context, hours int) (api.ProcessSummary, error)
}

type Panel struct {
	Log logger.Logger
	API BotAPI
}

// Create validates the profile locally, mirroring the server's constraints,
// before any network call is made.
func (p *Panel) Create(ctx context.Context, params api.BotParams) (entities.Bot, error) {
	if err := validate(params); err != nil {
		return entities.Bot{}, err
	}

	bot, err := p.API.CreateBot(ctx, params)
	if err != nil {
		return entities.Bot{}, err
	}

	p.Log.Info("bot created", "bot_id", bot.ID, "name", bot.Name)
	return bot, nil
}

func (p *Panel) List(ctx context.Context) ([]entities.Bot, error) {
	return p.API.Bots(ctx, 0, defaultListLimit)
}

func (p *Panel) Toggle(ctx context.Context, id int64) (entities.Bot, error) {
	return p.API.ToggleBot(ctx, id)
}

func (p *Panel) Activate(ctx context.Context, id int64) (entities.Bot, error) {
	return p.API.ActivateBot(ctx, id)
}

func (p *Panel) Deactivate(ctx context.Context, id int64) (entities.Bot, error) {
	return p.API.DeactivateBot(ctx, id)
}

func (p *Panel) Delete(ctx context.Context, id int64) error {
	return p.API.DeleteBot(ctx, id)
}

// ActivateAll flips every bot on and returns the server's summary line.
func (p *Panel) ActivateAll(ctx context.Context) (string, error) {
	result, err := p.API.ActivateAllBots(ctx)
	if err != nil {
		return "", err
	}
	return result.Message, nil
}

func (p *Panel) DeactivateAll(ctx context.Context) (string, error) {
	result, err := p.API.DeactivateAllBots(ctx)
	if err != nil {
		return "", err
	}
	return result.Message, nil
}

// ProcessNow asks the server to run active bots over posts from the last
// given hours (24 when zero) and reports what it did.
func (p *Panel) ProcessNow(ctx context.Context, hours int) (api.ProcessSummary, error) {
	if hours <= 0 {
		hours = 24
	}

	summary, err := p.API.ProcessPosts(ctx, hours)
	if err != nil {
		return api.ProcessSummary{}, err
	}

	p.Log.Info(
		"bot processing finished",
		"posts_processed", summary.PostsProcessed,
		"bots_active", summary.BotsActive,
		"interactions", summary.Interactions,
	)
	return summary, nil
}

func validate(params api.BotParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return fmt.Errorf("bot name is required")
	}

	profile := params.Profile
	for _, prob := range []struct {
		name  string
		value float64
	}{
		{"like", profile.LikeProbability},
		{"dislike", profile.DislikeProbability},
		{"comment", profile.CommentProbability},
	} {
		if prob.value < 0 || prob.value > 1 {
			return fmt.Errorf("%s probability must be between 0 and 1, got %v", prob.name, prob.value)
		}
	}

	if profile.MinResponseDelay < 1 || profile.MaxResponseDelay < 1 {
		return fmt.Errorf("response delays must be at least 1 second")
	}
	if profile.MinResponseDelay > profile.MaxResponseDelay {
		return fmt.Errorf("min response delay %d exceeds max %d", profile.MinResponseDelay, profile.MaxResponseDelay)
	}

	switch profile.EmotionalBias {
	case entities.BiasPositive, entities.BiasNeutral, entities.BiasNegative:
	default:
		return fmt.Errorf("unknown emotional bias: %q", profile.EmotionalBias)
	}

	return nil
}
