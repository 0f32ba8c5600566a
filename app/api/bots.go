package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"nuclight.org/feedctl/pkg/entities"
)

type BotProfileParams struct {
	AgeGroup           string                 `json:"age_group"`
	Profession         string                 `json:"profession"`
	Region             string                 `json:"region"`
	Interests          string                 `json:"interests"`
	EmotionalBias      entities.EmotionalBias `json:"emotional_bias"`
	LikeProbability    float64                `json:"like_probability"`
	DislikeProbability float64                `json:"dislike_probability"`
	CommentProbability float64                `json:"comment_probability"`
	MinResponseDelay   int                    `json:"min_response_delay"`
	MaxResponseDelay   int                    `json:"max_response_delay"`
}

type BotParams struct {
	Name    string           `json:"name"`
	Profile BotProfileParams `json:"profile"`
}

// BulkResult is the server's one-line summary of a bulk bot action.
type BulkResult struct {
	Message string `json:"message"`
}

// ProcessSummary reports what a "process posts now" run did server-side.
type ProcessSummary struct {
	Message        string `json:"message"`
	PostsProcessed int    `json:"posts_processed"`
	BotsActive     int    `json:"bots_active"`
	Interactions   int    `json:"interactions"`
}

func (c *Client) CreateBot(ctx context.Context, params BotParams) (entities.Bot, error) {
	var bot entities.Bot
	if err := c.sendJSON(ctx, http.MethodPost, "/bots/", nil, params, &bot); err != nil {
		return entities.Bot{}, fmt.Errorf("creating bot: %w", err)
	}
	return bot, nil
}

func (c *Client) Bots(ctx context.Context, skip, limit int) ([]entities.Bot, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var bots []entities.Bot
	if err := c.getJSON(ctx, "/bots/", query, &bots); err != nil {
		return nil, fmt.Errorf("fetching bots: %w", err)
	}
	return bots, nil
}

func (c *Client) Bot(ctx context.Context, id int64) (entities.Bot, error) {
	var bot entities.Bot
	if err := c.getJSON(ctx, fmt.Sprintf("/bots/%d", id), nil, &bot); err != nil {
		return entities.Bot{}, fmt.Errorf("fetching bot %d: %w", id, err)
	}
	return bot, nil
}

func (c *Client) ToggleBot(ctx context.Context, id int64) (entities.Bot, error) {
	var bot entities.Bot
	if err := c.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/bots/%d/toggle", id), nil, nil, &bot); err != nil {
		return entities.Bot{}, fmt.Errorf("toggling bot %d: %w", id, err)
	}
	return bot, nil
}

func (c *Client) ActivateBot(ctx context.Context, id int64) (entities.Bot, error) {
	var bot entities.Bot
	if err := c.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/bots/%d/activate", id), nil, nil, &bot); err != nil {
		return entities.Bot{}, fmt.Errorf("activating bot %d: %w", id, err)
	}
	return bot, nil
}

func (c *Client) DeactivateBot(ctx context.Context, id int64) (entities.Bot, error) {
	var bot entities.Bot
	if err := c.sendJSON(ctx, http.MethodPatch, fmt.Sprintf("/bots/%d/deactivate", id), nil, nil, &bot); err != nil {
		return entities.Bot{}, fmt.Errorf("deactivating bot %d: %w", id, err)
	}
	return bot, nil
}

func (c *Client) DeleteBot(ctx context.Context, id int64) error {
	if err := c.deleteJSON(ctx, fmt.Sprintf("/bots/%d", id)); err != nil {
		return fmt.Errorf("deleting bot %d: %w", id, err)
	}
	return nil
}

func (c *Client) ActivateAllBots(ctx context.Context) (BulkResult, error) {
	var result BulkResult
	if err := c.sendJSON(ctx, http.MethodPost, "/bots/activate-all", nil, nil, &result); err != nil {
		return BulkResult{}, fmt.Errorf("activating all bots: %w", err)
	}
	return result, nil
}

func (c *Client) DeactivateAllBots(ctx context.Context) (BulkResult, error) {
	var result BulkResult
	if err := c.sendJSON(ctx, http.MethodPost, "/bots/deactivate-all", nil, nil, &result); err != nil {
		return BulkResult{}, fmt.Errorf("deactivating all bots: %w", err)
	}
	return result, nil
}

func (c *Client) ProcessPosts(ctx context.Context, hours int) (ProcessSummary, error) {
	query := url.Values{}
	query.Set("hours", strconv.Itoa(hours))

	var summary ProcessSummary
	if err := c.sendJSON(ctx, http.MethodPost, "/bots/process-posts", query, nil, &summary); err != nil {
		return ProcessSummary{}, fmt.Errorf("triggering bot processing: %w", err)
	}
	return summary, nil
}
