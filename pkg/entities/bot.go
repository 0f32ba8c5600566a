package entities

import "time"

type EmotionalBias string

const (
	// BiasPositive makes a bot lean towards likes and friendly comments
	BiasPositive EmotionalBias = "positive"

	// BiasNeutral makes a bot react without a strong leaning either way
	BiasNeutral EmotionalBias = "neutral"

	// BiasNegative makes a bot lean towards dislikes and critical comments
	BiasNegative EmotionalBias = "negative"
)

// Bot is a synthetic account configured through this client and driven by a
// backend process that generates reactions and comments on posts.
type Bot struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	Profile   *BotProfile `json:"profile,omitempty"`
}

// BotProfile is the behavioral parameter set of a bot. Probabilities are in
// [0,1]; response delays are seconds with min <= max.
type BotProfile struct {
	ID                 int64         `json:"id,omitempty"`
	BotID              int64         `json:"bot_id,omitempty"`
	AgeGroup           string        `json:"age_group"`
	Profession         string        `json:"profession"`
	Region             string        `json:"region"`
	Interests          string        `json:"interests"`
	EmotionalBias      EmotionalBias `json:"emotional_bias"`
	LikeProbability    float64       `json:"like_probability"`
	DislikeProbability float64       `json:"dislike_probability"`
	CommentProbability float64       `json:"comment_probability"`
	MinResponseDelay   int           `json:"min_response_delay"`
	MaxResponseDelay   int           `json:"max_response_delay"`
}
