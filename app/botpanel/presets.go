package botpanel

import (
	"sort"

	"nuclight.org/feedctl/app/api"
	"nuclight.org/feedctl/pkg/entities"
)

// Presets are ready-made bot personalities. Fields a preset does not set keep
// the platform defaults below.
var defaults = api.BotProfileParams{
	AgeGroup:         "25-35",
	Region:           "Global",
	EmotionalBias:    entities.BiasNeutral,
	MinResponseDelay: 5,
	MaxResponseDelay: 60,
}

var presets = map[string]api.BotProfileParams{
	"tech-enthusiast": {
		Profession:         "Software Developer",
		Interests:          "technology, AI, programming, innovation, coding",
		EmotionalBias:      entities.BiasPositive,
		LikeProbability:    0.8,
		DislikeProbability: 0.05,
		CommentProbability: 0.6,
	},
	"art-lover": {
		Profession:         "Artist",
		Interests:          "art, design, creativity, music, culture",
		EmotionalBias:      entities.BiasPositive,
		LikeProbability:    0.75,
		DislikeProbability: 0.1,
		CommentProbability: 0.5,
	},
	"sports-fan": {
		Profession:         "Fitness Coach",
		Interests:          "sports, fitness, health, teams, competition",
		EmotionalBias:      entities.BiasPositive,
		LikeProbability:    0.7,
		DislikeProbability: 0.15,
		CommentProbability: 0.55,
	},
	"critical-thinker": {
		Profession:         "Analyst",
		Interests:          "news, politics, science, debate",
		EmotionalBias:      entities.BiasNegative,
		LikeProbability:    0.25,
		DislikeProbability: 0.5,
		CommentProbability: 0.7,
	},
	"casual-user": {
		Profession:         "Student",
		Interests:          "music, movies, gaming, memes, entertainment",
		EmotionalBias:      entities.BiasNeutral,
		LikeProbability:    0.5,
		DislikeProbability: 0.2,
		CommentProbability: 0.35,
	},
	"business-pro": {
		Profession:         "Business Manager",
		Interests:          "business, finance, marketing, entrepreneurship",
		EmotionalBias:      entities.BiasNeutral,
		LikeProbability:    0.45,
		DislikeProbability: 0.25,
		CommentProbability: 0.6,
	},
}

// Preset returns a complete profile for a named personality, with defaults
// filled in for the fields the preset leaves open.
func Preset(name string) (api.BotProfileParams, bool) {
	preset, ok := presets[name]
	if !ok {
		return api.BotProfileParams{}, false
	}

	preset.AgeGroup = defaults.AgeGroup
	preset.Region = defaults.Region
	preset.MinResponseDelay = defaults.MinResponseDelay
	preset.MaxResponseDelay = defaults.MaxResponseDelay

	return preset, true
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
