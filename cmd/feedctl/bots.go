package main

import (
	"fmt"
	"strings"

	"nuclight.org/feedctl/app/api"
	"nuclight.org/feedctl/app/botpanel"
	"nuclight.org/feedctl/pkg/entities"
)

type botsCommand struct {
	List          botsListCommand      `command:"list" description:"list configured bots"`
	Create        botsCreateCommand    `command:"create" description:"create a bot"`
	Toggle        botsToggleCommand    `command:"toggle" description:"flip a bot between active and inactive"`
	Activate      botsActivateCommand  `command:"activate" description:"activate a bot"`
	Deactivate    botsDeactivateCmd    `command:"deactivate" description:"deactivate a bot"`
	Delete        botsDeleteCommand    `command:"delete" description:"delete a bot"`
	ActivateAll   botsActivateAllCmd   `command:"activate-all" description:"activate every bot"`
	DeactivateAll botsDeactivateAllCmd `command:"deactivate-all" description:"deactivate every bot"`
	Process       botsProcessCommand   `command:"process" description:"run active bots over recent posts now"`
}

func newPanel() (*app, *botpanel.Panel, error) {
	a, err := newApp(rootCtx)
	if err != nil {
		return nil, nil, err
	}
	if _, err := a.requireUser(rootCtx); err != nil {
		a.Close()
		return nil, nil, err
	}
	return a, &botpanel.Panel{Log: a.log, API: a.api}, nil
}

type botsListCommand struct{}

func (cmd *botsListCommand) Execute([]string) error {
	a, panel, err := newPanel()
	if err != nil {
		return err
	}
	defer a.Close()

	bots, err := panel.List(rootCtx)
	if err != nil {
		return err
	}

	if len(bots) == 0 {
		fmt.Println("no bots configured")
		return nil
	}

	for _, bot := range bots {
		printBot(bot)
	}
	return nil
}

type botsCreateCommand struct {
	Preset             string  `long:"preset" description:"start from a named personality (see --preset list)"`
	AgeGroup           string  `long:"age-group" default:"25-35" description:"age group"`
	Profession         string  `long:"profession" description:"profession"`
	Region             string  `long:"region" default:"Global" description:"region"`
	Interests          string  `long:"interests" description:"comma-separated interests"`
	Bias               string  `long:"bias" default:"neutral" choice:"positive" choice:"neutral" choice:"negative" description:"emotional bias"`
	LikeProbability    float64 `long:"like-probability" default:"0.5" description:"probability of liking a post"`
	DislikeProbability float64 `long:"dislike-probability" default:"0.2" description:"probability of disliking a post"`
	CommentProbability float64 `long:"comment-probability" default:"0.4" description:"probability of commenting"`
	MinDelay           int     `long:"min-delay" default:"5" description:"minimum response delay, seconds"`
	MaxDelay           int     `long:"max-delay" default:"60" description:"maximum response delay, seconds"`

	Args struct {
		Name string `positional-arg-name:"name" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *botsCreateCommand) Execute([]string) error {
	a, panel, err := newPanel()
	if err != nil {
		return err
	}
	defer a.Close()

	profile := api.BotProfileParams{
		AgeGroup:           cmd.AgeGroup,
		Profession:         cmd.Profession,
		Region:             cmd.Region,
		Interests:          cmd.Interests,
		EmotionalBias:      entities.EmotionalBias(cmd.Bias),
		LikeProbability:    cmd.LikeProbability,
		DislikeProbability: cmd.DislikeProbability,
		CommentProbability: cmd.CommentProbability,
		MinResponseDelay:   cmd.MinDelay,
		MaxResponseDelay:   cmd.MaxDelay,
	}

	if cmd.Preset != "" {
		preset, ok := botpanel.Preset(cmd.Preset)
		if !ok {
			return fmt.Errorf("unknown preset %q, available: %s", cmd.Preset, strings.Join(botpanel.PresetNames(), ", "))
		}
		profile = preset
	}

	bot, err := panel.Create(rootCtx, api.BotParams{
		Name:    cmd.Args.Name,
		Profile: profile,
	})
	if err != nil {
		return err
	}

	fmt.Printf("bot %q created (id %d)\n", bot.Name, bot.ID)
	return nil
}

type botsToggleCommand struct {
	Args struct {
		BotID int64 `positional-arg-name:"bot-id" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *botsToggleCommand) Execute([]string) error {
	a, panel, err := newPanel()
	if err != nil {
		return err
	}
	defer a.Close()

	bot, err := panel.Toggle(rootCtx, cmd.Args.BotID)
	if err != nil {
		return err
	}

	state := "inactive"
	if bot.IsActive {
		state = "active"
	}
	fmt.Printf("bot %q is now %s\n", bot.Name, state)
	return nil
}

type botsActivateCommand struct {
	Args struct {
		BotID int64 `positional-arg-name:"bot-id" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *botsActivateCommand) Execute([]string) error {
	a, panel, err := newPanel()
	if err != nil {
		return err
	}
	defer a.Close()

	bot, err := panel.Activate(rootCtx, cmd.Args.BotID)
	if err != nil {
		return err
	}

	fmt.Printf("bot %q activated\n", bot.Name)
	return nil
}

type botsDeactivateCmd struct {
	Args struct {
		BotID int64 `positional-arg-name:"bot-id" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *botsDeactivateCmd) Execute([]string) error {
	a, panel, err := newPanel()
	if err != nil {
		return err
	}
	defer a.Close()

	bot, err := panel.Deactivate(rootCtx, cmd.Args.BotID)
	if err != nil {
		return err
	}

	fmt.Printf("bot %q deactivated\n", bot.Name)
	return nil
}

type botsDeleteCommand struct {
	Args struct {
		BotID int64 `positional-arg-name:"bot-id" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *botsDeleteCommand) Execute([]string) error {
	a, panel, err := newPanel()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := panel.Delete(rootCtx, cmd.Args.BotID); err != nil {
		return err
	}

	fmt.Printf("bot %d deleted\n", cmd.Args.BotID)
	return nil
}

type botsActivateAllCmd struct{}

func (cmd *botsActivateAllCmd) Execute([]string) error {
	a, panel, err := newPanel()
	if err != nil {
		return err
	}
	defer a.Close()

	message, err := panel.ActivateAll(rootCtx)
	if err != nil {
		return err
	}

	fmt.Println(message)
	return nil
}

type botsDeactivateAllCmd struct{}

func (cmd *botsDeactivateAllCmd) Execute([]string) error {
	a, panel, err := newPanel()
	if err != nil {
		return err
	}
	defer a.Close()

	message, err := panel.DeactivateAll(rootCtx)
	if err != nil {
		return err
	}

	fmt.Println(message)
	return nil
}

type botsProcessCommand struct {
	Hours int `long:"hours" default:"24" description:"process posts from the last N hours"`
}

func (cmd *botsProcessCommand) Execute([]string) error {
	a, panel, err := newPanel()
	if err != nil {
		return err
	}
	defer a.Close()

	summary, err := panel.ProcessNow(rootCtx, cmd.Hours)
	if err != nil {
		return err
	}

	fmt.Printf("processed %d posts with %d active bots, %d interactions created\n",
		summary.PostsProcessed, summary.BotsActive, summary.Interactions)
	return nil
}
