package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"nuclight.org/feedctl/app/api"
	"nuclight.org/feedctl/app/session"
	"nuclight.org/feedctl/app/storage"
	"nuclight.org/feedctl/pkg/entities"
	"nuclight.org/feedctl/pkg/logger"
)

// app wires one command invocation: logger, local state, API client, and the
// session gate reading its token from that state.
type app struct {
	log  logger.Logger
	db   *storage.SQLite
	api  *api.Client
	gate *session.Gate
}

func newApp(ctx context.Context) (*app, error) {
	log := logger.NewLogger(opts.Verbose)

	dbPath := opts.DBPath
	if dbPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving config dir: %w", err)
		}
		dbPath = filepath.Join(configDir, "feedctl", "state.sqlite")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := storage.NewSQLite(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening local state: %w", err)
	}

	client := &api.Client{
		Log:     log,
		BaseURL: opts.APIURL,
		Tokens:  db,
	}

	gate := &session.Gate{
		Log:   log,
		Store: db,
		API:   client,
	}

	return &app{
		log:  log,
		db:   db,
		api:  client,
		gate: gate,
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Error("closing local state", "error", err)
	}
}

// requireUser resolves the session and refuses to continue without one.
func (a *app) requireUser(ctx context.Context) (*entities.User, error) {
	user, err := a.gate.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("not logged in, run `feedctl login` first")
	}
	return user, nil
}

func addCommands(parser *flags.Parser) {
	must := func(_ *flags.Command, err error) {
		if err != nil {
			panic(err)
		}
	}

	must(parser.AddCommand("register", "create an account", "Create an account and log in.", &registerCommand{}))
	must(parser.AddCommand("login", "log in", "Exchange credentials for a session token.", &loginCommand{}))
	must(parser.AddCommand("logout", "log out", "Clear the stored session.", &logoutCommand{}))
	must(parser.AddCommand("whoami", "show the current user", "Show the profile of the logged-in user.", &whoamiCommand{}))
	must(parser.AddCommand("feed", "show the feed", "Fetch and print a page of posts.", &feedCommand{}))
	must(parser.AddCommand("post", "publish a post", "Compose a post, uploading any attached media first.", &postCommand{}))
	must(parser.AddCommand("rm-post", "delete a post", "Delete one of your posts.", &rmPostCommand{}))
	must(parser.AddCommand("comments", "show a comment thread", "Fetch the comments of a post.", &commentsCommand{}))
	must(parser.AddCommand("comment", "add a comment", "Comment on a post.", &commentCommand{}))
	must(parser.AddCommand("rm-comment", "delete a comment", "Delete one of your comments.", &rmCommentCommand{}))
	must(parser.AddCommand("like", "toggle a like", "Like a post, or remove your like if it is already there.", &reactCommand{isLike: true}))
	must(parser.AddCommand("dislike", "toggle a dislike", "Dislike a post, or remove your dislike if it is already there.", &reactCommand{isLike: false}))
	must(parser.AddCommand("bots", "manage bots", "Configure and drive the synthetic accounts.", &botsCommand{}))
}
