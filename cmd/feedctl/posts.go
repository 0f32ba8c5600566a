package main

import (
	"fmt"
	"strings"

	"nuclight.org/feedctl/app/composer"
	"nuclight.org/feedctl/app/feed"
)

type feedCommand struct {
	Skip  int `long:"skip" description:"number of posts to skip"`
	Limit int `long:"limit" default:"20" description:"number of posts to fetch"`
}

func (cmd *feedCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	loader := &feed.Loader{Log: a.log, API: a.api}
	posts, err := loader.Load(rootCtx, cmd.Skip, cmd.Limit)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		fmt.Println("no posts yet")
		return nil
	}

	reactions := &feed.Reactions{Log: a.log, API: a.api, Marks: a.db}
	for _, post := range posts {
		mark, err := reactions.Current(rootCtx, post.ID)
		if err != nil {
			return err
		}
		printPost(post, mark)
	}

	return nil
}

type postCommand struct {
	Topic    string   `long:"topic" description:"optional topic"`
	Keywords string   `long:"keywords" description:"comma-separated keywords"`
	Media    []string `long:"media" description:"path to an image or video to attach (repeatable)"`

	Args struct {
		Text []string `positional-arg-name:"text"`
	} `positional-args:"yes"`
}

func (cmd *postCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.requireUser(rootCtx); err != nil {
		return err
	}

	comp := &composer.Composer{
		Log:     a.log,
		Uploads: a.api,
		Posts:   a.api,
	}
	defer comp.Discard()

	comp.SetContent(strings.Join(cmd.Args.Text, " "))
	comp.SetTopic(cmd.Topic)
	comp.SetKeywords(cmd.Keywords)

	for _, path := range cmd.Media {
		file, err := composer.NewLocalFile(path)
		if err != nil {
			return err
		}

		// In the UI a rejected file is skipped with a message; on the
		// command line an explicitly named file that cannot be attached
		// fails the whole command instead.
		if _, rejected := comp.Attach(file); len(rejected) > 0 {
			return fmt.Errorf("%s: %s", rejected[0].Name, rejected[0].Reason)
		}
	}

	post, err := comp.Submit(rootCtx)
	if err != nil {
		for _, att := range comp.Draft().Attachments {
			line := fmt.Sprintf("  %s: %s", att.File.Name(), att.Status)
			if att.FailureDetail != "" {
				line += " (" + att.FailureDetail + ")"
			}
			fmt.Println(line)
		}
		return err
	}

	fmt.Printf("post %d created with %d media\n", post.ID, len(post.Media))
	return nil
}

type rmPostCommand struct {
	Args struct {
		PostID int64 `positional-arg-name:"post-id" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *rmPostCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.requireUser(rootCtx); err != nil {
		return err
	}

	loader := &feed.Loader{Log: a.log, API: a.api}
	if err := loader.Delete(rootCtx, cmd.Args.PostID); err != nil {
		return err
	}

	fmt.Printf("post %d deleted\n", cmd.Args.PostID)
	return nil
}

type commentsCommand struct {
	Args struct {
		PostID int64 `positional-arg-name:"post-id" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *commentsCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	thread := &feed.Comments{API: a.api}
	comments, err := thread.Load(rootCtx, cmd.Args.PostID)
	if err != nil {
		return err
	}

	if len(comments) == 0 {
		fmt.Println("no comments")
		return nil
	}

	for _, comment := range comments {
		printComment(comment)
	}
	return nil
}

type commentCommand struct {
	Args struct {
		PostID int64    `positional-arg-name:"post-id" required:"yes"`
		Text   []string `positional-arg-name:"text" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *commentCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.requireUser(rootCtx); err != nil {
		return err
	}

	thread := &feed.Comments{API: a.api}
	comment, err := thread.Add(rootCtx, cmd.Args.PostID, strings.Join(cmd.Args.Text, " "))
	if err != nil {
		return err
	}

	fmt.Printf("comment %d added\n", comment.ID)
	return nil
}

type rmCommentCommand struct {
	Args struct {
		CommentID int64 `positional-arg-name:"comment-id" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *rmCommentCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.requireUser(rootCtx); err != nil {
		return err
	}

	thread := &feed.Comments{API: a.api}
	if err := thread.Remove(rootCtx, cmd.Args.CommentID); err != nil {
		return err
	}

	fmt.Printf("comment %d deleted\n", cmd.Args.CommentID)
	return nil
}

type reactCommand struct {
	isLike bool

	Args struct {
		PostID int64 `positional-arg-name:"post-id" required:"yes"`
	} `positional-args:"yes"`
}

func (cmd *reactCommand) Execute([]string) error {
	a, err := newApp(rootCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.requireUser(rootCtx); err != nil {
		return err
	}

	reactions := &feed.Reactions{Log: a.log, API: a.api, Marks: a.db}
	state, err := reactions.Toggle(rootCtx, cmd.Args.PostID, cmd.isLike)
	if err != nil {
		return err
	}

	switch {
	case state == nil:
		fmt.Printf("reaction removed from post %d\n", cmd.Args.PostID)
	case *state:
		fmt.Printf("post %d liked\n", cmd.Args.PostID)
	default:
		fmt.Printf("post %d disliked\n", cmd.Args.PostID)
	}
	return nil
}
