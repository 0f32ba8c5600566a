// Package feed is the read side of the client: it fetches posts and comment
// threads on demand and tracks the viewer's reaction per post. It keeps no
// cache; after any mutation the caller re-fetches and re-renders.
package feed

import (
	"context"
	"fmt"
	"strings"

	"nuclight.org/feedctl/pkg/entities"
	"nuclight.org/feedctl/pkg/logger"
)

const defaultPageSize = 20

type PostAPI interface {
	Posts(ctx context.Context, skip, limit int) ([]entities.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type Loader struct {
	Log logger.Logger
	API PostAPI
}

// Load fetches one page of the feed in server order.
func (l *Loader) Load(ctx context.Context, skip, limit int) ([]entities.Post, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	posts, err := l.API.Posts(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	l.Log.Debug("feed loaded", "posts", len(posts), "skip", skip)
	return posts, nil
}

func (l *Loader) Delete(ctx context.Context, id int64) error {
	return l.API.DeletePost(ctx, id)
}

type CommentAPI interface {
	Comments(ctx context.Context, postID int64) ([]entities.Comment, error)
	CreateComment(ctx context.Context, postID int64, content string) (entities.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

// Comments loads and mutates a post's comment thread. Threads are fetched
// lazily, only when a post's comments are opened.
type Comments struct {
	API CommentAPI
}

func (c *Comments) Load(ctx context.Context, postID int64) ([]entities.Comment, error) {
	return c.API.Comments(ctx, postID)
}

// Add posts a comment. Blank content is rejected locally, with no call made.
func (c *Comments) Add(ctx context.Context, postID int64, content string) (entities.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return entities.Comment{}, fmt.Errorf("comment cannot be empty")
	}

	return c.API.CreateComment(ctx, postID, content)
}

func (c *Comments) Remove(ctx context.Context, commentID int64) error {
	return c.API.DeleteComment(ctx, commentID)
}
