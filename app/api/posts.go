package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"nuclight.org/feedctl/pkg/entities"
)

type PostParams struct {
	Content  string           `json:"content"`
	Topic    string           `json:"topic,omitempty"`
	Keywords string           `json:"keywords,omitempty"`
	Media    []entities.Media `json:"media,omitempty"`
}

// Posts returns a page of the feed in the server's order, newest first.
func (c *Client) Posts(ctx context.Context, skip, limit int) ([]entities.Post, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var posts []entities.Post
	if err := c.getJSON(ctx, "/posts/", query, &posts); err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}
	return posts, nil
}

func (c *Client) CreatePost(ctx context.Context, params PostParams) (entities.Post, error) {
	var post entities.Post
	if err := c.sendJSON(ctx, http.MethodPost, "/posts/", nil, params, &post); err != nil {
		return entities.Post{}, fmt.Errorf("creating post: %w", err)
	}
	return post, nil
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	if err := c.deleteJSON(ctx, fmt.Sprintf("/posts/%d", id)); err != nil {
		return fmt.Errorf("deleting post %d: %w", id, err)
	}
	return nil
}

func (c *Client) Comments(ctx context.Context, postID int64) ([]entities.Comment, error) {
	var comments []entities.Comment
	if err := c.getJSON(ctx, fmt.Sprintf("/posts/%d/comments", postID), nil, &comments); err != nil {
		return nil, fmt.Errorf("fetching comments of post %d: %w", postID, err)
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, postID int64, content string) (entities.Comment, error) {
	payload := struct {
		Content string `json:"content"`
	}{Content: content}

	var comment entities.Comment
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/comments", postID), nil, payload, &comment); err != nil {
		return entities.Comment{}, fmt.Errorf("commenting on post %d: %w", postID, err)
	}
	return comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	if err := c.deleteJSON(ctx, fmt.Sprintf("/posts/comments/%d", commentID)); err != nil {
		return fmt.Errorf("deleting comment %d: %w", commentID, err)
	}
	return nil
}

func (c *Client) CreateReaction(ctx context.Context, postID int64, isLike bool) (entities.Reaction, error) {
	payload := struct {
		IsLike bool `json:"is_like"`
	}{IsLike: isLike}

	var reaction entities.Reaction
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/posts/%d/reactions", postID), nil, payload, &reaction); err != nil {
		return entities.Reaction{}, fmt.Errorf("reacting to post %d: %w", postID, err)
	}
	return reaction, nil
}

func (c *Client) DeleteReaction(ctx context.Context, postID int64) error {
	if err := c.deleteJSON(ctx, fmt.Sprintf("/posts/%d/reactions", postID)); err != nil {
		return fmt.Errorf("removing reaction from post %d: %w", postID, err)
	}
	return nil
}
