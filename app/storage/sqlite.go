// Package storage is the client's only persistent state: the session token
// and the viewer's reaction marks. The marks live for the session and are
// wiped on logout; everything else is server-owned and re-fetched.
package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(ctx context.Context, filePath string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database: %w", err)
	}

	client := &SQLite{
		db: db,
	}

	err = client.init(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing sqlite3 database: %w", err)
	}

	return client, nil
}

func (c *SQLite) Close() error {
	return c.db.Close()
}

// Token returns the stored session token, or "" when no session exists.
// It implements api.TokenSource.
func (c *SQLite) Token(ctx context.Context) (string, error) {
	var token string
	err := c.db.QueryRowContext(
		ctx,
		"SELECT token FROM session WHERE id = 1",
	).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", err
	}

	return token, nil
}

func (c *SQLite) SetToken(ctx context.Context, token string) error {
	_, err := c.db.ExecContext(
		ctx,
		`INSERT INTO session (id, token, updated_at)
			VALUES (1, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(id) DO UPDATE
			    SET token = ?, updated_at = CURRENT_TIMESTAMP`,
		token, token,
	)
	return err
}

func (c *SQLite) ClearToken(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM session WHERE id = 1")
	return err
}

// ReactionMark returns the viewer's tracked reaction on a post: nil when
// there is none, otherwise whether it is a like.
func (c *SQLite) ReactionMark(ctx context.Context, postID int64) (*bool, error) {
	var isLike bool
	err := c.db.QueryRowContext(
		ctx,
		"SELECT is_like FROM reaction_marks WHERE post_id = ?",
		postID,
	).Scan(&isLike)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &isLike, nil
}

func (c *SQLite) SetReactionMark(ctx context.Context, postID int64, isLike bool) error {
	_, err := c.db.ExecContext(
		ctx,
		`INSERT INTO reaction_marks (post_id, is_like, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(post_id) DO UPDATE
			    SET is_like = ?, updated_at = CURRENT_TIMESTAMP`,
		postID, isLike, isLike,
	)
	return err
}

func (c *SQLite) ClearReactionMark(ctx context.Context, postID int64) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM reaction_marks WHERE post_id = ?", postID)
	return err
}

func (c *SQLite) ClearReactionMarks(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM reaction_marks")
	return err
}

//go:embed init.sql
var initQuery string

func (c *SQLite) init(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, initQuery)
	return err
}
