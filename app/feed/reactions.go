package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"nuclight.org/feedctl/app/api"
	"nuclight.org/feedctl/pkg/entities"
	"nuclight.org/feedctl/pkg/logger"
	"nuclight.org/feedctl/pkg/mutex"
)

type ReactionAPI interface {
	CreateReaction(ctx context.Context, postID int64, isLike bool) (entities.Reaction, error)
	DeleteReaction(ctx context.Context, postID int64) error
}

// MarkStore tracks the viewer's reaction per post: nil means no reaction,
// otherwise whether it is a like.
type MarkStore interface {
	ReactionMark(ctx context.Context, postID int64) (*bool, error)
	SetReactionMark(ctx context.Context, postID int64, isLike bool) error
	ClearReactionMark(ctx context.Context, postID int64) error
}

// Reactions is the like/dislike toggle: at most one reaction per viewer per
// post, and exactly one network call per toggle action.
type Reactions struct {
	Log   logger.Logger
	API   ReactionAPI
	Marks MarkStore

	locks mutex.KeyedMutex
}

// Toggle applies a like or dislike action. Repeating the current reaction
// removes it (one DELETE); anything else creates or overwrites it (one POST
// upsert). Returns the resulting state.
func (r *Reactions) Toggle(ctx context.Context, postID int64, isLike bool) (*bool, error) {
	r.locks.Lock(postID)
	defer r.locks.Unlock(postID)

	current, err := r.Marks.ReactionMark(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("reading reaction mark: %w", err)
	}

	if current != nil && *current == isLike {
		if err := r.API.DeleteReaction(ctx, postID); err != nil && !reactionGone(err) {
			return current, err
		}

		if err := r.Marks.ClearReactionMark(ctx, postID); err != nil {
			return nil, fmt.Errorf("clearing reaction mark: %w", err)
		}

		r.Log.Debug("reaction removed", "post_id", postID)
		return nil, nil
	}

	if _, err := r.API.CreateReaction(ctx, postID, isLike); err != nil {
		return current, err
	}

	if err := r.Marks.SetReactionMark(ctx, postID, isLike); err != nil {
		return nil, fmt.Errorf("storing reaction mark: %w", err)
	}

	r.Log.Debug("reaction set", "post_id", postID, "is_like", isLike)
	return &isLike, nil
}

// Current returns the tracked state for rendering.
func (r *Reactions) Current(ctx context.Context, postID int64) (*bool, error) {
	return r.Marks.ReactionMark(ctx, postID)
}

// reactionGone matches the server saying there is nothing to delete, which
// can happen when the local mark outlived the server-side reaction. The
// toggle still converges on no-reaction.
func reactionGone(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
