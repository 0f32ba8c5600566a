// Package composer stages local media files and publishes a draft post. The
// upload-then-post pipeline is strictly sequential: a failure at attachment k
// means attachment k+1 was never started, and a retry resumes from where it
// stopped instead of re-uploading what already succeeded.
package composer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"nuclight.org/feedctl/app/api"
	"nuclight.org/feedctl/pkg/entities"
	"nuclight.org/feedctl/pkg/logger"
)

// MaxFileSize is the platform's per-file ceiling.
const MaxFileSize = 50 << 20

// mediaOnlyContent substitutes for empty text when the post carries media.
const mediaOnlyContent = "📷"

var (
	ErrEmptyDraft = errors.New("post needs text or at least one attachment")
	ErrBusy       = errors.New("a submission is already in progress")
)

type UploadService interface {
	Upload(ctx context.Context, name, contentType string, r io.Reader) (api.UploadResult, error)
}

type PostService interface {
	CreatePost(ctx context.Context, params api.PostParams) (entities.Post, error)
}

type Composer struct {
	Log     logger.Logger
	Uploads UploadService
	Posts   PostService

	// MaxFileSize overrides the default ceiling when positive.
	MaxFileSize int64

	draft Draft
	busy  atomic.Bool
}

// Draft exposes the current draft for rendering. Callers must not mutate the
// attachment sequence directly; use Attach and Remove.
func (c *Composer) Draft() *Draft {
	return &c.draft
}

func (c *Composer) SetContent(text string) {
	c.draft.Content = text
}

func (c *Composer) SetTopic(topic string) {
	c.draft.Topic = topic
}

func (c *Composer) SetKeywords(keywords string) {
	c.draft.Keywords = keywords
}

func (c *Composer) maxFileSize() int64 {
	if c.MaxFileSize > 0 {
		return c.MaxFileSize
	}
	return MaxFileSize
}

// Attach validates and stages a batch of files. Files failing validation are
// reported and skipped; valid files from the same batch are still staged, in
// selection order, each with a freshly acquired preview and pending status.
func (c *Composer) Attach(files ...File) ([]*Attachment, []Rejection) {
	var accepted []*Attachment
	var rejected []Rejection

	for _, f := range files {
		kind, ok := kindOf(f.ContentType())
		if !ok {
			rejected = append(rejected, Rejection{
				Name:   f.Name(),
				Reason: fmt.Sprintf("file type %q is not allowed, use images (jpeg, png, gif, webp) or videos (mp4, webm, mov, avi)", f.ContentType()),
			})
			continue
		}

		if f.Size() > c.maxFileSize() {
			rejected = append(rejected, Rejection{
				Name:   f.Name(),
				Reason: fmt.Sprintf("file is too large, maximum size is %dMB", c.maxFileSize()>>20),
			})
			continue
		}

		preview, err := NewPreview(f)
		if err != nil {
			rejected = append(rejected, Rejection{
				Name:   f.Name(),
				Reason: err.Error(),
			})
			continue
		}

		att := &Attachment{
			ID:      uuid.New().String(),
			File:    f,
			Preview: preview,
			Kind:    kind,
			Status:  StatusPending,
		}
		c.draft.Attachments = append(c.draft.Attachments, att)
		accepted = append(accepted, att)
	}

	return accepted, rejected
}

// Remove drops the attachment with the given ID, releasing its preview.
// Allowed in any status; a completed server-side upload is not retracted.
func (c *Composer) Remove(id string) bool {
	for i, att := range c.draft.Attachments {
		if att.ID != id {
			continue
		}

		if err := att.Preview.Release(); err != nil {
			c.Log.Warn("releasing preview", "attachment_id", id, "error", err)
		}
		c.draft.Attachments = append(c.draft.Attachments[:i], c.draft.Attachments[i+1:]...)
		return true
	}

	return false
}

// Discard destroys the draft: previews released, fields reset.
func (c *Composer) Discard() {
	for _, att := range c.draft.Attachments {
		if err := att.Preview.Release(); err != nil {
			c.Log.Warn("releasing preview", "attachment_id", att.ID, "error", err)
		}
	}
	c.draft = Draft{}
}

// Submit publishes the draft: uploads every not-yet-uploaded attachment in
// order, then creates the post referencing the uploaded URLs. On any failure
// the draft is preserved exactly as it stands, so the user can retry without
// re-selecting files or re-uploading what already succeeded. On success the
// draft is destroyed.
func (c *Composer) Submit(ctx context.Context) (entities.Post, error) {
	if !c.busy.CompareAndSwap(false, true) {
		return entities.Post{}, ErrBusy
	}
	defer c.busy.Store(false)

	if strings.TrimSpace(c.draft.Content) == "" && len(c.draft.Attachments) == 0 {
		return entities.Post{}, ErrEmptyDraft
	}

	for _, att := range c.draft.Attachments {
		if att.Status == StatusUploaded {
			continue
		}

		if err := c.upload(ctx, att); err != nil {
			return entities.Post{}, err
		}
	}

	params := api.PostParams{
		Content:  c.draft.Content,
		Topic:    c.draft.Topic,
		Keywords: c.draft.Keywords,
	}
	if strings.TrimSpace(params.Content) == "" {
		params.Content = mediaOnlyContent
	}
	for _, att := range c.draft.Attachments {
		params.Media = append(params.Media, entities.Media{
			MediaType: att.Kind,
			URL:       att.URL,
		})
	}

	post, err := c.Posts.CreatePost(ctx, params)
	if err != nil {
		return entities.Post{}, err
	}

	c.Log.Info("post created", "post_id", post.ID, "media", len(post.Media))
	c.Discard()

	return post, nil
}

func (c *Composer) upload(ctx context.Context, att *Attachment) error {
	att.Status = StatusUploading
	att.FailureDetail = ""

	rc, err := att.File.Open()
	if err != nil {
		return c.fail(att, fmt.Errorf("opening %s: %w", att.File.Name(), err))
	}

	result, err := c.Uploads.Upload(ctx, att.File.Name(), att.File.ContentType(), rc)
	rc.Close()
	if err != nil {
		return c.fail(att, err)
	}

	att.Status = StatusUploaded
	att.Kind = result.MediaType
	att.URL = result.URL
	c.Log.Debug("attachment uploaded", "attachment_id", att.ID, "url", att.URL)

	return nil
}

// fail marks the attachment and aborts the submission; attachments after this
// one stay pending.
func (c *Composer) fail(att *Attachment, err error) error {
	att.Status = StatusFailed
	att.FailureDetail = err.Error()
	return err
}

func kindOf(contentType string) (entities.MediaKind, bool) {
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return entities.MediaKindImage, true
	case "video/mp4", "video/webm", "video/quicktime", "video/x-msvideo":
		return entities.MediaKindVideo, true
	default:
		return "", false
	}
}
