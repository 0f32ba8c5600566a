package composer

import (
	"nuclight.org/feedctl/pkg/entities"
)

// Status is an attachment's progress through the submission pipeline. Within
// one submission attempt transitions only move forward: pending -> uploading
// -> uploaded, or uploading -> failed. A user-initiated retry picks a failed
// attachment up again from uploading.
type Status string

const (
	StatusPending   Status = "pending"
	StatusUploading Status = "uploading"
	StatusUploaded  Status = "uploaded"
	StatusFailed    Status = "failed"
)

// Attachment is one staged local file. ID is unique within the draft's
// lifetime. URL is set once the server has accepted the upload; from then on
// the attachment is reused as-is and never uploaded again.
type Attachment struct {
	ID            string
	File          File
	Preview       *Preview
	Kind          entities.MediaKind
	Status        Status
	URL           string
	FailureDetail string
}

// Rejection is a file the intake refused, with a user-facing reason. The rest
// of the batch is unaffected.
type Rejection struct {
	Name   string
	Reason string
}

// Draft is the post under composition. It exists only while the composer is
// open: submission or discarding destroys it.
type Draft struct {
	Content     string
	Topic       string
	Keywords    string
	Attachments []*Attachment
}
