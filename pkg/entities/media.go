package entities

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Media is one image or video belonging to a post: the kind and the
// server-assigned URL. The same pair is sent back when creating a post from
// already-uploaded files.
type Media struct {
	MediaType MediaKind `json:"media_type"`
	URL       string    `json:"url"`
}
