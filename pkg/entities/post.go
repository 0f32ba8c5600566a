package entities

import "time"

// Post is server-owned and read-only on this side: the client renders it and
// reconciles its feed by re-fetching, never by mutating counts locally.
type Post struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Content      string    `json:"content"`
	Topic        string    `json:"topic,omitempty"`
	Keywords     string    `json:"keywords,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	User         User      `json:"user"`
	Media        []Media   `json:"media,omitempty"`
	LikeCount    int       `json:"like_count"`
	DislikeCount int       `json:"dislike_count"`
	CommentCount int       `json:"comment_count"`
}

type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"post_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	AuthorName string    `json:"author_name"`
	IsBot      bool      `json:"is_bot"`
}

type Reaction struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	IsLike    bool      `json:"is_like"`
	CreatedAt time.Time `json:"created_at"`
}
