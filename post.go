package irpost

import "context"

// Post field values used for every published release.
const (
	PostStatusPublish = "publish"
	PostTypePost      = "post"
	DiscussionOpen    = "open"
)

// Post is a WordPress post as sent to the REST API.
type Post struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Status        string `json:"status"`
	Categories    []int  `json:"categories"`
	Type          string `json:"type"`
	CommentStatus string `json:"comment_status"`
	PingStatus    string `json:"ping_status"`
}

// NewPost builds the post published for a release.
func NewPost(r *Release, category int) *Post {
	return &Post{
		Title:         deref(r.Title),
		Content:       r.Content(),
		Status:        PostStatusPublish,
		Categories:    []int{category},
		Type:          PostTypePost,
		CommentStatus: DiscussionOpen,
		PingStatus:    DiscussionOpen,
	}
}

// Validate returns an error if the post cannot be published.
func (p *Post) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "post title required")
	}
	if len(p.Categories) == 0 {
		return Errorf(EINVALID, "post category required")
	}
	return nil
}

// PublishedPost is the server's view of a created post.
type PublishedPost struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// Publisher creates posts on a content-management system.
type Publisher interface {
	// Publish creates the post and returns where it was published.
	// Returns EUNAUTHORIZED if the credentials are rejected.
	Publish(ctx context.Context, post *Post) (*PublishedPost, error)
}
