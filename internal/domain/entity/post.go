package entity

import (
	"github.com/google/uuid"
)

// Post is the read-only view of a blog post that comments attach to.
type Post struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"author_id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
}

// DisplayPath returns the human-facing path of the post, if it has one.
func (p *Post) DisplayPath() (string, bool) {
	if p == nil || p.Slug == "" {
		return "", false
	}

	return "/posts/" + p.Slug, true
}
