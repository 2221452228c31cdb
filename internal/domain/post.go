package domain

import "time"

// Post is a blog article. It owns its comments: they are stored and
// removed together with the post.
type Post struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	PublishedAt time.Time  `json:"publishedAt"`
	Author      *User      `json:"author"`
	Tags        []*Tag     `json:"tags"`
	Comments    []*Comment `json:"comments"`
}

// AddTag links tags to the post, ignoring tags that are already linked.
func (p *Post) AddTag(tags ...*Tag) {
	for _, t := range tags {
		if !p.HasTag(t.Name) {
			p.Tags = append(p.Tags, t)
		}
	}
}

// HasTag reports whether a tag named name is linked to the post.
func (p *Post) HasTag(name string) bool {
	for _, t := range p.Tags {
		if t.Name == name {
			return true
		}
	}
	return false
}

// AddComment attaches c to the post and sets its back-reference.
func (p *Post) AddComment(c *Comment) {
	c.Post = p
	p.Comments = append(p.Comments, c)
}

// Comment is a reader response on a post.
type Comment struct {
	ID          int64     `json:"id"`
	Post        *Post     `json:"-"`
	Author      *User     `json:"author"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
}
