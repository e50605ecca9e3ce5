package domain

import "time"

// Comment is a reply attached to exactly one Post.
type Comment struct {
	ID        string
	Author    CommentAuthor
	Content   string
	CreatedAt time.Time
}

// Post is a single feed entry.
type Post struct {
	ID        string
	Author    User
	Content   string
	CreatedAt time.Time
	Likes     int
	Liked     bool // True if the current user liked the post
	Comments  []Comment
	Shares    int
}

// Clone returns a copy of p that does not share its comment slice.
func (p Post) Clone() Post {
	if p.Comments != nil {
		p.Comments = append([]Comment(nil), p.Comments...)
	}
	return p
}
