package domain

// User is an author of posts and comments. One instance represents the
// signed-in user; the rest are read-only authors.
type User struct {
	ID       string
	Name     string
	Avatar   string // URI
	Verified bool
}

// CommentAuthor is a by-value snapshot of the fields a comment displays.
type CommentAuthor struct {
	Name   string
	Avatar string
}

// Snapshot copies the display fields of u.
func (u User) Snapshot() CommentAuthor {
	return CommentAuthor{Name: u.Name, Avatar: u.Avatar}
}
