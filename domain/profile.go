package domain

// Profile is the public card of a user.
type Profile struct {
	User      User
	Username  string
	Email     string
	Bio       string
	Location  string
	Followers int
	Following int
	PostCount int
	JoinDate  string
	Posts     []ProfilePost
}

// ProfilePost is the condensed post shown on a profile.
type ProfilePost struct {
	ID       string
	Content  string
	Age      string // Pre-rendered age, e.g. "2h"
	Likes    int
	Comments int
}
