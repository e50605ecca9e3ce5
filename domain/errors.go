package domain

import "errors"

var (
	// ErrEmptyPost indicates the user submitted a blank post.
	ErrEmptyPost = errors.New("post cannot be empty")

	// ErrEmptyComment indicates the user submitted a blank comment.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrPublishInFlight indicates a publish is already running.
	ErrPublishInFlight = errors.New("publish already in progress")

	// ErrRefreshInFlight indicates a refresh is already running.
	ErrRefreshInFlight = errors.New("refresh already in progress")

	// ErrNoPostSelected indicates a comment was sent with no thread open.
	ErrNoPostSelected = errors.New("no post selected")

	// ErrPostNotFound indicates the post ID is not in the feed.
	ErrPostNotFound = errors.New("post not found")

	// ErrMissingFields indicates a form was submitted with blank fields.
	ErrMissingFields = errors.New("all fields are required")

	// ErrPasswordMismatch indicates password and confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
