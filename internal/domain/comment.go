package domain

import (
	"strings"
	"time"
)

// Comment is a user's reply to a review.
type Comment struct {
	CommentID int       `json:"comment_id" yaml:"comment_id"`
	Author    string    `json:"author" yaml:"author"`
	ReviewID  int       `json:"review_id" yaml:"review_id"`
	Votes     int       `json:"votes" yaml:"votes"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Body      string    `json:"body" yaml:"body"`
}

// NewComment builds a Comment ready for insertion on the given review.
// Returns ErrIncompleteBody if either the author or the body is empty.
func NewComment(reviewID int, author, body string) (*Comment, error) {
	author = NormalizeUsername(author)
	if author == "" || strings.TrimSpace(body) == "" {
		return nil, ErrIncompleteBody
	}

	return &Comment{
		ReviewID: reviewID,
		Author:   author,
		Body:     body,
	}, nil
}
