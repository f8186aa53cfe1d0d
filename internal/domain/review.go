package domain

import "time"

// DefaultReviewImageURL is stored for reviews created without an image.
const DefaultReviewImageURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"

// Review is a user's write-up of a board game.
// CommentCount is derived from the comments that reference the review.
type Review struct {
	ReviewID     int       `json:"review_id" yaml:"review_id"`
	Title        string    `json:"title" yaml:"title"`
	ReviewBody   string    `json:"review_body" yaml:"review_body"`
	Designer     string    `json:"designer" yaml:"designer"`
	ReviewImgURL string    `json:"review_img_url" yaml:"review_img_url"`
	Votes        int       `json:"votes" yaml:"votes"`
	Category     string    `json:"category" yaml:"category"`
	Owner        string    `json:"owner" yaml:"owner"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`
	CommentCount int       `json:"comment_count" yaml:"comment_count"`
}
