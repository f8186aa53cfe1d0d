package api

import "github.com/phrazzld/tabletop-api/internal/domain"

// CategoriesResponse is the body of GET /api/categories.
type CategoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// ReviewsResponse is the body of GET /api/reviews.
type ReviewsResponse struct {
	Reviews []domain.Review `json:"reviews"`
}

// ReviewResponse wraps a single review.
type ReviewResponse struct {
	Review *domain.Review `json:"review"`
}

// CommentsResponse wraps a list of comments.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// UsersResponse is the body of GET /api/users.
type UsersResponse struct {
	Users []domain.UserSummary `json:"users"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	User *domain.User `json:"user"`
}
