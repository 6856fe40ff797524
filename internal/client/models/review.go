package models

import "time"

// ReviewUser is the review owner as embedded in review responses.
type ReviewUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReviewMovie is the reviewed movie as embedded in review responses.
// Absent from some listings (e.g. reviews already scoped to a movie).
type ReviewMovie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Review is a star-rated review of a movie. Each review belongs to exactly
// one user and one movie. The UI shows at most one review per (user, movie)
// pair, but the backend does not promise that.
type Review struct {
	ID        string       `json:"id"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	User      ReviewUser   `json:"user"`
	Movie     *ReviewMovie `json:"movie,omitempty"`
}

// CreateReviewInput is the body for POST reviews/movie/:movieId.
//
// The backend requires a name field on creation although nothing reads it
// afterwards; callers normally leave it empty and the API layer fills in
// the conventional placeholder.
type CreateReviewInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,min=10"`
}

// UpdateReviewInput is the body for PATCH reviews/:id. Partial update:
// a zero rating means "leave unchanged".
type UpdateReviewInput struct {
	Rating  int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,min=10"`
}
