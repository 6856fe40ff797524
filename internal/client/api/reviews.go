package api

import (
	"context"

	"github.com/povreview/povcli/internal/client/models"
)

// reviewNamePlaceholder fills the name field the backend requires on review
// creation but never reads afterwards.
const reviewNamePlaceholder = "Review"

// CreateReview posts a review for a movie. Requires authentication.
func (c *Client) CreateReview(ctx context.Context, movieID string, rating int, comment string) (*models.Review, error) {
	in := models.CreateReviewInput{
		Name:    reviewNamePlaceholder,
		Rating:  rating,
		Comment: comment,
	}
	var r models.Review
	if err := c.post(ctx, "reviews/movie/"+movieID, in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GetAllReviews lists every review.
func (c *Client) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.get(ctx, "reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetMovieReviews lists the reviews of one movie.
func (c *Client) GetMovieReviews(ctx context.Context, movieID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.get(ctx, "reviews/movie/"+movieID, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetUserReviews lists the reviews written by one user.
func (c *Client) GetUserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.get(ctx, "reviews/user/"+userID, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetReview fetches a single review by id.
func (c *Client) GetReview(ctx context.Context, id string) (*models.Review, error) {
	var r models.Review
	if err := c.get(ctx, "reviews/"+id, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// UpdateReview partially updates a review. Owner only (backend-enforced).
func (c *Client) UpdateReview(ctx context.Context, id string, in models.UpdateReviewInput) (*models.Review, error) {
	var r models.Review
	if err := c.patch(ctx, "reviews/"+id, in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteReview removes a review. Owner or admin (backend-enforced).
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.delete(ctx, "reviews/"+id)
}
