package api

import (
	"context"

	"github.com/povreview/povcli/internal/client/models"
)

// GetMovies lists the whole catalog. The backend serves the collection
// unpaginated, so no limit is injected.
func (c *Client) GetMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if err := c.get(ctx, "movies", &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovie fetches a single movie by id.
func (c *Client) GetMovie(ctx context.Context, id string) (*models.Movie, error) {
	var m models.Movie
	if err := c.get(ctx, "movies/"+id, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMovie adds a movie to the catalog. Admin only.
func (c *Client) CreateMovie(ctx context.Context, in models.CreateMovieInput) (*models.Movie, error) {
	var m models.Movie
	if err := c.post(ctx, "movies", in, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMovie partially updates a movie. Admin only.
func (c *Client) UpdateMovie(ctx context.Context, id string, in models.UpdateMovieInput) (*models.Movie, error) {
	var m models.Movie
	if err := c.patch(ctx, "movies/"+id, in, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMovie removes a movie. Admin only.
func (c *Client) DeleteMovie(ctx context.Context, id string) error {
	return c.delete(ctx, "movies/"+id)
}
