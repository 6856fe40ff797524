package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/povreview/povcli/internal/client/authz"
	"github.com/povreview/povcli/internal/client/models"
)

func stars(rating int) string {
	s := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}

// ListReviews prints the reviews of one movie. Public.
func (a *App) ListReviews(ctx context.Context, movieID string) error {
	reviews, err := a.api.GetMovieReviews(ctx, movieID)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "No reviews yet.")
		return nil
	}
	for _, r := range reviews {
		fmt.Fprintf(a.out, "%s  %s by %s\n  %s\n", r.ID, stars(r.Rating), r.User.Name, r.Comment)
	}
	return nil
}

func (a *App) promptRating() (int, error) {
	text, err := getSimpleText(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		return 0, err
	}
	rating, err := strconv.Atoi(text)
	if err != nil {
		fmt.Fprintln(a.out, "Rating must be a number between 1 and 5.")
		return 0, err
	}
	return rating, nil
}

// AddReview posts a review. Gated: any authenticated user.
func (a *App) AddReview(ctx context.Context) error {
	if !authz.CanCreateReview(a.session.Snapshot()) {
		fmt.Fprintln(a.out, "Log in to write a review.")
		return nil
	}

	movieID, err := getSimpleText(a.reader, "Movie id", a.out)
	if err != nil {
		return err
	}
	rating, err := a.promptRating()
	if err != nil {
		return err
	}
	comment, err := GetMultiline(a.reader, "Your review (at least 10 characters)", a.out)
	if err != nil {
		return err
	}

	if err := models.Validate(models.CreateReviewInput{Rating: rating, Comment: comment}); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	r, err := a.api.CreateReview(ctx, movieID, rating, comment)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintf(a.out, "Review %s posted: %s\n", r.ID, stars(r.Rating))
	return nil
}

// EditReview updates a review. Gated: strictly the owner. Administrators
// may not edit other users' reviews, only delete them.
func (a *App) EditReview(ctx context.Context, id string) error {
	review, err := a.api.GetReview(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if !authz.CanEditReview(a.session.Snapshot(), review.User.ID) {
		fmt.Fprintln(a.out, "You can only edit your own reviews.")
		return nil
	}

	rating, err := a.promptRating()
	if err != nil {
		return err
	}
	comment, err := GetMultiline(a.reader, "Updated review (at least 10 characters)", a.out)
	if err != nil {
		return err
	}

	in := models.UpdateReviewInput{Rating: rating, Comment: comment}
	if err := models.Validate(in); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if _, err := a.api.UpdateReview(ctx, id, in); err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintln(a.out, "Review updated.")
	return nil
}

// DeleteReview removes a review. Gated: owner or admin.
func (a *App) DeleteReview(ctx context.Context, id string) error {
	review, err := a.api.GetReview(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	if !authz.CanDeleteReview(a.session.Snapshot(), review.User.ID) {
		fmt.Fprintln(a.out, "You can only delete your own reviews.")
		return nil
	}

	if err := a.api.DeleteReview(ctx, id); err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintln(a.out, "Review deleted.")
	return nil
}

// MyReviews lists the current user's reviews across all movies.
func (a *App) MyReviews(ctx context.Context) error {
	s := a.session.Snapshot()
	if !s.IsAuthenticated || s.User == nil {
		fmt.Fprintln(a.out, "Log in to see your reviews.")
		return nil
	}

	reviews, err := a.api.GetUserReviews(ctx, s.User.ID)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	if len(reviews) == 0 {
		fmt.Fprintln(a.out, "You have not written any reviews yet.")
		return nil
	}
	for _, r := range reviews {
		title := "?"
		if r.Movie != nil {
			title = r.Movie.Title
		}
		fmt.Fprintf(a.out, "%s  %s %s\n  %s\n", r.ID, title, stars(r.Rating), r.Comment)
	}
	return nil
}
