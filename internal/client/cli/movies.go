package cli

import (
	"context"
	"fmt"

	"github.com/povreview/povcli/internal/client/authz"
	"github.com/povreview/povcli/internal/client/models"
)

// ListMovies prints the whole catalog. Public.
func (a *App) ListMovies(ctx context.Context) error {
	movies, err := a.api.GetMovies(ctx)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	if len(movies) == 0 {
		fmt.Fprintln(a.out, "No movies yet.")
		return nil
	}
	for _, m := range movies {
		fmt.Fprintf(a.out, "%s  %s (%s, %d) by %s\n", m.ID, m.Title, m.Genre, m.ReleaseDate.Year(), m.Director)
	}
	return nil
}

// ShowMovie prints one movie with its reviews. Public.
func (a *App) ShowMovie(ctx context.Context, id string) error {
	m, err := a.api.GetMovie(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintf(a.out, "%s (%s, %d)\nDirected by %s\n%s\n", m.Title, m.Genre, m.ReleaseDate.Year(), m.Director, m.Description)
	return a.ListReviews(ctx, id)
}

// promptMovieFields collects the movie form. Empty answers keep the
// provided defaults, making the same prompt usable for create and edit.
func (a *App) promptMovieFields(defaults models.Movie) (models.CreateMovieInput, error) {
	var in models.CreateMovieInput
	var err error

	if in.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return in, err
	}
	if in.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return in, err
	}
	if in.Director, err = getSimpleText(a.reader, "Director", a.out); err != nil {
		return in, err
	}
	if in.ReleaseDate, err = getSimpleText(a.reader, "Release date (YYYY-MM-DD)", a.out); err != nil {
		return in, err
	}
	genre, err := getSimpleText(a.reader, fmt.Sprintf("Genre %v", models.Genres()), a.out)
	if err != nil {
		return in, err
	}
	in.Genre = models.Genre(genre)

	if in.Title == "" {
		in.Title = defaults.Title
	}
	if in.Description == "" {
		in.Description = defaults.Description
	}
	if in.Director == "" {
		in.Director = defaults.Director
	}
	if in.ReleaseDate == "" && !defaults.ReleaseDate.IsZero() {
		in.ReleaseDate = defaults.ReleaseDate.Format("2006-01-02")
	}
	if in.Genre == "" {
		in.Genre = defaults.Genre
	}
	return in, nil
}

// AddMovie creates a catalog entry. Gated: admin only; the request is
// never issued for a session the policy rejects.
func (a *App) AddMovie(ctx context.Context) error {
	if !authz.CanCreateMovie(a.session.Snapshot()) {
		fmt.Fprintln(a.out, "Only administrators can add movies.")
		return nil
	}

	in, err := a.promptMovieFields(models.Movie{})
	if err != nil {
		return err
	}
	if err := models.Validate(in); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	m, err := a.api.CreateMovie(ctx, in)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintf(a.out, "Created %q (%s)\n", m.Title, m.ID)
	return nil
}

// EditMovie updates a catalog entry. Gated: admin only.
func (a *App) EditMovie(ctx context.Context, id string) error {
	if !authz.CanEditMovie(a.session.Snapshot()) {
		fmt.Fprintln(a.out, "Only administrators can edit movies.")
		return nil
	}

	current, err := a.api.GetMovie(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintln(a.out, "Leave a field empty to keep its current value.")
	in, err := a.promptMovieFields(*current)
	if err != nil {
		return err
	}
	if err := models.Validate(in); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	update := models.UpdateMovieInput{
		Title:       in.Title,
		Description: in.Description,
		Director:    in.Director,
		ReleaseDate: in.ReleaseDate,
		Genre:       in.Genre,
	}
	m, err := a.api.UpdateMovie(ctx, id, update)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintf(a.out, "Updated %q\n", m.Title)
	return nil
}

// DeleteMovie removes a catalog entry. Gated: admin only.
func (a *App) DeleteMovie(ctx context.Context, id string) error {
	if !authz.CanDeleteMovie(a.session.Snapshot()) {
		fmt.Fprintln(a.out, "Only administrators can delete movies.")
		return nil
	}

	confirm, err := getSimpleText(a.reader, "Type 'yes' to delete movie "+id, a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.DeleteMovie(ctx, id); err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
