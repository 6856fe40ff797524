package models

import "time"

// Genre is a movie genre. The backend accepts only the values enumerated
// below; anything else is rejected with a validation error, so the client
// checks before sending.
type Genre string

const (
	GenreAction   Genre = "action"
	GenreComedy   Genre = "comedy"
	GenreDrama    Genre = "drama"
	GenreHorror   Genre = "horror"
	GenreRomance  Genre = "romance"
	GenreSciFi    Genre = "sci-fi"
	GenreThriller Genre = "thriller"
)

// Genres returns all known genres in display order.
func Genres() []Genre {
	return []Genre{
		GenreAction, GenreComedy, GenreDrama, GenreHorror,
		GenreRomance, GenreSciFi, GenreThriller,
	}
}

// Valid reports whether g is one of the known genres.
func (g Genre) Valid() bool {
	for _, known := range Genres() {
		if g == known {
			return true
		}
	}
	return false
}

// Movie is a catalog entry. Only admins may create, update or delete movies;
// the backend enforces this, the client merely gates the UI.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Director    string    `json:"director"`
	ReleaseDate time.Time `json:"releaseDate"`
	Genre       Genre     `json:"genre"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateMovieInput is the body for POST movies.
type CreateMovieInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Director    string `json:"director" validate:"required"`
	ReleaseDate string `json:"releaseDate" validate:"required"`
	Genre       Genre  `json:"genre" validate:"required,oneof=action comedy drama horror romance sci-fi thriller"`
}

// UpdateMovieInput is the body for PATCH movies/:id. All fields optional.
type UpdateMovieInput struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Director    string `json:"director,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	Genre       Genre  `json:"genre,omitempty" validate:"omitempty,oneof=action comedy drama horror romance sci-fi thriller"`
}
