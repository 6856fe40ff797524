package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_HasRole(t *testing.T) {
	u := &User{Roles: []Role{RoleAdmin, RoleUser}}
	assert.True(t, u.HasRole(RoleAdmin))
	assert.True(t, u.HasRole(RoleUser))
	assert.True(t, u.IsAdmin())

	plain := &User{Roles: []Role{RoleUser}}
	assert.False(t, plain.IsAdmin())

	// typos must deny, never grant
	typo := &User{Roles: []Role{Role("Admin")}}
	assert.False(t, typo.IsAdmin())
}

func TestUser_NilSafePredicates(t *testing.T) {
	var u *User
	assert.False(t, u.HasRole(RoleAdmin))
	assert.False(t, u.IsAdmin())
}

func TestGenre_Valid(t *testing.T) {
	for _, g := range Genres() {
		assert.True(t, g.Valid(), string(g))
	}
	assert.False(t, Genre("western").Valid())
	assert.False(t, Genre("").Valid())
	assert.False(t, Genre("Sci-Fi").Valid())
}

func TestValidate_CreateReviewInput(t *testing.T) {
	ok := CreateReviewInput{Rating: 5, Comment: "a solid movie, worth a rewatch"}
	require.NoError(t, Validate(ok))

	err := Validate(CreateReviewInput{Rating: 6, Comment: "long enough comment"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be at most 5")

	err = Validate(CreateReviewInput{Rating: 0, Comment: "long enough comment"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rating is required")

	err = Validate(CreateReviewInput{Rating: 3, Comment: "too short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comment must be at least 10 characters")
}

func TestValidate_UpdateReviewInput_PartialAllowed(t *testing.T) {
	// empty update is valid: both fields optional
	require.NoError(t, Validate(UpdateReviewInput{}))
	require.NoError(t, Validate(UpdateReviewInput{Rating: 4}))

	require.Error(t, Validate(UpdateReviewInput{Comment: "short"}))
}

func TestValidate_CreateMovieInput(t *testing.T) {
	ok := CreateMovieInput{
		Title:       "Alien",
		Description: "In space no one can hear you scream.",
		Director:    "Ridley Scott",
		ReleaseDate: "1979-05-25",
		Genre:       GenreSciFi,
	}
	require.NoError(t, Validate(ok))

	bad := ok
	bad.Genre = "western"
	err := Validate(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "genre must be one of")

	missing := ok
	missing.Title = ""
	require.Error(t, Validate(missing))
}

func TestReview_JSONShape(t *testing.T) {
	data := []byte(`{
		"id": "r1",
		"rating": 4,
		"comment": "holds up well",
		"user": {"id": "u1", "name": "Ana", "email": "ana@example.com"},
		"movie": {"id": "m1", "title": "Alien"}
	}`)

	var r Review
	require.NoError(t, json.Unmarshal(data, &r))
	assert.Equal(t, "u1", r.User.ID)
	require.NotNil(t, r.Movie)
	assert.Equal(t, "Alien", r.Movie.Title)

	// movie is optional in movie-scoped listings
	var scoped Review
	require.NoError(t, json.Unmarshal([]byte(`{"id":"r2","rating":5,"comment":"great stuff here"}`), &scoped))
	assert.Nil(t, scoped.Movie)
}
