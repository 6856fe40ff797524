package api

import (
	"context"

	"github.com/google/go-querystring/query"
	"github.com/povreview/povcli/internal/client/models"
)

// Users list pagination defaults, matching the roster page's.
const (
	DefaultUsersLimit  = 10
	DefaultUsersOffset = 1
)

type usersListOptions struct {
	Limit  int `url:"limit"`
	Offset int `url:"offset"`
}

type updateRolesRequest struct {
	Roles []models.Role `json:"roles"`
}

// GetUsers lists the user roster, paged. Admin only. A non-positive limit
// or offset falls back to its default independently.
func (c *Client) GetUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if limit <= 0 {
		limit = DefaultUsersLimit
	}
	if offset <= 0 {
		offset = DefaultUsersOffset
	}
	qs, err := query.Values(usersListOptions{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := c.get(ctx, "users?"+qs.Encode(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser fetches a single user by id. Admin only.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, "users/"+id, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUserRoles replaces a user's role set. Admin only.
func (c *Client) UpdateUserRoles(ctx context.Context, id string, roles []models.Role) (*models.User, error) {
	var u models.User
	if err := c.patch(ctx, "users/"+id+"/roles", updateRolesRequest{Roles: roles}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser partially updates a user's profile.
func (c *Client) UpdateUser(ctx context.Context, id string, in models.UpdateUserInput) (*models.User, error) {
	var u models.User
	if err := c.patch(ctx, "users/"+id, in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a user. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "users/"+id)
}
