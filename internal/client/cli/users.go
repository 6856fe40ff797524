package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/povreview/povcli/internal/client/api"
	"github.com/povreview/povcli/internal/client/authz"
	"github.com/povreview/povcli/internal/client/models"
)

// ListUsers prints the user roster, paged. Gated: admin only.
func (a *App) ListUsers(ctx context.Context) error {
	if !authz.CanViewUsers(a.session.Snapshot()) {
		fmt.Fprintln(a.out, "Only administrators can view users.")
		return nil
	}

	limit, offset := api.DefaultUsersLimit, api.DefaultUsersOffset
	if text, err := getSimpleText(a.reader, "Page size (empty for default)", a.out); err == nil && text != "" {
		if n, convErr := strconv.Atoi(text); convErr == nil && n > 0 {
			limit = n
		}
	}

	users, err := a.api.GetUsers(ctx, limit, offset)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	for _, u := range users {
		active := "active"
		if !u.IsActive {
			active = "inactive"
		}
		fmt.Fprintf(a.out, "%s  %s <%s> roles=%v %s\n", u.ID, u.Name, u.Email, u.Roles, active)
	}
	return nil
}

// ShowUser prints one user and their reviews. Gated: admin only.
func (a *App) ShowUser(ctx context.Context, id string) error {
	if !authz.CanViewUsers(a.session.Snapshot()) {
		fmt.Fprintln(a.out, "Only administrators can view users.")
		return nil
	}

	u, err := a.api.GetUser(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> roles=%v joined=%s\n", u.Name, u.Email, u.Roles, u.CreatedAt.Format("2006-01-02"))

	reviews, err := a.api.GetUserReviews(ctx, id)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintf(a.out, "%d review(s)\n", len(reviews))
	return nil
}

// UpdateRoles replaces a user's role set. Gated: admin only.
func (a *App) UpdateRoles(ctx context.Context, id string) error {
	if !authz.CanViewUsers(a.session.Snapshot()) {
		fmt.Fprintln(a.out, "Only administrators can manage roles.")
		return nil
	}

	text, err := getSimpleText(a.reader, "Roles, comma separated (admin,user)", a.out)
	if err != nil {
		return err
	}

	var roles []models.Role
	for _, part := range strings.Split(text, ",") {
		role := models.Role(strings.TrimSpace(part))
		if role == "" {
			continue
		}
		if !role.Valid() {
			fmt.Fprintf(a.out, "Unknown role %q; known roles: admin, user\n", role)
			return nil
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		fmt.Fprintln(a.out, "No roles given; nothing changed.")
		return nil
	}

	u, err := a.api.UpdateUserRoles(ctx, id, roles)
	if err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintf(a.out, "%s now has roles %v\n", u.Name, u.Roles)
	return nil
}

// DeleteUser removes a user. Gated: admin only.
func (a *App) DeleteUser(ctx context.Context, id string) error {
	if !authz.CanViewUsers(a.session.Snapshot()) {
		fmt.Fprintln(a.out, "Only administrators can delete users.")
		return nil
	}

	confirm, err := getSimpleText(a.reader, "Type 'yes' to delete user "+id, a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.api.DeleteUser(ctx, id); err != nil {
		a.printAPIError(err)
		return err
	}
	fmt.Fprintln(a.out, "User deleted.")
	return nil
}
