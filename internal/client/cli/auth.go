package cli

import (
	"context"
	"fmt"

	"github.com/povreview/povcli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

type registerForm struct {
	Name     string `validate:"required,min=2"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// Login prompts for credentials and authenticates through the session
// store. The form is validated locally before any request is issued; on
// backend failure the session stays untouched and the error is shown.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := models.Validate(loginForm{Email: email, Password: password}); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.Snapshot().User.Name)
	return nil
}

// Register prompts for a name, email and password and creates an account.
// A successful registration leaves the user logged in, as the register
// response carries both token and profile.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	if err := models.Validate(registerForm{Name: name, Email: email, Password: password}); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	if err := a.session.Register(ctx, name, email, password); err != nil {
		a.printAPIError(err)
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", name)
	return nil
}

// Logout clears the session and the durable token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current identity, roles, and token expiry when the
// token carries a readable exp claim.
func (a *App) Whoami(ctx context.Context) error {
	s := a.session.Snapshot()
	if !s.IsAuthenticated || s.User == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> roles=%v\n", s.User.Name, s.User.Email, s.User.Roles)
	if exp, ok := a.session.TokenExpiresAt(); ok {
		fmt.Fprintf(a.out, "Session valid until %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
