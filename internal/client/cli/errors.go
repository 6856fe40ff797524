package cli

import (
	"errors"
	"fmt"

	"github.com/povreview/povcli/internal/client/api"
)

// printAPIError renders a failed backend call for the user: 401 suggests
// logging in again (the terminal counterpart of the web client's redirect),
// 403 is a flat denial, anything else shows the backend's message when
// there is one.
func (a *App) printAPIError(err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Your session has expired or you are not logged in. Use 'login' to continue.")
	case errors.Is(err, api.ErrForbidden):
		fmt.Fprintln(a.out, "Access denied.")
	default:
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			fmt.Fprintln(a.out, "Error:", apiErr.Message)
			return
		}
		fmt.Fprintln(a.out, "Something went wrong. Please try again.")
	}
}
