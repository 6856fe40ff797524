package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ListMovies(ctx context.Context) error
	ShowMovie(ctx context.Context, id string) error
	AddMovie(ctx context.Context) error
	EditMovie(ctx context.Context, id string) error
	DeleteMovie(ctx context.Context, id string) error
	ListReviews(ctx context.Context, movieID string) error
	AddReview(ctx context.Context) error
	EditReview(ctx context.Context, id string) error
	DeleteReview(ctx context.Context, id string) error
	MyReviews(ctx context.Context) error
	ListUsers(ctx context.Context) error
	ShowUser(ctx context.Context, id string) error
	UpdateRoles(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

// runREPL starts a read–eval–print loop for the povcli client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("povcli> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			printHelp(a)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "movies":
			_ = a.ListMovies(ctx)

		case "movie":
			if arg == "" {
				printlnFn("Usage: movie <id>")
				continue
			}
			_ = a.ShowMovie(ctx, arg)

		case "addmovie":
			_ = a.AddMovie(ctx)

		case "editmovie":
			if arg == "" {
				printlnFn("Usage: editmovie <id>")
				continue
			}
			_ = a.EditMovie(ctx, arg)

		case "delmovie":
			if arg == "" {
				printlnFn("Usage: delmovie <id>")
				continue
			}
			_ = a.DeleteMovie(ctx, arg)

		case "reviews":
			if arg == "" {
				printlnFn("Usage: reviews <movie-id>")
				continue
			}
			_ = a.ListReviews(ctx, arg)

		case "addreview":
			_ = a.AddReview(ctx)

		case "editreview":
			if arg == "" {
				printlnFn("Usage: editreview <id>")
				continue
			}
			_ = a.EditReview(ctx, arg)

		case "delreview":
			if arg == "" {
				printlnFn("Usage: delreview <id>")
				continue
			}
			_ = a.DeleteReview(ctx, arg)

		case "myreviews":
			_ = a.MyReviews(ctx)

		case "users":
			_ = a.ListUsers(ctx)

		case "user":
			if arg == "" {
				printlnFn("Usage: user <id>")
				continue
			}
			_ = a.ShowUser(ctx, arg)

		case "roles":
			if arg == "" {
				printlnFn("Usage: roles <user-id>")
				continue
			}
			_ = a.UpdateRoles(ctx, arg)

		case "deluser":
			if arg == "" {
				printlnFn("Usage: deluser <id>")
				continue
			}
			_ = a.DeleteUser(ctx, arg)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Browse: movies, movie <id>, reviews <movie-id>")
	if !a.isLoggedIn() {
		printlnFn("Account: login, register, exit")
		return
	}
	printlnFn("Account: whoami, logout, exit")
	printlnFn("Reviews: addreview, editreview <id>, delreview <id>, myreviews")
	if a.isAdmin() {
		printlnFn("Catalog: addmovie, editmovie <id>, delmovie <id>")
		printlnFn("Users: users, user <id>, roles <user-id>, deluser <id>")
	}
}
