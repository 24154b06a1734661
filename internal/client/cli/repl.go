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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Kinds(ctx context.Context) error
	List(ctx context.Context, kind string) error
	Search(ctx context.Context, kind, query string) error
	Show(ctx context.Context, kind, id string) error
	Add(ctx context.Context, kind string) error
}

// runREPL starts a simple read–eval–print loop for the VMIS CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user types
// "exit" or "quit".
//
//	Not logged in:
//	  - help                      - show available commands
//	  - register                  - create an account
//	  - login                     - authenticate
//	  - kinds                     - list resource kinds
//	  - exit | quit               - leave the program
//
//	Logged in, additionally:
//	  - dashboard                 - aggregate counts
//	  - (l)ist <kind>             - reload and print a list
//	  - search <kind> <query...>  - filter the loaded list locally
//	  - show <kind> <id>          - print one record
//	  - add <kind>                - fill in and submit a form
//	  - logout                    - log out
//
// Errors returned by command handlers are ignored here; handlers print their
// own notifications.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("vmis> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, kinds, (l)ist <kind>, search <kind> <query>, show <kind> <id>, add <kind>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, kinds, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "kinds":
			_ = a.Kinds(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "dashboard", "l", "list", "search", "show", "add", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			dispatch(ctx, a, cmd, args)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// dispatch runs a command that needs a session.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "dashboard":
		_ = a.Dashboard(ctx)

	case "l", "list":
		if len(args) != 1 {
			printlnFn("Usage: list <kind>")
			return
		}
		_ = a.List(ctx, args[0])

	case "search":
		if len(args) < 1 {
			printlnFn("Usage: search <kind> <query>")
			return
		}
		_ = a.Search(ctx, args[0], strings.Join(args[1:], " "))

	case "show":
		if len(args) != 2 {
			printlnFn("Usage: show <kind> <id>")
			return
		}
		_ = a.Show(ctx, args[0], args[1])

	case "add":
		if len(args) != 1 {
			printlnFn("Usage: add <kind>")
			return
		}
		_ = a.Add(ctx, args[0])

	case "logout":
		_ = a.Logout(ctx)
	}
}
