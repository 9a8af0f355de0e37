package cli

import (
	"context"
	"fmt"
	"strings"
)

const (
	guestHelp  = "Commands: register, login, help, quit"
	memberHelp = "Commands: month [YYYY-MM], list, day YYYY-MM-DD, add, edit N|ID, delete N|ID, whoami, logout, help, quit"
)

// Run reads commands until EOF or quit.
func (a *App) Run(ctx context.Context) {
	for {
		fmt.Fprintf(a.out, "cal %s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(a.out)
			return
		}
		if !a.exec(ctx, strings.Fields(line)) {
			return
		}
	}
}

// exec runs one command and reports whether the loop should continue.
// Command errors are already printed by the handlers.
func (a *App) exec(ctx context.Context, parts []string) bool {
	if len(parts) == 0 {
		return true
	}
	cmd, arg := parts[0], ""
	if len(parts) > 1 {
		arg = parts[1]
	}

	switch cmd {
	case "quit", "exit":
		fmt.Fprintln(a.out, "Bye!")
		return false
	case "help":
		if a.loggedIn() {
			fmt.Fprintln(a.out, memberHelp)
		} else {
			fmt.Fprintln(a.out, guestHelp)
		}
		return true
	case "register":
		_ = a.Register(ctx)
		return true
	case "login":
		_ = a.Login(ctx)
		return true
	}

	if !a.loggedIn() {
		fmt.Fprintln(a.out, "Please login or register first")
		return true
	}

	switch cmd {
	case "month", "m":
		_ = a.Month(ctx, arg)
	case "list", "l":
		_ = a.List(ctx)
	case "day":
		_ = a.Day(ctx, arg)
	case "add":
		_ = a.Add(ctx)
	case "edit":
		_ = a.Edit(ctx, arg)
	case "delete", "rm":
		_ = a.Delete(ctx, arg)
	case "whoami":
		_ = a.Whoami(ctx)
	case "logout":
		_ = a.Logout(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return true
}
