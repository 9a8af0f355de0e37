// Package cli implements the interactive calendar client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gocalendar/internal/client/api"
)

// Client is the server surface the app needs.
type Client interface {
	Register(ctx context.Context, email, password string) (api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (api.AuthResponse, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (api.User, error)
	List(ctx context.Context) ([]api.Entry, error)
	Create(ctx context.Context, in api.EntryInput) (api.Entry, error)
	Update(ctx context.Context, id uuid.UUID, in api.EntryInput) (api.Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetToken(token string)
	Token() string
}

// App is a line-oriented calendar client.
type App struct {
	client Client
	tokens *TokenStore
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	email   string
	entries []api.Entry
}

// NewApp creates an App and restores a saved session, if any.
func NewApp(client Client, tokens *TokenStore, in io.Reader, out io.Writer) (*App, error) {
	a := &App{
		client: client,
		tokens: tokens,
		reader: bufio.NewReader(in),
		out:    out,
		now:    time.Now,
	}

	token, err := tokens.Load()
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	return a, nil
}

func (a *App) loggedIn() bool {
	return a.client.Token() != ""
}

func (a *App) status() string {
	switch {
	case !a.loggedIn():
		return "guest"
	case a.email != "":
		return a.email
	default:
		return "signed in"
	}
}

func (a *App) Register(ctx context.Context) error {
	return a.authenticate(ctx, a.client.Register, "Registered")
}

func (a *App) Login(ctx context.Context) error {
	return a.authenticate(ctx, a.client.Login, "Logged in")
}

func (a *App) authenticate(ctx context.Context, call func(context.Context, string, string) (api.AuthResponse, error), done string) error {
	email, err := prompt(a.reader, a.out, "Email")
	if err != nil {
		return err
	}
	pw, err := promptPassword(a.out)
	if err != nil {
		return err
	}

	resp, err := call(ctx, email, pw)
	if err != nil {
		return a.report(err)
	}
	a.email = resp.User.Email
	a.entries = nil

	if err := a.tokens.Save(resp.Token); err != nil {
		fmt.Fprintln(a.out, "Warning:", err)
	}
	fmt.Fprintf(a.out, "%s as %s\n", done, resp.User.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.client.Logout(ctx)
	a.email = ""
	a.entries = nil
	if clearErr := a.tokens.Clear(); clearErr != nil {
		fmt.Fprintln(a.out, "Warning:", clearErr)
	}
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	u, err := a.client.Me(ctx)
	if err != nil {
		return a.report(err)
	}
	a.email = u.Email
	fmt.Fprintf(a.out, "%s (%d logins, %d logouts)\n", u.Email, len(u.LoginHistory), len(u.LogoutHistory))
	if n := len(u.LoginHistory); n > 0 {
		fmt.Fprintln(a.out, "Last login:", u.LoginHistory[n-1].Local().Format(time.RFC1123))
	}
	return nil
}

func (a *App) refresh(ctx context.Context) error {
	entries, err := a.client.List(ctx)
	if err != nil {
		return a.report(err)
	}
	a.entries = entries
	return nil
}

// List prints all entries, numbered for use with edit and delete.
func (a *App) List(ctx context.Context) error {
	if err := a.refresh(ctx); err != nil {
		return err
	}
	if len(a.entries) == 0 {
		fmt.Fprintln(a.out, "No entries")
		return nil
	}
	for i, e := range a.entries {
		a.printEntry(i+1, e)
	}
	return nil
}

// Month renders the grid for arg (YYYY-MM) or the current month.
func (a *App) Month(ctx context.Context, arg string) error {
	month := a.now()
	if arg != "" {
		m, err := time.Parse("2006-01", arg)
		if err != nil {
			fmt.Fprintln(a.out, "Month must look like 2024-03")
			return err
		}
		month = m
	}
	if err := a.refresh(ctx); err != nil {
		return err
	}
	RenderMonth(a.out, month, a.entries)
	return nil
}

// Day prints entries on arg (YYYY-MM-DD).
func (a *App) Day(ctx context.Context, arg string) error {
	day, err := time.Parse("2006-01-02", arg)
	if err != nil {
		fmt.Fprintln(a.out, "Day must look like 2024-03-01")
		return err
	}
	if err := a.refresh(ctx); err != nil {
		return err
	}
	found := false
	for i, e := range a.entries {
		if sameDay(e.Date, day) {
			a.printEntry(i+1, e)
			found = true
		}
	}
	if !found {
		fmt.Fprintln(a.out, "No entries on", arg)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	in, err := a.readEntry(api.EntryInput{Email: a.email, Date: a.now().Format("2006-01-02")})
	if err != nil {
		return err
	}
	e, err := a.client.Create(ctx, in)
	if err != nil {
		return a.report(err)
	}
	a.entries = nil
	fmt.Fprintf(a.out, "Created entry for %s\n", e.Date.UTC().Format("2006-01-02"))
	return nil
}

func (a *App) Edit(ctx context.Context, ref string) error {
	e, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}
	in, err := a.readEntry(api.EntryInput{
		Email:       e.Email,
		Date:        e.Date.UTC().Format("2006-01-02"),
		Description: e.Description,
	})
	if err != nil {
		return err
	}
	if _, err := a.client.Update(ctx, e.ID, in); err != nil {
		return a.report(err)
	}
	a.entries = nil
	fmt.Fprintln(a.out, "Entry updated")
	return nil
}

func (a *App) Delete(ctx context.Context, ref string) error {
	e, err := a.resolve(ctx, ref)
	if err != nil {
		return err
	}
	if err := a.client.Delete(ctx, e.ID); err != nil {
		return a.report(err)
	}
	a.entries = nil
	fmt.Fprintln(a.out, "Entry deleted")
	return nil
}

func (a *App) readEntry(def api.EntryInput) (api.EntryInput, error) {
	var in api.EntryInput
	var err error
	if in.Date, err = promptDefault(a.reader, a.out, "Date (YYYY-MM-DD)", def.Date); err != nil {
		return in, err
	}
	if in.Email, err = promptDefault(a.reader, a.out, "Notify email", def.Email); err != nil {
		return in, err
	}
	if def.Description != "" {
		in.Description, err = promptDefault(a.reader, a.out, "Description", def.Description)
	} else {
		in.Description, err = prompt(a.reader, a.out, "Description")
	}
	return in, err
}

// resolve accepts a number from the last listing or an entry ID.
func (a *App) resolve(ctx context.Context, ref string) (api.Entry, error) {
	if ref == "" {
		fmt.Fprintln(a.out, "Give an entry number from 'list' or an entry ID")
		return api.Entry{}, errors.New("missing entry reference")
	}
	if a.entries == nil {
		if err := a.refresh(ctx); err != nil {
			return api.Entry{}, err
		}
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(a.entries) {
			fmt.Fprintln(a.out, "No entry number", n)
			return api.Entry{}, fmt.Errorf("entry number %d out of range", n)
		}
		return a.entries[n-1], nil
	}

	id, err := uuid.Parse(ref)
	if err != nil {
		fmt.Fprintln(a.out, "Not an entry number or ID:", ref)
		return api.Entry{}, err
	}
	return api.Entry{ID: id}, nil
}

func (a *App) printEntry(n int, e api.Entry) {
	fmt.Fprintf(a.out, "%3d. %s  %s  -> %s\n", n, e.Date.UTC().Format("2006-01-02"), e.Description, e.Email)
}

// report prints err for the user and returns it.
func (a *App) report(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status == 401 && a.loggedIn() {
		a.client.SetToken("")
		_ = a.tokens.Clear()
		fmt.Fprintln(a.out, "Session expired, please log in again")
		return err
	}
	fmt.Fprintln(a.out, "Error:", strings.TrimSpace(err.Error()))
	return err
}
