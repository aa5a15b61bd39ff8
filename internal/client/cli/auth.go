package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/tokeninfo"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// now is swapped in tests that check token expiry output.
var now = time.Now

// Register prompts for username, email and password and creates an account.
// It does not sign in: the user is pointed at login afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	_, err = a.session.Register(ctx, models.RegisterRequest{
		Username: username,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintln(a.out, "Registration successful. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and signs in. On success it continues to
// the page a guard redirect was holding, or to the home page.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		return nil
	}
	next := a.pending

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.session.Login(ctx, models.Credentials{Username: username, Password: string(password)})
	if err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", resp.User.Username)
	if next == "" {
		next = "/"
	}
	return a.Navigate(ctx, next)
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	a.session.Logout(ctx)
	a.pending = ""
	fmt.Fprintln(a.out, "Logged out.")
	return a.Navigate(ctx, "/")
}

// WhoAmI prints the profile held in memory and what the token says about
// itself. After a restart only the token is known.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "User:  %s (id %d)\n", u.Username, u.ID)
		if u.Email != "" {
			fmt.Fprintf(a.out, "Email: %s\n", u.Email)
		}
		if u.Role != "" {
			fmt.Fprintf(a.out, "Role:  %s\n", u.Role)
		}
	} else {
		fmt.Fprintln(a.out, a.styles.muted.Render("Profile not loaded in this run."))
	}

	info, err := tokeninfo.Inspect(a.session.Token())
	if err != nil {
		a.logger.Debug(ctx, "token not inspectable", "error", err)
		fmt.Fprintln(a.out, "Token: opaque")
		return nil
	}
	if info.Subject != "" {
		fmt.Fprintf(a.out, "Token subject: %s\n", info.Subject)
	}
	if !info.ExpiresAt.IsZero() {
		state := "valid"
		if info.Expired(now()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "Token expires: %s (%s)\n", info.ExpiresAt.UTC().Format(time.RFC3339), state)
	}
	return nil
}
