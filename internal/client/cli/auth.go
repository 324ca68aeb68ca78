package cli

import (
	"context"
	"errors"
	"os"

	"github.com/skybrief/skybrief/internal/common"
)

// Login prompts for email and password and opens a session. The profile and
// dashboard load as a consequence of the credential change, so on success
// the handler only confirms.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in. Use 'logout' first.")
		return nil
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.orch.Session.Login(ctx, email, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrAuthentication):
			printlnFn("Invalid email or password.")
		case errors.Is(err, common.ErrTransport):
			printlnFn("Could not reach the briefing service. Check your connection and try again.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn("Logged in.")
	return nil
}

// Register prompts for name, email and password, creates the account and
// starts a session with the returned credential.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in. Use 'logout' first.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.orch.Session.Register(ctx, name, email, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrRegistration):
			printlnFn("Registration was rejected:", err.Error())
		case errors.Is(err, common.ErrTransport):
			printlnFn("Could not reach the briefing service. Check your connection and try again.")
		default:
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn("Account created, you are logged in.")
	return nil
}

// Logout ends the session locally. Everything downstream resets through the
// credential-change chain.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	if err := a.orch.Session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out.")
	return nil
}
