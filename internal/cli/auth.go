package cli

import (
	"context"
	"os"

	"bingotrack/internal/models"
	"bingotrack/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email and password and submits a registration
// attempt. A fresh account always needs verification, so on success the flow
// moves to code entry and the user is told to run "verify".
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.SubmitCredentials(ctx, false, name, email, string(password)); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Account created. A verification code was emailed to you; run 'verify' to enter it.")
	return nil
}

// Login prompts for credentials and tries to authenticate. An unverified
// account moves the flow to code entry instead of failing.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.SubmitCredentials(ctx, true, "", email, string(password)); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	switch a.session.Stage() {
	case services.StageCodeEntry:
		printlnFn("Your account is not verified. Run 'verify' to enter the emailed code.")
	case services.StageAuthenticated:
		printlnFn("Welcome,", a.session.Session().Name)
		return a.Refresh(ctx)
	}
	return nil
}

// Verify prompts for the 6-digit code. On success the stored credentials are
// replayed to open the session, and the collection is fetched right away.
func (a *App) Verify(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter the 6-digit verification code", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.SubmitCode(ctx, code); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Welcome,", a.session.Session().Name)
	return a.Refresh(ctx)
}

// Resend asks the backend for a fresh verification code. With a verification
// pending the stored email is reused, otherwise the user is prompted.
func (a *App) Resend(ctx context.Context) error {
	email := a.session.PendingEmail()
	if email == "" {
		var err error
		email, err = getSimpleText(a.reader, "Enter email", os.Stdout)
		if err != nil {
			return err
		}
	}

	msg, err := a.session.ResendCode(ctx, email)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(msg)
	return nil
}

// Logout drops the session and the fetched collection. Nothing is sent to the
// backend; the session is client-side only.
func (a *App) Logout(ctx context.Context) error {
	a.session.Reset()
	a.records = nil
	a.filter = models.EmptyFilter()
	a.sortBy = models.DefaultSort()
	printlnFn("Logged out.")
	return nil
}
