package cli

import (
	"context"
	"os"

	"bingotrack/internal/services"
)

// ResetPassword runs the full forgot-password flow in one command: request a
// code for the given email, then collect the code and the new password. On
// completion the user logs in again with the new password; nothing about the
// session changes here.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	flow := services.NewPasswordResetFlow(a.api, a.logger)

	msg, err := flow.RequestCode(ctx, email)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(msg)

	code, err := getSimpleText(a.reader, "Enter the 6-digit reset code", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	msg, err = flow.SubmitNewPassword(ctx, email, code, string(password))
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(msg)
	printlnFn("You can now log in with the new password.")
	return nil
}
