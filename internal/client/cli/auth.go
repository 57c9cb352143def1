package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/careercompass/careercompass/internal/client/models"
	"github.com/careercompass/careercompass/internal/common"
)

// getSimpleText, getYesNo and getPassword are indirections used to
// facilitate testing. They point to the interactive input helpers and can
// be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getYesNo      = GetYesNo
	getPassword   = GetPassword
)

// Login prompts for credentials and authenticates through the provider.
// The password is wiped before returning. Failures are reported to the
// user with a message matching the failure kind.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.provider.Login(ctx, email, password)
	if err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.DisplayName))
	return nil
}

// Signup walks through account creation: email, password (twice), display
// name, birth date, and the two consent flags. Validation failures are
// reported before any network call.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match.")
		return common.ErrValidation
	}

	displayName, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	birthDate, err := getSimpleText(a.reader, "Enter birth date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	consent, err := getYesNo(a.reader, "Do you consent to the processing of your data?", os.Stdout)
	if err != nil {
		return err
	}

	marketing, err := getYesNo(a.reader, "May we send you career tips and updates?", os.Stdout)
	if err != nil {
		return err
	}

	req := &models.SignupRequest{
		Email:            email,
		Password:         string(password),
		DisplayName:      displayName,
		BirthDate:        birthDate,
		ConsentData:      consent,
		MarketingConsent: marketing,
	}

	user, err := a.provider.Signup(ctx, req)
	if err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", user.DisplayName))
	return nil
}

// Logout clears the session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	a.provider.Logout(ctx, "")
	printlnFn("Logged out.")
	return nil
}
