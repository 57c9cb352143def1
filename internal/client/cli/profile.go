package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/careercompass/careercompass/internal/client/models"
	"github.com/careercompass/careercompass/internal/client/session"
)

// Whoami prints the current user record, or a hint when anonymous.
func (a *App) Whoami(ctx context.Context) error {
	if a.gate.Decide() != session.Allow {
		printlnFn("Not logged in. Use 'login' or 'signup'.")
		return nil
	}

	u := a.provider.CurrentUser()
	printlnFn(fmt.Sprintf("%s <%s>", u.DisplayName, u.Email))
	printlnFn("  born:", u.BirthDate)
	printlnFn("  data processing consent:", u.ConsentData)
	printlnFn("  marketing consent:", u.MarketingConsent)
	return nil
}

// Profile interactively edits the mutable profile fields. Only the fields
// the user actually changed are sent; everything left at its current value
// stays untouched on the server.
func (a *App) Profile(ctx context.Context) error {
	if a.gate.Decide() != session.Allow {
		printlnFn("Not logged in. Use 'login' or 'signup'.")
		return nil
	}

	current := a.provider.CurrentUser()
	update := &models.ProfileUpdate{}

	displayName, err := GetOptionalText(a.reader, "Display name", current.DisplayName, os.Stdout)
	if err != nil {
		return err
	}
	if displayName != current.DisplayName {
		update.DisplayName = &displayName
	}

	birthDate, err := GetOptionalText(a.reader, "Birth date", current.BirthDate, os.Stdout)
	if err != nil {
		return err
	}
	if birthDate != current.BirthDate {
		update.BirthDate = &birthDate
	}

	changeMarketing, err := getYesNo(a.reader, fmt.Sprintf("Marketing consent is %v. Change it?", current.MarketingConsent), os.Stdout)
	if err != nil {
		return err
	}
	if changeMarketing {
		flipped := !current.MarketingConsent
		update.MarketingConsent = &flipped
	}

	if update.Empty() {
		printlnFn("No changes to update.")
		return nil
	}

	user, err := a.provider.UpdateProfile(ctx, update)
	if err != nil {
		printlnFn(userMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Profile updated: %s, born %s", user.DisplayName, user.BirthDate))
	return nil
}
