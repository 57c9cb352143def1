// Package models defines the canonical user record exchanged between the
// CareerCompass API client, the session store, and the provider, plus the
// validation rules applied before a record is sent to the server.
package models

import (
	"fmt"
	"time"

	"github.com/careercompass/careercompass/internal/common"
)

// BirthDateLayout is the calendar-date format used across the API.
const BirthDateLayout = "2006-01-02"

// Age window accepted at signup and profile update, inclusive at both edges.
const (
	MinAgeYears = 10
	MaxAgeYears = 90
)

// User is the canonical, server-naming-independent shape of the
// authenticated principal. ID and Email are immutable after creation; the
// remaining fields may be updated independently. A User is only ever built
// fully populated from a server response or a stored session entry.
type User struct {
	ID               string `json:"_id"`
	Email            string `json:"email"`
	DisplayName      string `json:"displayName"`
	BirthDate        string `json:"birthDate"`
	ConsentData      bool   `json:"consent_data"`
	MarketingConsent bool   `json:"marketing_consent_data"`
}

// Clone returns an independent copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// ProfileUpdate carries the fields a profile update may change. Nil means
// "leave unchanged"; the immutable email is supplied separately as the
// lookup key.
type ProfileUpdate struct {
	DisplayName      *string `json:"displayName,omitempty"`
	BirthDate        *string `json:"birthDate,omitempty"`
	Password         *string `json:"password,omitempty"`
	ConsentData      *bool   `json:"consent_data,omitempty"`
	MarketingConsent *bool   `json:"marketing_consent_data,omitempty"`
}

// Empty reports whether the update changes nothing.
func (p *ProfileUpdate) Empty() bool {
	return p.DisplayName == nil && p.BirthDate == nil && p.Password == nil &&
		p.ConsentData == nil && p.MarketingConsent == nil
}

// ApplyTo merges the server-confirmed patch onto the prior record and
// returns the result. Fields absent from the patch keep their previous
// values; ID and Email are never touched.
func (p *ProfileUpdate) ApplyTo(prev *User) *User {
	next := prev.Clone()
	if p.DisplayName != nil {
		next.DisplayName = *p.DisplayName
	}
	if p.BirthDate != nil {
		next.BirthDate = *p.BirthDate
	}
	if p.ConsentData != nil {
		next.ConsentData = *p.ConsentData
	}
	if p.MarketingConsent != nil {
		next.MarketingConsent = *p.MarketingConsent
	}
	return next
}

// SignupRequest is the client-side shape of an account creation request.
type SignupRequest struct {
	Email            string
	Password         string
	DisplayName      string
	BirthDate        string
	ConsentData      bool
	MarketingConsent bool
}

// Validate checks the request before it is sent: all required fields
// present, data-processing consent given, birth date inside the accepted
// age window. Marketing consent is optional.
func (r *SignupRequest) Validate(now time.Time) error {
	if r.Email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if r.Password == "" {
		return fmt.Errorf("%w: password is required", common.ErrValidation)
	}
	if r.DisplayName == "" {
		return fmt.Errorf("%w: display name is required", common.ErrValidation)
	}
	if !r.ConsentData {
		return fmt.Errorf("%w: data processing consent is required", common.ErrValidation)
	}
	return ValidateBirthDate(r.BirthDate, now)
}

// ValidateBirthDate accepts a YYYY-MM-DD date whose age at now is between
// MinAgeYears and MaxAgeYears, both inclusive: exactly 10 years old passes,
// one day younger fails; exactly 90 years old passes, one day older fails.
func ValidateBirthDate(value string, now time.Time) error {
	birth, err := time.Parse(BirthDateLayout, value)
	if err != nil {
		return fmt.Errorf("%w: invalid birth date %q", common.ErrValidation, value)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	latest := today.AddDate(-MinAgeYears, 0, 0)   // youngest allowed
	earliest := today.AddDate(-MaxAgeYears, 0, 0) // oldest allowed

	if birth.After(latest) || birth.Before(earliest) {
		return fmt.Errorf("%w: birth date must be between %d and %d years from today", common.ErrValidation, MinAgeYears, MaxAgeYears)
	}
	return nil
}
