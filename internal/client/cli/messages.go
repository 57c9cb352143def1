package cli

import (
	"errors"

	"github.com/careercompass/careercompass/internal/client/session"
	"github.com/careercompass/careercompass/internal/common"
)

// userMessage turns an operation failure into the line shown to the user,
// keeping "bad input", "server said no", "unreachable", and "timed out"
// clearly distinguishable.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrTimeout):
		return "Request timed out. Please try again."
	case errors.Is(err, common.ErrUnavailable):
		return "Cannot reach the server. Check your connection and try again."
	case errors.Is(err, common.ErrNoActiveSession):
		return "You need to log in first."
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, common.ErrAuthentication):
		return "Invalid email or password."
	case errors.Is(err, session.ErrSuperseded):
		return "The session changed while the request was running; please retry."
	case errors.Is(err, common.ErrSignup),
		errors.Is(err, common.ErrProfileUpdate),
		errors.Is(err, common.ErrUpload):
		return err.Error()
	default:
		return "Something went wrong: " + err.Error()
	}
}
