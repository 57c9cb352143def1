// Package cli implements the interactive CareerCompass terminal client:
// a small REPL over the session provider with commands for signing up,
// logging in and out, inspecting and editing the profile, and uploading a
// CV. All session logic lives in the session package; this package only
// does prompting, dispatch, and user-facing messages.
package cli
