// Package api implements the CareerCompass remote-API client: a stateless
// HTTP/JSON translator for login, signup, profile update, and the multipart
// CV upload. Session state and persistence live in the session package; the
// api client only maps requests and responses and classifies failures into
// the shared error taxonomy.
package api
