package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/careercompass/careercompass/internal/client/api"
	"github.com/careercompass/careercompass/internal/client/models"
	"github.com/careercompass/careercompass/internal/common"
	"github.com/careercompass/careercompass/internal/filex"
	"github.com/careercompass/careercompass/internal/logging"
)

// State is the provider's single session-state variable.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// ErrSuperseded is returned when an operation resolved after the session
// had already moved on (e.g. a slow login completing after logout). The
// late result is discarded and no state is mutated.
var ErrSuperseded = errors.New("operation superseded by a newer session change")

// DefaultRedirectTarget is where Logout points the caller when no explicit
// target is given.
const DefaultRedirectTarget = "/"

// Provider owns the in-memory session state and mediates every
// authenticated operation. It is the sole writer of the Store; the API
// client stays a pure request/response mapper.
//
// A Provider must be constructed with NewProvider and started with Start
// before any other method is called; using it earlier is a programming
// error and panics.
type Provider struct {
	api   api.Client
	store Store
	log   logging.Logger
	now   func() time.Time

	mu    sync.Mutex
	state State
	user  *models.User
	// gen increments on every applied transition; operations capture it
	// before the network round-trip and discard their result if it moved.
	gen uint64
}

func NewProvider(client api.Client, store Store, log logging.Logger) *Provider {
	return &Provider{
		api:   client,
		store: store,
		log:   log,
		now:   time.Now,
		state: StateUninitialized,
	}
}

// Start restores the session from the store: Uninitialized -> Loading ->
// Authenticated (valid record found) or Anonymous (absent or corrupt).
// The restore path performs no network call and lets no error escape.
func (p *Provider) Start(ctx context.Context) {
	p.mu.Lock()
	if p.state != StateUninitialized {
		p.mu.Unlock()
		panic("session: provider already started")
	}
	p.state = StateLoading
	p.mu.Unlock()

	user, err := p.store.Read(ctx)
	if err != nil {
		p.log.Error(ctx, "session restore failed, starting anonymous", "error", err)
		user = nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if user != nil {
		p.user = user
		p.state = StateAuthenticated
		p.log.Info(ctx, "session restored", "email", user.Email)
	} else {
		p.state = StateAnonymous
	}
	p.gen++
}

// Login authenticates against the remote API. On success the record is
// written through to the store and the state becomes Authenticated. On any
// failure the prior state and store are left untouched.
func (p *Provider) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	gen := p.beginOp()

	user, err := p.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := p.apply(ctx, gen, user); err != nil {
		return nil, err
	}
	p.log.Info(ctx, "logged in", "email", user.Email)
	return user.Clone(), nil
}

// Signup validates the request locally, creates the account remotely, and
// establishes the session exactly like a successful login.
func (p *Provider) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	gen := p.beginOp()

	if err := req.Validate(p.now()); err != nil {
		return nil, err
	}

	user, err := p.api.Signup(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := p.apply(ctx, gen, user); err != nil {
		return nil, err
	}
	p.log.Info(ctx, "signed up", "email", user.Email)
	return user.Clone(), nil
}

// UpdateProfile sends only the changed fields, keyed by the immutable
// email, and merges the server-confirmed patch onto the prior record.
// Fields not included in the update keep their previous values.
func (p *Provider) UpdateProfile(ctx context.Context, update *models.ProfileUpdate) (*models.User, error) {
	gen := p.beginOp()

	p.mu.Lock()
	if p.state != StateAuthenticated {
		p.mu.Unlock()
		return nil, fmt.Errorf("%w: %w", common.ErrProfileUpdate, common.ErrNoActiveSession)
	}
	prev := p.user.Clone()
	p.mu.Unlock()

	if update.Empty() {
		return nil, fmt.Errorf("%w: no changes to update", common.ErrValidation)
	}
	if update.BirthDate != nil {
		if err := models.ValidateBirthDate(*update.BirthDate, p.now()); err != nil {
			return nil, err
		}
	}

	patch, err := p.api.UpdateProfile(ctx, prev.Email, update)
	if err != nil {
		return nil, err
	}

	merged := patch.ApplyTo(prev)
	if err := p.apply(ctx, gen, merged); err != nil {
		return nil, err
	}
	p.log.Info(ctx, "profile updated", "email", merged.Email)
	return merged.Clone(), nil
}

// UploadCV validates the file locally and streams it to the career service
// for the authenticated user. It never touches session state.
func (p *Provider) UploadCV(ctx context.Context, stage api.Stage, path string) error {
	p.ensureStarted()

	p.mu.Lock()
	if p.state != StateAuthenticated {
		p.mu.Unlock()
		return fmt.Errorf("%w: %w", common.ErrUpload, common.ErrNoActiveSession)
	}
	userID := p.user.ID
	p.mu.Unlock()

	if _, err := filex.ValidateCVFile(path); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpload, err)
	}
	defer f.Close()

	return p.api.UploadCV(ctx, userID, stage, filepath.Base(path), f)
}

// Logout clears the in-memory and persisted session. It is a pure local
// operation: no network call, idempotent, never fails when already
// anonymous. The returned value is the navigation target the UI layer
// should move to; navigation itself is the caller's concern.
func (p *Provider) Logout(ctx context.Context, redirectTo string) string {
	p.ensureStarted()

	p.mu.Lock()
	if err := p.store.Clear(ctx); err != nil {
		p.log.Error(ctx, "failed to clear session store on logout", "error", err)
	}
	p.user = nil
	p.state = StateAnonymous
	p.gen++
	p.mu.Unlock()

	if redirectTo == "" {
		redirectTo = DefaultRedirectTarget
	}
	return redirectTo
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (p *Provider) CurrentUser() *models.User {
	p.ensureStarted()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.user.Clone()
}

// IsLoggedIn reports whether an authenticated user is present.
func (p *Provider) IsLoggedIn() bool {
	p.ensureStarted()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == StateAuthenticated
}

// IsLoading reports whether the startup restore is still in flight.
// Callers must treat a true value as "decision deferred", never as
// "anonymous".
func (p *Provider) IsLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == StateLoading
}

// State returns the current session state.
func (p *Provider) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Provider) ensureStarted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateUninitialized {
		panic("session: provider used before Start")
	}
}

// beginOp asserts the provider is usable and captures the generation the
// operation is based on.
func (p *Provider) beginOp() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateUninitialized {
		panic("session: provider used before Start")
	}
	return p.gen
}

/// apply commits a successful operation result: it re-checks the captured
// generation (a logout or newer operation in between invalidates this
// result), writes through to the store, and installs the new record. The
// store write happens under the same lock as the state transition, so a
// concurrent Logout cannot slip between the two and leave the store
// holding a session the provider no longer has.
func (p *Provider) apply(ctx context.Context, gen uint64, user *models.User) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		p.log.Warn(ctx, "discarding stale operation result", "email", user.Email)
		return ErrSuperseded
	}
	if err := p.store.Write(ctx, user); err != nil {
		// In-memory state stays authoritative; the restore on next start
		// will just miss this session.
		p.log.Error(ctx, "failed to persist session entry", "error", err)
	}
	p.user = user.Clone()
	p.state = StateAuthenticated
	p.gen++
	return nil
}
