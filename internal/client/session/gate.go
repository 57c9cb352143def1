package session

// Decision is the gate's three-way answer for a protected view.
type Decision int

const (
	// Allow renders the protected view.
	Allow Decision = iota
	// Defer means the startup restore has not finished; the caller must
	// wait, not redirect.
	Defer
	// Redirect sends the visitor to the login entry point.
	Redirect
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Defer:
		return "defer"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Gate is the access check placed in front of authenticated-only views.
// Its only source of truth is the provider: it performs no storage reads
// and no side effects beyond the redirect decision.
type Gate struct {
	provider  *Provider
	loginPath string
}

func NewGate(p *Provider, loginPath string) *Gate {
	return &Gate{provider: p, loginPath: loginPath}
}

// Decide allows entry only when an authenticated user with a non-empty
// identifier is present. While the provider is still loading (or not yet
// started) the decision is deferred, never a premature redirect.
func (g *Gate) Decide() Decision {
	g.provider.mu.Lock()
	defer g.provider.mu.Unlock()

	switch g.provider.state {
	case StateUninitialized, StateLoading:
		return Defer
	case StateAuthenticated:
		if g.provider.user != nil && g.provider.user.ID != "" {
			return Allow
		}
		return Redirect
	default:
		return Redirect
	}
}

// CanEnter is the boolean convenience form of Decide.
func (g *Gate) CanEnter() bool {
	return g.Decide() == Allow
}

// RedirectTarget is the login entry point unauthenticated visitors are
// sent to.
func (g *Gate) RedirectTarget() string {
	return g.loginPath
}
