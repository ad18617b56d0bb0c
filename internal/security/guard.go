package security

import (
	"time"

	"clubreg-backend/internal/domain"
	"clubreg-backend/internal/logger"
)

// ActionGuard runs the ordered pre-mutation checks: authentication, session
// freshness, rate limit, CSRF. The first failing check rejects the call
// before any write is attempted. Allowed actions are logged to the security
// trail, independent of the business audit log.
type ActionGuard struct {
	tokens   TokenManager
	sessions SessionStore
	limiter  RateLimiter
	csrf     CSRFManager
	now      func() time.Time
}

func NewActionGuard(tokens TokenManager, sessions SessionStore, limiter RateLimiter, csrf CSRFManager) *ActionGuard {
	return &ActionGuard{
		tokens:   tokens,
		sessions: sessions,
		limiter:  limiter,
		csrf:     csrf,
		now:      time.Now,
	}
}

// Authorize validates a mutating admin action. Checks short-circuit in
// order; a session that passed the freshness check has its activity
// timestamp refreshed as a side effect.
func (g *ActionGuard) Authorize(bearerToken, csrfToken string, kind ActionKind, params map[string]any) (*AdminClaims, error) {
	if bearerToken == "" {
		return nil, domain.ErrAuthenticationRequired
	}
	claims, err := g.tokens.ValidateToken(bearerToken)
	if err != nil {
		return nil, domain.ErrAuthenticationRequired
	}

	now := g.now()
	if !g.sessions.Touch(claims.AdminID, now) {
		return nil, domain.ErrSessionExpired
	}

	if !g.limiter.Allow(claims.AdminID, kind, now) {
		return nil, domain.ErrRateLimitExceeded
	}

	if csrfToken == "" || !g.csrf.ValidateToken(csrfToken) {
		return nil, domain.ErrSecurityTokenMissing
	}

	args := []any{"admin_id", claims.AdminID, "action", string(kind), "at", now}
	for k, v := range params {
		args = append(args, k, v)
	}
	logger.WithService("security-guard").Info("Admin action allowed", args...)

	return claims, nil
}
