package ports

// Identity is the authenticated principal carried from the auth middleware
// into service calls. Downstream code trusts it and performs ownership
// checks only, never re-verification of the token.
type Identity struct {
	UserID string
	Role   string
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	Issue(userID, role string) (string, error)
	Verify(token string) (*Identity, error)
}
