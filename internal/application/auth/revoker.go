package auth

import (
	"sync"
	"time"
)

// Revoker lista de revocación de tokens en memoria, indexada por jti.
// Una entrada solo necesita vivir hasta que el token expire por sí mismo;
// IsRevoked poda las vencidas de paso.
type Revoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time // jti -> expiración del token
}

// NewRevoker construye la lista vacía.
func NewRevoker() *Revoker {
	return &Revoker{revoked: make(map[string]time.Time)}
}

// Revoke marca el jti como revocado hasta expiresAt.
func (r *Revoker) Revoke(jti string, expiresAt time.Time) {
	if jti == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.revoked[jti] = expiresAt
}

// IsRevoked reporta si el jti fue revocado y su token sigue vigente.
func (r *Revoker) IsRevoked(jti string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for id, exp := range r.revoked {
		if !exp.IsZero() && exp.Before(now) {
			delete(r.revoked, id)
		}
	}
	_, ok := r.revoked[jti]
	return ok
}
