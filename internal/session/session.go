// Package session implements the shared-password gate. One password for
// the whole family, one process-wide unlocked/locked state, persisted as
// a flag file so a restart keeps the gate where it was.
//
// This is NOT real authentication and must never be treated as a security
// boundary — it is a soft access gate, the same strength as the
// browser-local flag it replaces. Anyone who can reach the process state
// can flip it.
package session

import (
	"crypto/subtle"
	"errors"
	"os"
	"sync"
)

var ErrBadPassword = errors.New("wrong password")

// Gate holds the process-wide session state.
type Gate struct {
	mu       sync.Mutex
	password string
	flagPath string
	active   bool
}

// New builds the gate and reads the persisted flag. A missing or
// unreadable flag file just means the gate starts closed.
func New(password, flagPath string) *Gate {
	g := &Gate{password: password, flagPath: flagPath}
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err == nil {
			g.active = true
		}
	}
	return g
}

// Login opens the gate when the password matches (constant-time compare)
// and persists the flag.
func (g *Gate) Login(password string) error {
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return ErrBadPassword
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = true
	if g.flagPath != "" {
		// Best effort; the in-memory state is authoritative.
		_ = os.WriteFile(g.flagPath, []byte("unlocked\n"), 0o600)
	}
	return nil
}

// Logout closes the gate and clears the persisted flag.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
	if g.flagPath != "" {
		_ = os.Remove(g.flagPath)
	}
}

// Active reports whether the gate is open.
func (g *Gate) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}
