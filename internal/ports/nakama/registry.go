package nakama

import (
	"errors"
	"sync"

	"jassbot/internal/bot"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("bot session not found")

// botSession serialises calls for one remote-controlled agent.
type botSession struct {
	mu    sync.Mutex
	agent *bot.Agent
}

// sessionRegistry holds the live bot sessions of this node.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*botSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[uuid.UUID]*botSession)}
}

// sessions is shared by all RPC invocations.
var sessions = newSessionRegistry()

func (r *sessionRegistry) add(agent *bot.Agent) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	r.sessions[id] = &botSession{agent: agent}
	r.mu.Unlock()
	return id
}

func (r *sessionRegistry) get(id uuid.UUID) (*botSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *sessionRegistry) remove(id uuid.UUID) (*botSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	delete(r.sessions, id)
	return s, nil
}

func (r *sessionRegistry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
