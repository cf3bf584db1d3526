// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package study

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/variety-study/models"
)

// SessionStore holds all in-flight sessions in process memory. Sessions are
// ephemeral: nothing here survives a restart, matching the study design
// where assignment lives only for the visit.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]models.Session)}
}

// Assign returns the session for token if one exists, otherwise creates a
// new session under a fresh token: a random participant ID and a condition
// drawn uniformly from the two arms. Repeated calls with the same token
// always return identical values; an assignment is never redrawn.
//
// The bool result is true when a new session was created.
func (s *SessionStore) Assign(token string) (string, models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != "" {
		if sess, ok := s.sessions[token]; ok {
			return token, sess, false
		}
	}

	// Unknown or absent token: mint a new session. A stale token from a
	// previous process gets a fresh assignment rather than an error.
	token = uuid.NewString()
	sess := models.Session{
		ParticipantID: newParticipantID(),
		Condition:     drawCondition(),
	}
	s.sessions[token] = sess
	return token, sess, true
}

// Get looks up an existing session without creating one.
func (s *SessionStore) Get(token string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	return sess, ok
}

// MarkSubmitted flips the session into its terminal state. Only call after
// a confirmed successful persist; a failed write must leave the session
// re-submittable.
func (s *SessionStore) MarkSubmitted(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[token]; ok {
		sess.Submitted = true
		s.sessions[token] = sess
	}
}

// newParticipantID draws a six-digit identifier. The space is large enough
// to make collisions across a classroom of concurrent sessions negligible;
// collisions are tolerated, not corrected.
func newParticipantID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken
		panic(fmt.Sprintf("participant id generation: %v", err))
	}
	return fmt.Sprintf("p_%06d", n.Int64()+100000)
}

// drawCondition picks one of the two arms uniformly at random.
func drawCondition() models.Condition {
	n, err := rand.Int(rand.Reader, big.NewInt(2))
	if err != nil {
		panic(fmt.Sprintf("condition draw: %v", err))
	}
	return models.Conditions[n.Int64()]
}
