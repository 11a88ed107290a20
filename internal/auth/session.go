// Package auth provides the session precondition for the workflow.
// Identity management itself lives with the external auth provider;
// the client only needs to know whether a user is signed in.
package auth

import "github.com/google/uuid"

// Authenticator answers the single question the workflow asks before
// accepting a submission.
type Authenticator interface {
	Authenticated() bool
	SessionID() string
}

// StaticSession treats token presence as the authentication signal.
type StaticSession struct {
	token     string
	sessionID string
}

func NewStaticSession(token string) *StaticSession {
	return &StaticSession{
		token:     token,
		sessionID: uuid.NewString(),
	}
}

func (s *StaticSession) Authenticated() bool {
	return s.token != ""
}

func (s *StaticSession) SessionID() string {
	return s.sessionID
}
