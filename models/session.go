package models

import "github.com/golang-jwt/jwt"

// Flash is a one-shot message carried in the session until the next render.
type Flash struct {
	Message string `json:"message"`
	Level   string `json:"level"` // success, warning, danger
}

// Session is the per-request login state. The session middleware decodes it
// from the signed session cookie, handlers mutate it and write it back as a
// new cookie. There is no server-side session store.
type Session struct {
	Provider    string  `json:"provider,omitempty"`
	Username    string  `json:"username,omitempty"`
	Email       string  `json:"email,omitempty"`
	Picture     string  `json:"picture,omitempty"`
	AccessToken string  `json:"accessToken,omitempty"`
	GplusID     string  `json:"gplusId,omitempty"`
	FacebookID  string  `json:"facebookId,omitempty"`
	UserID      uint    `json:"userId,omitempty"`
	State       string  `json:"state,omitempty"`
	Flashes     []Flash `json:"flashes,omitempty"`
	jwt.StandardClaims
}

// LoggedIn reports whether the session resolved to a local user.
func (s *Session) LoggedIn() bool {
	return s.UserID != 0
}

// AddFlash queues a message for the next rendered page.
func (s *Session) AddFlash(level, message string) {
	s.Flashes = append(s.Flashes, Flash{Message: message, Level: level})
}

// PopFlashes returns the queued messages and empties the queue. The caller
// must persist the session afterwards or the messages reappear.
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}
