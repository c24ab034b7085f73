package store

import "github.com/flirtshaala/flirtshaala/internal/model"

// Action is the closed set of state transitions. One type per transition;
// the reducer matches them exhaustively.
type Action interface {
	isAction()
}

// SetUser installs an authenticated user.
type SetUser struct {
	User model.User
}

// Logout resets the state to the initial unauthenticated state.
type Logout struct{}

// SetLoading toggles the transient loading flag.
type SetLoading struct {
	Value bool
}

// AddChatMessage prepends a fully formed message to the history.
type AddChatMessage struct {
	Message model.ChatMessage
}

// UpdateChatMessage merges partial fields into the message with the given
// id. No-op if the id is not present.
type UpdateChatMessage struct {
	ID      string
	Updates model.MessageUpdate
}

// DeleteChatMessage removes the message with the given id. No-op if the id
// is not present.
type DeleteChatMessage struct {
	ID string
}

// SetCurrentChat replaces the scratch text buffer.
type SetCurrentChat struct {
	Text string
}

// ClearChatHistory empties the history.
type ClearChatHistory struct{}

// SetPremium updates the current user's premium flag and the ad policy.
type SetPremium struct {
	Value bool
}

// LoadPersistedData merges hydrated fields into the state. It carries only
// fields that cannot break the authentication/ads invariants; the hydrated
// user goes through SetUser instead.
type LoadPersistedData struct {
	ChatHistory []model.ChatMessage
	CurrentChat *string
}

func (SetUser) isAction()           {}
func (Logout) isAction()            {}
func (SetLoading) isAction()        {}
func (AddChatMessage) isAction()    {}
func (UpdateChatMessage) isAction() {}
func (DeleteChatMessage) isAction() {}
func (SetCurrentChat) isAction()    {}
func (ClearChatHistory) isAction()  {}
func (SetPremium) isAction()        {}
func (LoadPersistedData) isAction() {}
