package model

// AppState is the single source of truth for a session. The zero value of
// InitialState is the unauthenticated starting point.
type AppState struct {
	User            *User
	IsAuthenticated bool
	ChatHistory     []ChatMessage
	CurrentChat     string
	IsLoading       bool
	ShowAds         bool
}

// InitialState returns the unauthenticated, empty-history state.
func InitialState() AppState {
	return AppState{
		ShowAds: true,
	}
}

// Clone returns a deep copy so observers can hold a snapshot without
// aliasing store-owned slices.
func (s AppState) Clone() AppState {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	if s.ChatHistory != nil {
		out.ChatHistory = make([]ChatMessage, len(s.ChatHistory))
		copy(out.ChatHistory, s.ChatHistory)
	}
	return out
}

// FindMessage returns the message with the given id, if present.
func (s AppState) FindMessage(id string) (ChatMessage, bool) {
	for _, msg := range s.ChatHistory {
		if msg.ID == id {
			return msg, true
		}
	}
	return ChatMessage{}, false
}
