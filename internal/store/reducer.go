package store

import "github.com/flirtshaala/flirtshaala/internal/model"

// Reduce maps (state, action) to the next state. It is pure and total:
// no side effects, never mutates its input, and every action yields a
// valid state. Unknown actions (impossible for in-package variants)
// return the state unchanged.
func Reduce(state model.AppState, action Action) model.AppState {
	switch a := action.(type) {
	case SetUser:
		u := a.User
		state.User = &u
		state.IsAuthenticated = true
		state.ShowAds = !u.IsPremium
		return state

	case Logout:
		return model.InitialState()

	case SetLoading:
		state.IsLoading = a.Value
		return state

	case AddChatMessage:
		history := make([]model.ChatMessage, 0, len(state.ChatHistory)+1)
		history = append(history, a.Message)
		history = append(history, state.ChatHistory...)
		state.ChatHistory = history
		return state

	case UpdateChatMessage:
		for i, msg := range state.ChatHistory {
			if msg.ID != a.ID {
				continue
			}
			history := make([]model.ChatMessage, len(state.ChatHistory))
			copy(history, state.ChatHistory)
			history[i] = a.Updates.Apply(msg)
			state.ChatHistory = history
			return state
		}
		return state

	case DeleteChatMessage:
		for i, msg := range state.ChatHistory {
			if msg.ID != a.ID {
				continue
			}
			history := make([]model.ChatMessage, 0, len(state.ChatHistory)-1)
			history = append(history, state.ChatHistory[:i]...)
			history = append(history, state.ChatHistory[i+1:]...)
			state.ChatHistory = history
			return state
		}
		return state

	case SetCurrentChat:
		state.CurrentChat = a.Text
		return state

	case ClearChatHistory:
		state.ChatHistory = nil
		return state

	case SetPremium:
		// Without a user the ad policy stays "show ads"; flipping it here
		// would break showAds == (user == nil || !user.isPremium).
		if state.User == nil {
			return state
		}
		u := *state.User
		u.IsPremium = a.Value
		state.User = &u
		state.ShowAds = !a.Value
		return state

	case LoadPersistedData:
		if a.ChatHistory != nil {
			history := make([]model.ChatMessage, len(a.ChatHistory))
			copy(history, a.ChatHistory)
			state.ChatHistory = history
		}
		if a.CurrentChat != nil {
			state.CurrentChat = *a.CurrentChat
		}
		return state

	default:
		return state
	}
}
