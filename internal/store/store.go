// Package store holds the application state and mediates every state
// transition. The presentation layer reads snapshots and requests changes
// through the action API; it never mutates state directly.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/flirtshaala/flirtshaala/internal/logger"
	"github.com/flirtshaala/flirtshaala/internal/model"
)

// Persistence keys. The values are JSON blobs.
const (
	persistUserKey    = "user"
	persistHistoryKey = "chatHistory"
)

// Store is the single source of truth for session, user and chat-history
// state. Dispatches are serialized: each transition is atomic and applied
// in issue order.
type Store struct {
	mu    sync.Mutex
	state model.AppState

	idMu      sync.Mutex
	lastMsgID int64

	auth    model.Authenticator
	ocr     model.TextExtractor
	replies model.ReplyGenerator
	billing model.Purchaser
	kv      model.KVStore

	subMu sync.Mutex
	subs  []func(model.AppState)

	now    func() time.Time
	logger *logger.Logger
}

func New(
	auth model.Authenticator,
	ocr model.TextExtractor,
	replies model.ReplyGenerator,
	billing model.Purchaser,
	kv model.KVStore,
	logger *logger.Logger,
) *Store {
	return &Store{
		state:   model.InitialState(),
		auth:    auth,
		ocr:     ocr,
		replies: replies,
		billing: billing,
		kv:      kv,
		now:     time.Now,
		logger:  logger,
	}
}

// State returns a snapshot of the current state.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe registers fn to be called with a snapshot after every
// dispatch. Subscribers run outside the store lock and may dispatch.
func (s *Store) Subscribe(fn func(model.AppState)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

// Dispatch applies a single transition. The persistence side-channel runs
// under the same critical section so writes land in dispatch order;
// persistence failures are logged and swallowed.
func (s *Store) Dispatch(ctx context.Context, action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := s.state.Clone()
	if shouldPersist(action) && snapshot.IsAuthenticated {
		s.persist(ctx, snapshot)
	}
	s.mu.Unlock()

	s.notify(snapshot)
}

// shouldPersist reports whether the action can change the user or the
// chat history.
func shouldPersist(action Action) bool {
	switch action.(type) {
	case SetUser, AddChatMessage, UpdateChatMessage, DeleteChatMessage,
		ClearChatHistory, SetPremium, LoadPersistedData:
		return true
	default:
		return false
	}
}

func (s *Store) notify(snapshot model.AppState) {
	s.subMu.Lock()
	subs := make([]func(model.AppState), len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// persist writes the current user and history to local storage.
// Best-effort: losing the cache must never fail the primary operation.
func (s *Store) persist(ctx context.Context, state model.AppState) {
	if state.User != nil {
		data, err := json.Marshal(state.User)
		if err != nil {
			s.logger.Error("store: failed to marshal user", "error", err.Error())
		} else if err := s.kv.Set(ctx, persistUserKey, string(data)); err != nil {
			s.logger.Error("store: failed to persist user", "error", err.Error())
		}
	}

	history := state.ChatHistory
	if history == nil {
		history = []model.ChatMessage{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		s.logger.Error("store: failed to marshal chat history", "error", err.Error())
		return
	}
	if err := s.kv.Set(ctx, persistHistoryKey, string(data)); err != nil {
		s.logger.Error("store: failed to persist chat history", "error", err.Error())
	}
}

// Hydrate loads the persisted user and chat history once, at startup.
// Absent or malformed entries mean there is nothing to hydrate.
func (s *Store) Hydrate(ctx context.Context) {
	if data, err := s.kv.Get(ctx, persistUserKey); err == nil {
		var user model.User
		if err := json.Unmarshal([]byte(data), &user); err != nil {
			s.logger.Info("store: ignoring malformed persisted user", "error", err.Error())
		} else {
			s.Dispatch(ctx, SetUser{User: user})
		}
	} else if !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("store: failed to read persisted user", "error", err.Error())
	}

	if data, err := s.kv.Get(ctx, persistHistoryKey); err == nil {
		var history []model.ChatMessage
		if err := json.Unmarshal([]byte(data), &history); err != nil {
			s.logger.Info("store: ignoring malformed persisted history", "error", err.Error())
		} else {
			s.Dispatch(ctx, LoadPersistedData{ChatHistory: history})
		}
	} else if !errors.Is(err, model.ErrNotFound) {
		s.logger.Error("store: failed to read persisted history", "error", err.Error())
	}
}

// Login authenticates and installs the user. The loading flag is cleared
// on every path; authentication failures propagate to the caller.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.Dispatch(ctx, SetLoading{Value: true})
	defer s.Dispatch(ctx, SetLoading{Value: false})

	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Info("store: login failed", "email", email, "error", err.Error())
		return err
	}

	s.Dispatch(ctx, SetUser{User: user})
	return nil
}

// Signup registers a new account and installs the user. Same loading and
// error guarantees as Login.
func (s *Store) Signup(ctx context.Context, email, password, name string) error {
	s.Dispatch(ctx, SetLoading{Value: true})
	defer s.Dispatch(ctx, SetLoading{Value: false})

	user, err := s.auth.Register(ctx, email, password, name)
	if err != nil {
		s.logger.Info("store: signup failed", "email", email, "error", err.Error())
		return err
	}

	s.Dispatch(ctx, SetUser{User: user})
	return nil
}

// Logout clears the persisted records and resets the state. It never
// fails: removal errors are logged and swallowed.
func (s *Store) Logout(ctx context.Context) {
	if err := s.kv.Remove(ctx, persistUserKey); err != nil {
		s.logger.Error("store: failed to remove persisted user", "error", err.Error())
	}
	if err := s.kv.Remove(ctx, persistHistoryKey); err != nil {
		s.logger.Error("store: failed to remove persisted history", "error", err.Error())
	}

	s.Dispatch(ctx, Logout{})
}

// AddChatMessage constructs a message, prepends it to the history and
// returns its id so the caller can request a reply for it.
func (s *Store) AddChatMessage(ctx context.Context, text string, origin model.Origin, imageURI string) string {
	msg := model.ChatMessage{
		ID:        s.nextMessageID(),
		Text:      text,
		Timestamp: s.now(),
		Origin:    origin,
		ImageURI:  imageURI,
	}

	s.Dispatch(ctx, AddChatMessage{Message: msg})
	return msg.ID
}

// nextMessageID derives an id from the creation time, unix milliseconds.
// The guard keeps ids unique and monotonic when messages land in the same
// millisecond.
func (s *Store) nextMessageID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastMsgID {
		id = s.lastMsgID + 1
	}
	s.lastMsgID = id
	return strconv.FormatInt(id, 10)
}

// GenerateWittyReply generates a reply for the message with the given id.
// A missing id is a benign no-op: the UI may race a delete against a
// pending generation and last writer wins. On failure the in-flight flag
// is cleared, the reply stays absent and the error propagates.
func (s *Store) GenerateWittyReply(ctx context.Context, messageID string) error {
	msg, ok := s.State().FindMessage(messageID)
	if !ok {
		return nil
	}

	s.Dispatch(ctx, UpdateChatMessage{
		ID:      messageID,
		Updates: model.MessageUpdate{IsProcessing: boolPtr(true)},
	})

	reply, err := s.replies.GenerateReply(ctx, msg.Text)
	if err != nil {
		s.Dispatch(ctx, UpdateChatMessage{
			ID:      messageID,
			Updates: model.MessageUpdate{IsProcessing: boolPtr(false)},
		})
		s.logger.Info("store: reply generation failed", "message_id", messageID, "error", err.Error())
		return err
	}

	s.Dispatch(ctx, UpdateChatMessage{
		ID: messageID,
		Updates: model.MessageUpdate{
			WittyReply:   &reply,
			IsProcessing: boolPtr(false),
		},
	})
	return nil
}

// ExtractTextFromImage is a passthrough to the OCR collaborator; it does
// not touch state.
func (s *Store) ExtractTextFromImage(ctx context.Context, imageURI string) (string, error) {
	return s.ocr.ExtractText(ctx, imageURI)
}

// UpgradeToPremium settles the purchase and then flips the premium flag.
// A purchase failure propagates before anything is dispatched, so there is
// nothing to roll back.
func (s *Store) UpgradeToPremium(ctx context.Context) error {
	if err := s.billing.Purchase(ctx); err != nil {
		s.logger.Info("store: purchase failed", "error", err.Error())
		return err
	}

	s.Dispatch(ctx, SetPremium{Value: true})
	return nil
}

// SetCurrentChat updates the scratch text buffer.
func (s *Store) SetCurrentChat(ctx context.Context, text string) {
	s.Dispatch(ctx, SetCurrentChat{Text: text})
}

// DeleteChatMessage removes a single message; a missing id is a no-op.
func (s *Store) DeleteChatMessage(ctx context.Context, messageID string) {
	s.Dispatch(ctx, DeleteChatMessage{ID: messageID})
}

// ClearChatHistory empties the history.
func (s *Store) ClearChatHistory(ctx context.Context) {
	s.Dispatch(ctx, ClearChatHistory{})
}

func boolPtr(v bool) *bool { return &v }
