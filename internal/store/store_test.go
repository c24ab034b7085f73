package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flirtshaala/flirtshaala/internal/mocks"
	"github.com/flirtshaala/flirtshaala/internal/model"
	"github.com/flirtshaala/flirtshaala/internal/sim"
	"github.com/flirtshaala/flirtshaala/internal/testutil"
)

type testDeps struct {
	auth    *mocks.Authenticator
	ocr     *mocks.TextExtractor
	replies *mocks.ReplyGenerator
	billing *mocks.Purchaser
	kv      *testutil.MemoryKV
}

func newTestStore(t *testing.T) (*Store, *testDeps) {
	t.Helper()
	deps := &testDeps{
		auth:    &mocks.Authenticator{},
		ocr:     &mocks.TextExtractor{},
		replies: &mocks.ReplyGenerator{},
		billing: &mocks.Purchaser{},
		kv:      testutil.NewMemoryKV(),
	}
	s := New(deps.auth, deps.ocr, deps.replies, deps.billing, deps.kv, testutil.MakeNoopLogger())
	return s, deps
}

// newDemoStore wires the store to the demo collaborators with no delays.
func newDemoStore(t *testing.T) *Store {
	t.Helper()
	log := testutil.MakeNoopLogger()
	return New(
		sim.NewAuth(sim.Delays{}, log),
		sim.NewOCR(sim.Delays{}, log),
		sim.NewReplies(sim.Delays{}, log),
		sim.NewBilling(sim.Delays{}, log),
		testutil.NewMemoryKV(),
		log,
	)
}

func TestLogin_PremiumEmail(t *testing.T) {
	ctx := context.Background()
	s := newDemoStore(t)

	require.NoError(t, s.Login(ctx, "premium@x.com", "anypw"))

	state := s.State()
	require.NotNil(t, state.User)
	assert.True(t, state.User.IsPremium)
	assert.False(t, state.ShowAds)
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "premium", state.User.Name)
}

func TestLogin_RegularEmail(t *testing.T) {
	ctx := context.Background()
	s := newDemoStore(t)

	require.NoError(t, s.Login(ctx, "demo@x.com", "anypw"))

	state := s.State()
	require.NotNil(t, state.User)
	assert.False(t, state.User.IsPremium)
	assert.True(t, state.ShowAds)
	assert.Equal(t, "demo", state.User.Name)
}

func TestLogin_FailureClearsLoading(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	authErr := model.ErrInvalidCredentials
	deps.auth.On("Authenticate", mock.Anything, "x@y.z", "bad").Return(model.User{}, authErr)

	err := s.Login(ctx, "x@y.z", "bad")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	state := s.State()
	assert.False(t, state.IsLoading)
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestSignup_Success(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	deps.auth.On("Register", mock.Anything, "new@x.com", "pw", "New User").
		Return(model.User{ID: "abc", Email: "new@x.com", Name: "New User"}, nil)

	require.NoError(t, s.Signup(ctx, "new@x.com", "pw", "New User"))

	state := s.State()
	require.NotNil(t, state.User)
	assert.Equal(t, "abc", state.User.ID)
	assert.False(t, state.User.IsPremium)
	assert.True(t, state.ShowAds)
	assert.False(t, state.IsLoading)
}

func TestSignup_FailureClearsLoading(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	deps.auth.On("Register", mock.Anything, "dup@x.com", "pw", "Dup").
		Return(model.User{}, model.ErrEmailTaken)

	err := s.Signup(ctx, "dup@x.com", "pw", "Dup")
	require.ErrorIs(t, err, model.ErrEmailTaken)
	assert.False(t, s.State().IsLoading)
	assert.Nil(t, s.State().User)
}

func TestAddChatMessage_OrderAndDistinctIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	const n = 5
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, s.AddChatMessage(ctx, fmt.Sprintf("msg %d", i), model.OriginPaste, ""))
	}

	state := s.State()
	require.Len(t, state.ChatHistory, n)

	seen := map[string]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "ids must be distinct")
		seen[id] = true
	}

	// Newest first: history order is the reverse of insertion order.
	for i := 0; i < n; i++ {
		assert.Equal(t, ids[n-1-i], state.ChatHistory[i].ID)
		assert.False(t, state.ChatHistory[i].Timestamp.IsZero())
	}
}

func TestAddChatMessage_SameMillisecondStaysMonotonic(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	a := s.AddChatMessage(ctx, "a", model.OriginPaste, "")
	b := s.AddChatMessage(ctx, "b", model.OriginPaste, "")

	assert.NotEqual(t, a, b)
	assert.Less(t, a, b)
}

func TestAddChatMessage_ScreenshotCarriesImageURI(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	id := s.AddChatMessage(ctx, "from screenshot", model.OriginScreenshot, "file:///shot.png")

	msg, ok := s.State().FindMessage(id)
	require.True(t, ok)
	assert.Equal(t, model.OriginScreenshot, msg.Origin)
	assert.Equal(t, "file:///shot.png", msg.ImageURI)
	assert.False(t, msg.IsProcessing)
	assert.Empty(t, msg.WittyReply)
}

func TestDeleteChatMessage(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	a := s.AddChatMessage(ctx, "a", model.OriginPaste, "")
	b := s.AddChatMessage(ctx, "b", model.OriginPaste, "")

	s.DeleteChatMessage(ctx, a)

	state := s.State()
	require.Len(t, state.ChatHistory, 1)
	assert.Equal(t, b, state.ChatHistory[0].ID)

	// Absent id: idempotent no-op.
	s.DeleteChatMessage(ctx, a)
	assert.Len(t, s.State().ChatHistory, 1)
}

func TestGenerateWittyReply_Success(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	id := s.AddChatMessage(ctx, "hi", model.OriginPaste, "")

	deps.replies.On("GenerateReply", mock.Anything, "hi").
		Run(func(args mock.Arguments) {
			// In-flight while the collaborator runs.
			msg, ok := s.State().FindMessage(id)
			require.True(t, ok)
			assert.True(t, msg.IsProcessing)
		}).
		Return("Smooth operator detected! 🔥", nil)

	require.NoError(t, s.GenerateWittyReply(ctx, id))

	msg, ok := s.State().FindMessage(id)
	require.True(t, ok)
	assert.False(t, msg.IsProcessing)
	assert.NotEmpty(t, msg.WittyReply)
}

func TestGenerateWittyReply_FailureClearsInFlight(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	id := s.AddChatMessage(ctx, "hi", model.OriginPaste, "")

	genErr := errors.New("service unavailable")
	deps.replies.On("GenerateReply", mock.Anything, "hi").Return("", genErr)

	err := s.GenerateWittyReply(ctx, id)
	require.ErrorIs(t, err, genErr)

	msg, ok := s.State().FindMessage(id)
	require.True(t, ok)
	assert.False(t, msg.IsProcessing)
	assert.Empty(t, msg.WittyReply)
}

func TestGenerateWittyReply_MissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	before := s.State()
	require.NoError(t, s.GenerateWittyReply(ctx, "1748131200000"))
	assert.Equal(t, before, s.State())

	deps.replies.AssertNotCalled(t, "GenerateReply", mock.Anything, mock.Anything)
}

func TestExtractTextFromImage_Passthrough(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	deps.ocr.On("ExtractText", mock.Anything, "file:///shot.png").Return("extracted text", nil)

	before := s.State()
	text, err := s.ExtractTextFromImage(ctx, "file:///shot.png")
	require.NoError(t, err)
	assert.Equal(t, "extracted text", text)
	assert.Equal(t, before, s.State(), "OCR must not touch state")
}

func TestExtractTextFromImage_PropagatesFailure(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	deps.ocr.On("ExtractText", mock.Anything, "file:///bad.png").Return("", model.ErrExtraction)

	_, err := s.ExtractTextFromImage(ctx, "file:///bad.png")
	require.ErrorIs(t, err, model.ErrExtraction)
}

func TestUpgradeToPremium(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	deps.auth.On("Authenticate", mock.Anything, "demo@x.com", "pw").
		Return(model.User{ID: "1", Email: "demo@x.com", Name: "demo"}, nil)
	deps.billing.On("Purchase", mock.Anything).Return(nil)

	require.NoError(t, s.Login(ctx, "demo@x.com", "pw"))
	require.NoError(t, s.UpgradeToPremium(ctx))

	state := s.State()
	require.NotNil(t, state.User)
	assert.True(t, state.User.IsPremium)
	assert.False(t, state.ShowAds)
}

func TestUpgradeToPremium_PurchaseFailure(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	deps.auth.On("Authenticate", mock.Anything, "demo@x.com", "pw").
		Return(model.User{ID: "1", Email: "demo@x.com"}, nil)
	deps.billing.On("Purchase", mock.Anything).Return(model.ErrPurchaseFailed)

	require.NoError(t, s.Login(ctx, "demo@x.com", "pw"))
	err := s.UpgradeToPremium(ctx)
	require.ErrorIs(t, err, model.ErrPurchaseFailed)

	state := s.State()
	assert.False(t, state.User.IsPremium)
	assert.True(t, state.ShowAds)
}

func TestSetPremiumFalse_KeepsHistory(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	deps.auth.On("Authenticate", mock.Anything, "premium@x.com", "pw").
		Return(model.User{ID: "1", Email: "premium@x.com", IsPremium: true}, nil)

	require.NoError(t, s.Login(ctx, "premium@x.com", "pw"))
	s.AddChatMessage(ctx, "hi", model.OriginPaste, "")

	s.Dispatch(ctx, SetPremium{Value: false})

	state := s.State()
	assert.True(t, state.ShowAds)
	assert.Len(t, state.ChatHistory, 1)
}

func TestLogout_ResetsStateAndClearsPersistence(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	deps.auth.On("Authenticate", mock.Anything, "demo@x.com", "pw").
		Return(model.User{ID: "1", Email: "demo@x.com"}, nil)

	require.NoError(t, s.Login(ctx, "demo@x.com", "pw"))
	s.AddChatMessage(ctx, "hi", model.OriginPaste, "")
	require.NotZero(t, deps.kv.Len())

	s.Logout(ctx)

	assert.Equal(t, model.InitialState(), s.State())
	assert.Zero(t, deps.kv.Len())
}

func TestLogout_WithoutPersistedKeys(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	// Nothing persisted yet; logout must still succeed.
	s.Logout(ctx)
	assert.Equal(t, model.InitialState(), s.State())
}

func TestPersistence_SkippedWhenUnauthenticated(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	s.AddChatMessage(ctx, "hi", model.OriginPaste, "")

	assert.Zero(t, deps.kv.Len())
}

func TestPersistence_WritesUserAndHistory(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	deps.auth.On("Authenticate", mock.Anything, "demo@x.com", "pw").
		Return(model.User{ID: "1", Email: "demo@x.com", Name: "demo"}, nil)

	require.NoError(t, s.Login(ctx, "demo@x.com", "pw"))
	s.AddChatMessage(ctx, "hello", model.OriginPaste, "")

	raw, err := deps.kv.Get(ctx, persistUserKey)
	require.NoError(t, err)
	var user model.User
	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	assert.Equal(t, "demo@x.com", user.Email)

	raw, err = deps.kv.Get(ctx, persistHistoryKey)
	require.NoError(t, err)
	var history []model.ChatMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Text)
}

func TestHydrate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	reply := "Smooth operator detected! 🔥"
	deps.auth.On("Authenticate", mock.Anything, "premium@x.com", "pw").
		Return(model.User{ID: "1", Email: "premium@x.com", Name: "premium", IsPremium: true}, nil)
	deps.replies.On("GenerateReply", mock.Anything, "hello").Return(reply, nil)

	require.NoError(t, s.Login(ctx, "premium@x.com", "pw"))
	pasted := s.AddChatMessage(ctx, "hello", model.OriginPaste, "")
	require.NoError(t, s.GenerateWittyReply(ctx, pasted))
	shot := s.AddChatMessage(ctx, "from shot", model.OriginScreenshot, "file:///s.png")

	// A fresh store sharing the same persistence reconstructs the session.
	restored := New(deps.auth, deps.ocr, deps.replies, deps.billing, deps.kv, testutil.MakeNoopLogger())
	restored.Hydrate(ctx)

	state := restored.State()
	require.NotNil(t, state.User)
	assert.True(t, state.IsAuthenticated)
	assert.True(t, state.User.IsPremium)
	assert.False(t, state.ShowAds)

	require.Len(t, state.ChatHistory, 2)
	assert.Equal(t, shot, state.ChatHistory[0].ID)
	assert.Equal(t, model.OriginScreenshot, state.ChatHistory[0].Origin)
	assert.Equal(t, pasted, state.ChatHistory[1].ID)
	assert.Equal(t, model.OriginPaste, state.ChatHistory[1].Origin)
	assert.Equal(t, reply, state.ChatHistory[1].WittyReply)
	assert.False(t, state.ChatHistory[1].Timestamp.IsZero())
}

func TestHydrate_EmptyStorage(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.Hydrate(ctx)

	assert.Equal(t, model.InitialState(), s.State())
}

func TestHydrate_MalformedEntriesIgnored(t *testing.T) {
	ctx := context.Background()
	s, deps := newTestStore(t)

	require.NoError(t, deps.kv.Set(ctx, persistUserKey, "{not json"))
	require.NoError(t, deps.kv.Set(ctx, persistHistoryKey, "[broken"))

	s.Hydrate(ctx)

	assert.Equal(t, model.InitialState(), s.State())
}

func TestSetCurrentChat(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.SetCurrentChat(ctx, "typing...")
	assert.Equal(t, "typing...", s.State().CurrentChat)
}

func TestClearChatHistory(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	s.AddChatMessage(ctx, "a", model.OriginPaste, "")
	s.AddChatMessage(ctx, "b", model.OriginPaste, "")

	s.ClearChatHistory(ctx)
	assert.Empty(t, s.State().ChatHistory)
}

func TestSubscribe_NotifiedOnDispatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	var got []model.AppState
	s.Subscribe(func(state model.AppState) {
		got = append(got, state)
	})

	s.Dispatch(ctx, SetLoading{Value: true})
	s.Dispatch(ctx, SetLoading{Value: false})

	require.Len(t, got, 2)
	assert.True(t, got[0].IsLoading)
	assert.False(t, got[1].IsLoading)
}

func TestDemoStore_EndToEndScenario(t *testing.T) {
	ctx := context.Background()
	s := newDemoStore(t)

	require.NoError(t, s.Login(ctx, "demo@x.com", "anypw"))

	id := s.AddChatMessage(ctx, "hi", model.OriginPaste, "")
	require.NoError(t, s.GenerateWittyReply(ctx, id))

	msg, ok := s.State().FindMessage(id)
	require.True(t, ok)
	assert.False(t, msg.IsProcessing)
	assert.NotEmpty(t, msg.WittyReply)
}
