package sim

import (
	"context"
	"math/rand"

	"github.com/flirtshaala/flirtshaala/internal/logger"
	"github.com/flirtshaala/flirtshaala/internal/model"
)

var wittyReplies = []string{
	"Yeh toh full rizz mode on hai 😎",
	"Smooth operator detected! 🔥",
	"Kya baat hai, charm level 💯",
	"Arre waah, flirting game strong! 💪",
	"Yeh toh next level charm hai bhai 🚀",
	"Rizz master in the house! 👑",
	"Smooth like butter, hot like fire 🔥",
	"Yeh toh professional flirter lag raha hai 😏",
	"Charm overload detected! ⚡",
	"Flirting level: Expert mode activated 🎯",
}

var _ model.ReplyGenerator = (*Replies)(nil)

// Replies is the demo reply generator serving canned Hinglish one-liners.
type Replies struct {
	delays Delays
	rand   *rand.Rand
	logger *logger.Logger
}

func NewReplies(delays Delays, logger *logger.Logger) *Replies {
	return &Replies{
		delays: delays,
		rand:   newRand(),
		logger: logger,
	}
}

// NewRepliesWithRand creates a Replies with a seeded source, for
// deterministic tests.
func NewRepliesWithRand(delays Delays, r *rand.Rand, logger *logger.Logger) *Replies {
	return &Replies{
		delays: delays,
		rand:   r,
		logger: logger,
	}
}

func (g *Replies) GenerateReply(ctx context.Context, sourceText string) (string, error) {
	if err := sleep(ctx, g.delays.Reply); err != nil {
		return "", err
	}

	reply := wittyReplies[g.rand.Intn(len(wittyReplies))]

	g.logger.Debug("demo replies: generated reply", "source_len", len(sourceText))

	return reply, nil
}
