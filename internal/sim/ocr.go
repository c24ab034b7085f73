package sim

import (
	"context"
	"math/rand"

	"github.com/flirtshaala/flirtshaala/internal/logger"
	"github.com/flirtshaala/flirtshaala/internal/model"
)

var extractedTexts = []string{
	"Hey! Loved your profile. Would love to get to know you better 😊",
	"Your photos are amazing! Would love to take you out for coffee ☕",
	"That movie was incredible! We should definitely watch the sequel together",
	"You seem like such an interesting person. Tell me more about yourself!",
	"I had such a great time today. Can't wait to see you again 💕",
}

var _ model.TextExtractor = (*OCR)(nil)

// OCR is the demo text extractor. It ignores the image entirely and
// returns one of a handful of plausible chat messages.
type OCR struct {
	delays Delays
	rand   *rand.Rand
	logger *logger.Logger
}

func NewOCR(delays Delays, logger *logger.Logger) *OCR {
	return &OCR{
		delays: delays,
		rand:   newRand(),
		logger: logger,
	}
}

// NewOCRWithRand creates an OCR with a seeded source, for deterministic tests.
func NewOCRWithRand(delays Delays, r *rand.Rand, logger *logger.Logger) *OCR {
	return &OCR{
		delays: delays,
		rand:   r,
		logger: logger,
	}
}

func (o *OCR) ExtractText(ctx context.Context, imageURI string) (string, error) {
	if err := sleep(ctx, o.delays.OCR); err != nil {
		return "", err
	}

	text := extractedTexts[o.rand.Intn(len(extractedTexts))]

	o.logger.Debug("demo ocr: extracted text", "image_uri", imageURI)

	return text, nil
}
