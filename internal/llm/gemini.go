// Package llm provides the Gemini-backed witty reply generator.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/flirtshaala/flirtshaala/internal/logger"
	"github.com/flirtshaala/flirtshaala/internal/model"
)

const replySystemInstruction = "You are Flirtshaala, a playful wingman for chat conversations. " +
	"Given a message someone received in a chat, respond with one short, witty, charming reply " +
	"the user could send back. Mix Hindi and English (Hinglish) naturally and keep it to a single " +
	"sentence. Return only the reply itself, nothing else."

var _ model.ReplyGenerator = (*Gemini)(nil)

// Gemini generates replies through the Google generative AI API.
type Gemini struct {
	client    *genai.Client
	modelName string
	logger    *logger.Logger
}

func NewGemini(ctx context.Context, apiKey, modelName string, logger *logger.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{
		client:    client,
		modelName: modelName,
		logger:    logger,
	}, nil
}

func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *Gemini) GenerateReply(ctx context.Context, sourceText string) (string, error) {
	m := g.client.GenerativeModel(g.modelName)

	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(replySystemInstruction)},
	}

	temp := float32(0.9)
	maxTokens := int32(60)
	m.GenerationConfig = genai.GenerationConfig{
		MaxOutputTokens: &maxTokens,
		Temperature:     &temp,
	}

	prompt := fmt.Sprintf("They said: %q. What should I reply?", sourceText)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Error("gemini: generate content failed", "error", err.Error())
		return "", fmt.Errorf("%w: %s", model.ErrGeneration, err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		g.logger.Info("gemini: empty response")
		return "", fmt.Errorf("%w: empty response", model.ErrGeneration)
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			reply.WriteString(string(txt))
		}
	}

	if reply.Len() == 0 {
		return "", fmt.Errorf("%w: non-text response", model.ErrGeneration)
	}

	return strings.Trim(reply.String(), "\"'\n\r\t "), nil
}
