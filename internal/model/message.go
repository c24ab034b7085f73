package model

import "time"

// Origin classifies how a chat message's text was obtained.
type Origin string

const (
	// OriginPaste is text pasted directly by the user.
	OriginPaste Origin = "paste"
	// OriginScreenshot is text extracted from an uploaded screenshot.
	OriginScreenshot Origin = "screenshot"
)

// ChatMessage is a single entry in the chat history.
type ChatMessage struct {
	ID           string    `json:"id"`
	Text         string    `json:"text"`
	Timestamp    time.Time `json:"timestamp"`
	Origin       Origin    `json:"type"`
	ImageURI     string    `json:"imageUri,omitempty"`
	WittyReply   string    `json:"wittyReply,omitempty"`
	IsProcessing bool      `json:"isProcessing,omitempty"`
}

// MessageUpdate carries partial fields for merging into an existing
// message. Nil pointers leave the corresponding field unchanged.
type MessageUpdate struct {
	Text         *string
	WittyReply   *string
	IsProcessing *bool
}

// Apply merges the set fields into a copy of msg.
func (u MessageUpdate) Apply(msg ChatMessage) ChatMessage {
	if u.Text != nil {
		msg.Text = *u.Text
	}
	if u.WittyReply != nil {
		msg.WittyReply = *u.WittyReply
	}
	if u.IsProcessing != nil {
		msg.IsProcessing = *u.IsProcessing
	}
	return msg
}
