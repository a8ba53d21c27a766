package dto

import (
	"tatdocs/internal/chat"
)

// ChatRequest is one assistant turn: the new user message plus the
// visible conversation so far.
type ChatRequest struct {
	Message string         `json:"message" binding:"required"`
	History []chat.Message `json:"history"`
}

// ChatResponse returns the assistant reply and, when a command was
// applied, the refreshed form state.
type ChatResponse struct {
	Reply chat.Reply    `json:"reply"`
	Form  *FormResponse `json:"form,omitempty"`
}
