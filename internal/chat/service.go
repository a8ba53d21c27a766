package chat

import (
	"context"

	"tatdocs/internal/shipment"
	"tatdocs/pkg/logger"
)

// Reply is the outcome of one assistant turn.
type Reply struct {
	// Content is the display text with command blocks stripped.
	Content string `json:"content"`

	// Action is the command the reply carried, if any.
	Action Action `json:"action,omitempty"`

	// Applied reports whether the command actually mutated the form.
	Applied bool `json:"applied"`
}

// Service runs assistant turns against the live shipment session.
type Service struct {
	client  Completer
	session *shipment.Session
}

// NewService creates the chat service.
func NewService(client Completer, session *shipment.Session) *Service {
	return &Service{client: client, session: session}
}

// Send runs one turn: context prompt from the current shipment, prior
// history, then the user message. A command in the reply is applied to
// the session; a command that cannot be applied is dropped and the
// reply still returned, the form left exactly as it was.
func (s *Service) Send(ctx context.Context, history []Message, userMessage string) (Reply, error) {
	form, calc := s.session.Snapshot()

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: BuildSystemPrompt(s.session.Catalog(), form, calc)})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: userMessage})

	raw, err := s.client.Complete(ctx, messages)
	if err != nil {
		return Reply{}, err
	}

	cmd, display := ExtractCommand(raw)
	reply := Reply{Content: display, Action: cmd.Action}

	if cmd.Action != ActionNone {
		err := s.session.Update(func(f *shipment.ShipmentFormData) error {
			applied, err := Apply(f, cmd)
			reply.Applied = applied
			return err
		})
		if err != nil {
			reply.Applied = false
			logger.Warn(ctx, "chat command rejected", "action", string(cmd.Action), "error", err)
		} else {
			logger.Info(ctx, "chat command applied", "action", string(cmd.Action))
		}
	}
	return reply, nil
}
