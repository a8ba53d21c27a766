package chat

import (
	"encoding/json"
	"regexp"
	"strings"

	"tatdocs/internal/shipment"
)

// Action identifies the mutation a command performs.
type Action string

const (
	// ActionNone means the reply was conversational only.
	ActionNone Action = ""

	ActionCreateShipment Action = "create_shipment"
	ActionUpdateCustomer Action = "update_customer"
)

// CommandItem is one line item of a create_shipment command. Quantity
// and price use the form's lenient decoding: a model that emits a
// quoted or malformed number produces a zero, not a dead command.
type CommandItem struct {
	ProductID string                 `json:"productId"`
	Quantity  shipment.Quantity      `json:"quantity"`
	UnitType  shipment.PackagingType `json:"unitType"`
	UnitPrice shipment.Money         `json:"unitPrice"`
}

// Command is the structured mutation extracted from an assistant reply.
type Command struct {
	Action Action `json:"action"`

	Items []CommandItem `json:"items,omitempty"`

	CustomerName  string `json:"customerName,omitempty"`
	MexicoAddress string `json:"mexicoAddress,omitempty"`
	RFC           string `json:"rfc,omitempty"`
}

var fencedJSON = regexp.MustCompile("(?s)```json\n(.*?)\n```")

// ExtractCommand pulls the first fenced JSON block out of an assistant
// reply and returns the parsed command plus the display text with all
// JSON blocks stripped. A malformed block yields ActionNone with the
// shipment untouched; the display text is still cleaned. When stripping
// leaves nothing, a confirmation phrase stands in.
func ExtractCommand(reply string) (Command, string) {
	var cmd Command
	if m := fencedJSON.FindStringSubmatch(reply); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &cmd); err != nil {
			cmd = Command{}
		}
	}
	switch cmd.Action {
	case ActionCreateShipment, ActionUpdateCustomer:
	default:
		cmd = Command{}
	}

	display := strings.TrimSpace(fencedJSON.ReplaceAllString(reply, ""))
	if display == "" {
		display = "Done! I've updated the shipment for you."
	}
	return cmd, display
}
