package assistantnode

import (
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/fieldsync/crm-copilot/agent/contract"
)

var ErrInvalidMessage = errors.New("message is empty")

type GraphInput struct {
	Message string
	History []contractx.HistoryEntry
}

type GraphOutput struct {
	Reply    string
	ToolUsed bool
	FormData map[string]string
	Aborted  bool
}

type GraphState struct {
	Message string
	History []contractx.HistoryEntry
	Now     time.Time

	Messages []*schema.Message
	Reply    string
	ToolUsed bool
	Aborted  bool
	FormData map[string]string
}

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, ErrInvalidMessage
	}

	return &GraphState{
		Message: message,
		History: in.History,
		Now:     nowFn().UTC(),
	}, nil
}
