package assistantnode

import (
	"fmt"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
)

// BuildMessages seeds the conversation: system instruction, replayed client
// history, then the new message. History entries with an unrecognized sender
// are skipped.
func BuildMessages(in *GraphState, systemPrompt string) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	messages := make([]*schema.Message, 0, len(in.History)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))

	for _, entry := range in.History {
		switch entry.Sender {
		case contractx.SenderUser:
			messages = append(messages, schema.UserMessage(entry.Text))
		case contractx.SenderAI:
			messages = append(messages, schema.AssistantMessage(entry.Text, nil))
		default:
			log.Debug().Str("sender", entry.Sender).Msg("skipping history entry with unknown sender")
		}
	}

	messages = append(messages, schema.UserMessage(in.Message))
	in.Messages = messages
	return in, nil
}
