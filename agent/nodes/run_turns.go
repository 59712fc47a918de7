package assistantnode

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
	toolx "github.com/fieldsync/crm-copilot/agent/tool"
)

// RunTurns drives the model-call/tool-execution loop. Each iteration sends
// the full ordered message list to the model. A reply that requests tool
// calls gets every call executed in request order, with one tool message
// appended per call; a reply without tool calls ends the loop and is the
// final answer. The message list is strictly append-only.
//
// maxModelCalls bounds the number of model invocations. Running out of
// budget is a recoverable degradation: the last assistant text seen (or an
// empty string) becomes the best-effort reply and Aborted is set.
func RunTurns(
	ctx context.Context,
	in *GraphState,
	chatModel einomodel.BaseChatModel,
	executor toolx.Executor,
	maxModelCalls int,
) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	lastAssistantText := ""
	for i := 0; i < maxModelCalls; i++ {
		msg, err := chatModel.Generate(ctx, in.Messages)
		if err != nil {
			return nil, fmt.Errorf("%w: generate: %v", contractx.ErrModelInvoke, err)
		}
		if msg == nil {
			return nil, fmt.Errorf("%w: model returned nil message", contractx.ErrModelInvoke)
		}
		in.Messages = append(in.Messages, msg)

		if text := strings.TrimSpace(msg.Content); text != "" {
			lastAssistantText = text
		}

		if len(msg.ToolCalls) == 0 {
			in.Reply = strings.TrimSpace(msg.Content)
			return in, nil
		}

		in.ToolUsed = true
		requests, err := toToolRequests(msg.ToolCalls)
		if err != nil {
			return nil, err
		}
		for _, req := range requests {
			result, err := executor(ctx, req.Tool, req.Args)
			if err != nil {
				return nil, err
			}
			log.Debug().Str("tool", req.Tool).Str("call_id", req.CallID).Msg("tool executed")
			in.Messages = append(in.Messages, schema.ToolMessage(result.Content, req.CallID))
		}
	}

	log.Warn().Int("max_model_calls", maxModelCalls).Msg("turn budget exhausted, returning best-effort reply")
	in.Aborted = true
	in.Reply = lastAssistantText
	return in, nil
}

func toToolRequests(calls []schema.ToolCall) ([]contractx.ToolRequest, error) {
	requests := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		name := strings.TrimSpace(call.Function.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		rawArgs := strings.TrimSpace(call.Function.Arguments)
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, name, err)
			}
		}

		requests = append(requests, contractx.ToolRequest{
			Tool:   name,
			CallID: call.ID,
			Args:   args,
		})
	}
	return requests, nil
}
