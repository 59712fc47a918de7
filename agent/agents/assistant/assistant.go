package assistant

import (
	"context"
	"errors"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
	nodex "github.com/fieldsync/crm-copilot/agent/nodes"
	promptx "github.com/fieldsync/crm-copilot/agent/prompt"
	toolx "github.com/fieldsync/crm-copilot/agent/tool"
)

var ErrInvalidMessage = nodex.ErrInvalidMessage

// DefaultMaxModelCalls bounds model invocations per request. Not
// client-configurable.
const DefaultMaxModelCalls = 10

type Config struct {
	MaxModelCalls int
}

// Assistant is the turn controller: it alternates between asking the model
// and executing the tool calls the model requested, until the model answers
// in plain text or the per-request budget runs out.
type Assistant struct {
	chatModel einomodel.ToolCallingChatModel
	executor  toolx.Executor

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	systemPrompt  string
	maxModelCalls int

	now func() time.Time
}

var _ contractx.Assistant = (*Assistant)(nil)

func New(ctx context.Context, chatModel einomodel.ToolCallingChatModel, executor toolx.Executor, cfg Config) (*Assistant, error) {
	if chatModel == nil {
		return nil, errors.New("chat model is required")
	}
	if executor == nil {
		return nil, errors.New("tool executor is required")
	}

	maxModelCalls := cfg.MaxModelCalls
	if maxModelCalls <= 0 {
		maxModelCalls = DefaultMaxModelCalls
	}

	boundModel, err := chatModel.WithTools(toolx.Infos())
	if err != nil {
		return nil, err
	}

	a := &Assistant{
		chatModel:     boundModel,
		executor:      executor,
		systemPrompt:  promptx.Load().System,
		maxModelCalls: maxModelCalls,
		now:           time.Now,
	}

	graphRunner, err := a.compileHandleChatGraph(ctx)
	if err != nil {
		return nil, err
	}
	a.graphRunner = graphRunner

	return a, nil
}

func (a *Assistant) HandleChat(ctx context.Context, req contractx.ChatRequest) (contractx.ChatResult, error) {
	out, err := a.graphRunner.Invoke(ctx, nodex.GraphInput{
		Message: req.Message,
		History: req.History,
	})
	if err != nil {
		return contractx.ChatResult{}, err
	}
	return contractx.ChatResult{
		Reply:    out.Reply,
		ToolUsed: out.ToolUsed,
		FormData: out.FormData,
		Aborted:  out.Aborted,
	}, nil
}
