package assistant

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	nodex "github.com/fieldsync/crm-copilot/agent/nodes"
)

func (a *Assistant) compileHandleChatGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ValidateRequest(in, a.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("build_messages",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.BuildMessages(in, a.systemPrompt)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node build_messages: %w", err)
	}

	if err := graph.AddLambdaNode("run_turns",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.RunTurns(ctx, in, a.chatModel, a.executor, a.maxModelCalls)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node run_turns: %w", err)
	}

	if err := graph.AddLambdaNode("extract_form_data",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ExtractFormData(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node extract_form_data: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "build_messages"},
		{"build_messages", "run_turns"},
		{"run_turns", "extract_form_data"},
		{"extract_form_data", "finalize_reply"},
		{"finalize_reply", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("assistant.handle_chat"))
	if err != nil {
		return nil, fmt.Errorf("compile assistant graph: %w", err)
	}
	return runner, nil
}
