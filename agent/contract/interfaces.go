package contract

import "context"

// Assistant runs one conversational turn: model calls interleaved with tool
// execution until the model answers in plain text or the turn budget is spent.
type Assistant interface {
	HandleChat(ctx context.Context, req ChatRequest) (ChatResult, error)
}
