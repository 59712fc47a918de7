package contract

// HistoryEntry is one prior message of the client-side conversation.
// Sender is "user" or "ai"; anything else is skipped during replay.
type HistoryEntry struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

type ChatRequest struct {
	Message string         `json:"message"`
	History []HistoryEntry `json:"history"`
}

// ChatResult is the outcome of one full assistant turn.
// FormData carries the camelCased arguments of the most recent
// log_interaction/edit_interaction call so the client can pre-fill its form.
type ChatResult struct {
	Reply    string            `json:"response"`
	ToolUsed bool              `json:"tool_used"`
	FormData map[string]string `json:"form_data"`

	// Aborted is set when the turn budget ran out before the model produced
	// a plain reply; Reply then holds the best-effort answer.
	Aborted bool `json:"-"`
}

type ToolRequest struct {
	Tool   string         `json:"tool"`
	CallID string         `json:"call_id"`
	Args   map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool    string `json:"tool"`
	Content string `json:"content"`
}
