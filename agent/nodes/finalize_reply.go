package assistantnode

import (
	"fmt"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	return GraphOutput{
		Reply:    in.Reply,
		ToolUsed: in.ToolUsed,
		FormData: in.FormData,
		Aborted:  in.Aborted,
	}, nil
}
