package tool

import (
	"encoding/json"
	"fmt"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
	crmx "github.com/fieldsync/crm-copilot/agent/crm"
)

func executeSearchHCP(store *crmx.Store, args map[string]any) (contractx.ToolResult, error) {
	name, err := stringArg(ToolSearchHCP, args, "name")
	if err != nil {
		return contractx.ToolResult{}, err
	}

	matches := store.SearchHCPs(name)
	if len(matches) == 0 {
		return contractx.ToolResult{
			Tool:    ToolSearchHCP,
			Content: fmt.Sprintf("No HCP found matching '%s'.", name),
		}, nil
	}

	encoded, err := json.Marshal(matches)
	if err != nil {
		return contractx.ToolResult{}, fmt.Errorf("marshal hcp matches: %w", err)
	}
	return contractx.ToolResult{
		Tool:    ToolSearchHCP,
		Content: fmt.Sprintf("Found HCPs: %s", encoded),
	}, nil
}
