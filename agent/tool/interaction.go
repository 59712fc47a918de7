package tool

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
	crmx "github.com/fieldsync/crm-copilot/agent/crm"
)

func executeLogInteraction(store *crmx.Store, args map[string]any, now time.Time) (contractx.ToolResult, error) {
	hcpName, err := stringArg(ToolLogInteraction, args, "hcp_name")
	if err != nil {
		return contractx.ToolResult{}, err
	}
	topics, err := stringArg(ToolLogInteraction, args, "topics")
	if err != nil {
		return contractx.ToolResult{}, err
	}
	sentiment, err := stringArg(ToolLogInteraction, args, "sentiment")
	if err != nil {
		return contractx.ToolResult{}, err
	}
	outcomes, err := stringArg(ToolLogInteraction, args, "outcomes")
	if err != nil {
		return contractx.ToolResult{}, err
	}

	rec := store.LogInteraction(hcpName, topics, sentiment, outcomes, now)
	encoded, err := json.Marshal(rec)
	if err != nil {
		return contractx.ToolResult{}, fmt.Errorf("marshal interaction record: %w", err)
	}
	return contractx.ToolResult{
		Tool:    ToolLogInteraction,
		Content: fmt.Sprintf("Success: Interaction %d logged for %s. Data saved: %s", rec.ID, rec.HCPName, encoded),
	}, nil
}

func executeEditInteraction(store *crmx.Store, args map[string]any) (contractx.ToolResult, error) {
	id, err := intArg(ToolEditInteraction, args, "interaction_id")
	if err != nil {
		return contractx.ToolResult{}, err
	}
	fieldName, err := stringArg(ToolEditInteraction, args, "field_name")
	if err != nil {
		return contractx.ToolResult{}, err
	}
	newValue, err := stringArg(ToolEditInteraction, args, "new_value")
	if err != nil {
		return contractx.ToolResult{}, err
	}

	if _, err := store.EditInteraction(id, fieldName, newValue); err != nil {
		if errors.Is(err, crmx.ErrInteractionNotFound) {
			// Handled inline: the model relays this to the user.
			return contractx.ToolResult{
				Tool:    ToolEditInteraction,
				Content: fmt.Sprintf("Error: Interaction ID %d not found.", id),
			}, nil
		}
		return contractx.ToolResult{}, err
	}
	return contractx.ToolResult{
		Tool:    ToolEditInteraction,
		Content: fmt.Sprintf("Success: Updated interaction %d. Set %s to '%s'.", id, fieldName, newValue),
	}, nil
}
