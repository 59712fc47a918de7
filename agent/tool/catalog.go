package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/fieldsync/crm-copilot/agent/contract"
	crmx "github.com/fieldsync/crm-copilot/agent/crm"
)

const (
	ToolSearchHCP        = "search_hcp"
	ToolTalkingPoints    = "get_product_talking_points"
	ToolLogInteraction   = "log_interaction"
	ToolEditInteraction  = "edit_interaction"
	ToolScheduleFollowUp = "schedule_follow_up"
)

type Executor func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error)

// NewExecutor returns the registry executor bound to a store. The tool set is
// closed: a name outside the catalog is a structural fault, not a
// conversational error.
func NewExecutor(store *crmx.Store, now func() time.Time) Executor {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		switch tool {
		case ToolSearchHCP:
			return executeSearchHCP(store, args)
		case ToolTalkingPoints:
			return executeTalkingPoints(store, args)
		case ToolLogInteraction:
			return executeLogInteraction(store, args, now())
		case ToolEditInteraction:
			return executeEditInteraction(store, args)
		case ToolScheduleFollowUp:
			return executeScheduleFollowUp(args)
		default:
			return contractx.ToolResult{}, fmt.Errorf("%w: %s", contractx.ErrUnknownTool, tool)
		}
	}
}

// Infos declares the catalog schemas sent to the model alongside each turn.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolSearchHCP,
			Desc: "Search for a Healthcare Professional (HCP) by name to get their details. Useful for validating names before logging.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"name": {Type: schema.String, Desc: "Full or partial HCP name", Required: true},
			}),
		},
		{
			Name: ToolTalkingPoints,
			Desc: "Retrieves approved talking points and efficacy data for a specific product. Useful when the user asks for help on what to discuss or recalls details.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_name": {Type: schema.String, Desc: "Exact product name", Required: true},
			}),
		},
		{
			Name: ToolLogInteraction,
			Desc: "Logs a new interaction into the system. Extracts structured data from the conversation and saves it. Call at most once per logical event.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"hcp_name":  {Type: schema.String, Desc: "HCP the interaction was with", Required: true},
				"topics":    {Type: schema.String, Desc: "Topics discussed", Required: true},
				"sentiment": {Type: schema.String, Desc: "Positive, Neutral or Negative", Required: true},
				"outcomes":  {Type: schema.String, Desc: "Outcomes of the interaction", Required: true},
			}),
		},
		{
			Name: ToolEditInteraction,
			Desc: "Edits an existing interaction record. Useful if the user realizes they made a mistake in previous logs.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"interaction_id": {Type: schema.Integer, Desc: "Id of the record to edit", Required: true},
				"field_name":     {Type: schema.String, Desc: "Name of the field to change", Required: true},
				"new_value":      {Type: schema.String, Desc: "Value to set", Required: true},
			}),
		},
		{
			Name: ToolScheduleFollowUp,
			Desc: "Schedules a follow-up task or meeting in the calendar.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"hcp_name": {Type: schema.String, Desc: "HCP the follow-up is with", Required: true},
				"action":   {Type: schema.String, Desc: "What the follow-up is about", Required: true},
				"date":     {Type: schema.String, Desc: "Date of the follow-up", Required: true},
			}),
		},
	}
}

func stringArg(tool string, args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%w: tool=%s requires %q", contractx.ErrSchemaViolation, tool, key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: tool=%s argument %q must be a string, got %T", contractx.ErrSchemaViolation, tool, key, raw)
	}
	return value, nil
}

func intArg(tool string, args map[string]any, key string) (int, error) {
	raw, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%w: tool=%s requires %q", contractx.ErrSchemaViolation, tool, key)
	}
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: tool=%s argument %q must be an integer", contractx.ErrSchemaViolation, tool, key)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: tool=%s argument %q must be an integer: %v", contractx.ErrSchemaViolation, tool, key, err)
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: tool=%s argument %q must be an integer: %v", contractx.ErrSchemaViolation, tool, key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: tool=%s argument %q must be an integer, got %T", contractx.ErrSchemaViolation, tool, key, raw)
	}
}
