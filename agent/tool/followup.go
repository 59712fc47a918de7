package tool

import (
	"fmt"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
)

// schedule_follow_up has no calendar backing; the confirmation text is the
// entire effect.
func executeScheduleFollowUp(args map[string]any) (contractx.ToolResult, error) {
	hcpName, err := stringArg(ToolScheduleFollowUp, args, "hcp_name")
	if err != nil {
		return contractx.ToolResult{}, err
	}
	action, err := stringArg(ToolScheduleFollowUp, args, "action")
	if err != nil {
		return contractx.ToolResult{}, err
	}
	date, err := stringArg(ToolScheduleFollowUp, args, "date")
	if err != nil {
		return contractx.ToolResult{}, err
	}

	return contractx.ToolResult{
		Tool:    ToolScheduleFollowUp,
		Content: fmt.Sprintf("Calendar Event Created: '%s' with %s on %s.", action, hcpName, date),
	}, nil
}
