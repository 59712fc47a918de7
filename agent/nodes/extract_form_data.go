package assistantnode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cloudwego/eino/schema"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
	toolx "github.com/fieldsync/crm-copilot/agent/tool"
)

// ExtractFormData scans the finished conversation backward for the most
// recent assistant message that requested log_interaction or
// edit_interaction and translates that call's arguments into the client's
// camelCase form-fill convention. The scan stops at the first such message;
// earlier calls are never merged in.
func ExtractFormData(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	in.FormData = map[string]string{}
	for i := len(in.Messages) - 1; i >= 0; i-- {
		msg := in.Messages[i]
		if msg == nil || msg.Role != schema.Assistant || len(msg.ToolCalls) == 0 {
			continue
		}

		requests, err := toToolRequests(msg.ToolCalls)
		if err != nil {
			return nil, err
		}
		for _, req := range requests {
			if req.Tool != toolx.ToolLogInteraction && req.Tool != toolx.ToolEditInteraction {
				continue
			}
			for key, value := range req.Args {
				in.FormData[snakeToCamel(key)] = formatArgValue(value)
			}
			return in, nil
		}
	}
	return in, nil
}

func snakeToCamel(name string) string {
	parts := strings.Split(name, "_")
	out := make([]string, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 || len(out) == 0 {
			out = append(out, strings.ToLower(part[:1])+part[1:])
			continue
		}
		out = append(out, strings.ToUpper(part[:1])+part[1:])
	}
	return strings.Join(out, "")
}

func formatArgValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
