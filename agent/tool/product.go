package tool

import (
	"fmt"
	"strings"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
	crmx "github.com/fieldsync/crm-copilot/agent/crm"
)

func executeTalkingPoints(store *crmx.Store, args map[string]any) (contractx.ToolResult, error) {
	productName, err := stringArg(ToolTalkingPoints, args, "product_name")
	if err != nil {
		return contractx.ToolResult{}, err
	}

	text, ok := store.TalkingPoints(productName)
	if !ok {
		text = fmt.Sprintf("Product data not found. Available: %s.", strings.Join(store.ProductNames(), ", "))
	}
	return contractx.ToolResult{
		Tool:    ToolTalkingPoints,
		Content: text,
	}, nil
}
