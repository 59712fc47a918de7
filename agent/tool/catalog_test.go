package tool

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/fieldsync/crm-copilot/agent/contract"
	crmx "github.com/fieldsync/crm-copilot/agent/crm"
)

var testNow = time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC)

func newTestExecutor() (Executor, *crmx.Store) {
	store := crmx.NewStore()
	return NewExecutor(store, func() time.Time { return testNow }), store
}

func TestInfosDeclareAllFiveTools(t *testing.T) {
	t.Parallel()

	infos := Infos()
	if len(infos) != 5 {
		t.Fatalf("expected 5 tool infos, got %d", len(infos))
	}

	want := []string{
		ToolSearchHCP,
		ToolTalkingPoints,
		ToolLogInteraction,
		ToolEditInteraction,
		ToolScheduleFollowUp,
	}
	for i, name := range want {
		if infos[i].Name != name {
			t.Fatalf("unexpected tool at index %d: %s", i, infos[i].Name)
		}
	}
}

func TestExecutorUnknownToolIsStructuralFault(t *testing.T) {
	t.Parallel()

	executor, _ := newTestExecutor()
	_, err := executor(context.Background(), "drop_tables", map[string]any{})
	if !errors.Is(err, contractx.ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestExecutorSearchHCP(t *testing.T) {
	t.Parallel()

	executor, _ := newTestExecutor()

	out, err := executor(context.Background(), ToolSearchHCP, map[string]any{"name": "sarah"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Content, "Dr. Sarah Smith") {
		t.Fatalf("unexpected content: %s", out.Content)
	}

	out, err = executor(context.Background(), ToolSearchHCP, map[string]any{"name": "House"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Content != "No HCP found matching 'House'." {
		t.Fatalf("unexpected content: %s", out.Content)
	}
}

func TestExecutorTalkingPoints(t *testing.T) {
	t.Parallel()

	executor, _ := newTestExecutor()

	out, err := executor(context.Background(), ToolTalkingPoints, map[string]any{"product_name": "OncoCure"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Content, "first-line treatment") {
		t.Fatalf("unexpected content: %s", out.Content)
	}

	out, err = executor(context.Background(), ToolTalkingPoints, map[string]any{"product_name": "MiracleMax"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Content != "Product data not found. Available: CardioFix, OncoCure." {
		t.Fatalf("unexpected content: %s", out.Content)
	}
}

func TestExecutorLogInteraction(t *testing.T) {
	t.Parallel()

	executor, store := newTestExecutor()

	out, err := executor(context.Background(), ToolLogInteraction, map[string]any{
		"hcp_name":  "Dr. Sarah Smith",
		"topics":    "BP trial",
		"sentiment": "Positive",
		"outcomes":  "Interested",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.Content, "Success: Interaction 1 logged for Dr. Sarah Smith.") {
		t.Fatalf("unexpected content: %s", out.Content)
	}

	records := store.Interactions()
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}
	rec := records[0]
	if rec.ID != 1 || rec.HCPName != "Dr. Sarah Smith" || rec.Topics != "BP trial" ||
		rec.Sentiment != "Positive" || rec.Outcomes != "Interested" || rec.Date != "2026-03-14" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestExecutorLogInteractionMissingArg(t *testing.T) {
	t.Parallel()

	executor, _ := newTestExecutor()

	_, err := executor(context.Background(), ToolLogInteraction, map[string]any{
		"hcp_name": "Dr. Sarah Smith",
	})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestExecutorEditInteraction(t *testing.T) {
	t.Parallel()

	executor, store := newTestExecutor()
	store.LogInteraction("Dr. John Doe", "OncoCure", "Neutral", "Follow up", testNow)

	// interaction_id arrives as float64 after JSON decoding
	out, err := executor(context.Background(), ToolEditInteraction, map[string]any{
		"interaction_id": float64(1),
		"field_name":     "sentiment",
		"new_value":      "Positive",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Content != "Success: Updated interaction 1. Set sentiment to 'Positive'." {
		t.Fatalf("unexpected content: %s", out.Content)
	}
	if store.Interactions()[0].Sentiment != "Positive" {
		t.Fatal("edit did not apply")
	}
}

func TestExecutorEditInteractionNotFoundIsConversational(t *testing.T) {
	t.Parallel()

	executor, store := newTestExecutor()

	out, err := executor(context.Background(), ToolEditInteraction, map[string]any{
		"interaction_id": float64(7),
		"field_name":     "sentiment",
		"new_value":      "Positive",
	})
	if err != nil {
		t.Fatalf("not-found must not be a fault, got %v", err)
	}
	if out.Content != "Error: Interaction ID 7 not found." {
		t.Fatalf("unexpected content: %s", out.Content)
	}
	if len(store.Interactions()) != 0 {
		t.Fatal("store must not be mutated")
	}
}

func TestExecutorEditInteractionBadID(t *testing.T) {
	t.Parallel()

	executor, _ := newTestExecutor()

	_, err := executor(context.Background(), ToolEditInteraction, map[string]any{
		"interaction_id": "not-a-number",
		"field_name":     "sentiment",
		"new_value":      "Positive",
	})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestExecutorScheduleFollowUp(t *testing.T) {
	t.Parallel()

	executor, _ := newTestExecutor()

	out, err := executor(context.Background(), ToolScheduleFollowUp, map[string]any{
		"hcp_name": "Dr. Sarah Smith",
		"action":   "Share trial data",
		"date":     "2026-03-20",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Content != "Calendar Event Created: 'Share trial data' with Dr. Sarah Smith on 2026-03-20." {
		t.Fatalf("unexpected content: %s", out.Content)
	}
}
