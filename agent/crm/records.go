package crm

// Sentiment values recorded for an interaction. The log tool passes whatever
// the model extracted; values outside this set are stored as-is, matching the
// permissiveness of the record editor.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// InteractionRecord is one logged sales interaction with an HCP.
// IDs are assigned by the store, 1-based, and never reused.
type InteractionRecord struct {
	ID        int    `json:"id"`
	HCPName   string `json:"hcp_name"`
	Topics    string `json:"topics"`
	Sentiment string `json:"sentiment"`
	Outcomes  string `json:"outcomes"`
	Date      string `json:"date"`

	// Extra holds values written through edit_interaction under field names
	// outside the record schema. Kept as a side-map so a loose edit cannot
	// corrupt the typed fields.
	Extra map[string]string `json:"extra,omitempty"`
}

// HCP is a reference entry for a healthcare professional. Read-only.
type HCP struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Hospital  string `json:"hospital"`
}
