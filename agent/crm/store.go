package crm

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var ErrInteractionNotFound = errors.New("interaction not found")

const dateLayout = "2006-01-02"

// Store owns the process-lifetime CRM data: logged interactions plus the
// static HCP and product reference sets. A single mutex serializes access so
// concurrent requests cannot race on the interaction list. Nothing is
// persisted; the store lives and dies with the process.
type Store struct {
	mu           sync.Mutex
	nextID       int
	interactions []InteractionRecord

	hcps     []HCP
	products map[string]string
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		hcps: []HCP{
			{ID: 1, Name: "Dr. Sarah Smith", Specialty: "Cardiology", Hospital: "City General"},
			{ID: 2, Name: "Dr. John Doe", Specialty: "Oncology", Hospital: "Westside Clinic"},
		},
		products: map[string]string{
			"CardioFix": "CardioFix reduces systolic BP by 15% within 2 weeks. Phase 3 trials showed 98% tolerance.",
			"OncoCure":  "OncoCure is the first-line treatment for Stage 2. Primary benefit is reduced nausea.",
		},
	}
}

// LogInteraction appends a new record with the next sequential id and the
// current date, and returns a copy of it.
func (s *Store) LogInteraction(hcpName, topics, sentiment, outcomes string, now time.Time) InteractionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := InteractionRecord{
		ID:        s.nextID,
		HCPName:   hcpName,
		Topics:    topics,
		Sentiment: sentiment,
		Outcomes:  outcomes,
		Date:      now.Format(dateLayout),
	}
	s.nextID++
	s.interactions = append(s.interactions, rec)
	return rec
}

// EditInteraction sets one field on the record with the given id. Schema
// fields are updated in place; any other field name goes to the Extra map.
// Returns a copy of the updated record, or ErrInteractionNotFound.
func (s *Store) EditInteraction(id int, fieldName, newValue string) (InteractionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.interactions {
		if s.interactions[i].ID != id {
			continue
		}
		rec := &s.interactions[i]
		switch fieldName {
		case "hcp_name":
			rec.HCPName = newValue
		case "topics":
			rec.Topics = newValue
		case "sentiment":
			rec.Sentiment = newValue
		case "outcomes":
			rec.Outcomes = newValue
		case "date":
			rec.Date = newValue
		default:
			if rec.Extra == nil {
				rec.Extra = make(map[string]string, 1)
			}
			rec.Extra[fieldName] = newValue
		}
		return cloneRecord(*rec), nil
	}
	return InteractionRecord{}, fmt.Errorf("%w: id=%d", ErrInteractionNotFound, id)
}

// Interactions returns a snapshot of all logged records in insertion order.
func (s *Store) Interactions() []InteractionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]InteractionRecord, 0, len(s.interactions))
	for _, rec := range s.interactions {
		out = append(out, cloneRecord(rec))
	}
	return out
}

// SearchHCPs matches HCPs whose name contains the query, case-insensitively.
func (s *Store) SearchHCPs(name string) []HCP {
	needle := strings.ToLower(name)

	var out []HCP
	for _, hcp := range s.hcps {
		if strings.Contains(strings.ToLower(hcp.Name), needle) {
			out = append(out, hcp)
		}
	}
	return out
}

// HCPs returns the static reference list.
func (s *Store) HCPs() []HCP {
	return append([]HCP(nil), s.hcps...)
}

// TalkingPoints returns the approved talking points for a product.
func (s *Store) TalkingPoints(productName string) (string, bool) {
	text, ok := s.products[productName]
	return text, ok
}

// ProductNames returns the known product names in stable order.
func (s *Store) ProductNames() []string {
	names := make([]string, 0, len(s.products))
	for name := range s.products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneRecord(rec InteractionRecord) InteractionRecord {
	if rec.Extra != nil {
		extra := make(map[string]string, len(rec.Extra))
		for k, v := range rec.Extra {
			extra[k] = v
		}
		rec.Extra = extra
	}
	return rec
}
