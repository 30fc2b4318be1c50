package principle

import "time"

// ActionPlanSteps is the canonical length of a record's action plan:
// steps 1-2 are immediate triage, 3-5 strategic implementation, and
// 6-7 long-term fortification.
const ActionPlanSteps = 7

// RelatedQuestion is a follow-up question and its short answer.
type RelatedQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// RelatedScripture is a supporting citation: a verse reference and its text.
type RelatedScripture struct {
	Verse string `json:"verse"`
	Text  string `json:"text"`
}

// Record is the structured answer returned for a query: a short maxim,
// one source citation, a seven-step action plan, related Q&A, and
// supporting citations.
//
// ID is globally unique and stable for a given semantic answer.
// Built-in records carry fixed ids ("mental-001" style); generated
// records get an id synthesized from creation time plus a random
// suffix, so repeated queries never collide but also never dedupe.
// Records are read-only once created.
type Record struct {
	ID                   string             `json:"id"`
	Category             string             `json:"category"`
	CorePrinciple        string             `json:"corePrinciple"`
	SourceReference      string             `json:"sourceReference"`
	ActionPlan           []string           `json:"actionPlan"`
	RelatedQuestions     []RelatedQuestion  `json:"relatedQuestions"`
	AdditionalScriptures []RelatedScripture `json:"additionalScriptures"`
}

// Clone returns a deep copy of the record. The built-in table hands out
// clones so callers can never mutate the seed data.
func (r Record) Clone() Record {
	out := r
	out.ActionPlan = append([]string(nil), r.ActionPlan...)
	out.RelatedQuestions = append([]RelatedQuestion(nil), r.RelatedQuestions...)
	out.AdditionalScriptures = append([]RelatedScripture(nil), r.AdditionalScriptures...)
	return out
}

// VaultItem is the reduced projection of a Record kept in the user's
// vault history. Query preserves the original free text that unlocked
// the record, so a vault entry can be re-resolved by its stored query
// rather than by abusing the category text.
//
// VaultItems are immutable once created and never deleted short of a
// full storage reset.
type VaultItem struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	CorePrinciple string    `json:"corePrinciple"`
	Query         string    `json:"query,omitempty"`
	UnlockedAt    time.Time `json:"unlockedAt"`
}

// VaultEntry builds the vault projection of a record for the given
// originating query.
func VaultEntry(r Record, query string, unlockedAt time.Time) VaultItem {
	return VaultItem{
		ID:            r.ID,
		Category:      r.Category,
		CorePrinciple: r.CorePrinciple,
		Query:         query,
		UnlockedAt:    unlockedAt,
	}
}

// UserProfile is the local identity singleton, created once by the
// commissioning action and immutable thereafter.
type UserProfile struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Stats are the derived aggregate counters shown on the dashboard.
//
// Actions is a running counter adjusted by progress toggles. Unlocked
// is recomputed on every read by counting distinct progress keys.
// Mastery counts records whose full action plan has been completed.
type Stats struct {
	Actions  int `json:"actions"`
	Unlocked int `json:"unlocked"`
	Mastery  int `json:"mastery"`
}

// Blueprint is the result of the purpose synthesizer: a one-sentence
// purpose statement and a short ordered list of strategic moves.
// Blueprints are ephemeral and never persisted.
type Blueprint struct {
	PurposeStatement string   `json:"purposeStatement"`
	ExecutionSteps   []string `json:"executionSteps"`
}
