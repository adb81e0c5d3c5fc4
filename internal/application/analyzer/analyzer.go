// Package analyzer classifies an inbound message with keyword heuristics and
// drafts a first reply. It is pure: no I/O, no shared state.
package analyzer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
)

// Entities are the structured facts pulled out of the message body.
type Entities struct {
	ErrorCodes []string `json:"error_codes"`
	Versions   []string `json:"versions"`
	OS         string   `json:"os"`
}

// AsMap returns the JSON-map form stored in suggested actions and AI runs.
func (e Entities) AsMap() map[string]any {
	return map[string]any{
		"error_codes": e.ErrorCodes,
		"versions":    e.Versions,
		"os":          e.OS,
	}
}

// Result is the classification bundle for one message.
type Result struct {
	Category      string
	Priority      vo.Priority
	Product       string
	Summary       string
	Entities      Entities
	MissingInfo   []string
	DraftReply    string
	NextStep      string
	Confidence    int
	ModelVersions map[string]any
}

// SuggestedActions returns {"next_step": ...}; callers may add keys to the copy.
func (r Result) SuggestedActions() map[string]any {
	return map[string]any{"next_step": r.NextStep}
}

type Analyzer struct {
	priority PriorityPolicy
}

// New returns an analyzer using policy for priorities; nil selects LegacyPriority.
func New(policy PriorityPolicy) *Analyzer {
	if policy == nil {
		policy = LegacyPriority
	}
	return &Analyzer{priority: policy}
}

// Analyze never fails; empty input yields the general/medium defaults.
func (a *Analyzer) Analyze(subject, body string) Result {
	// cases.Caser is stateful, so one is built per call.
	low := cases.Lower(language.Und).String(subject + "\n" + body)

	category := categorize(low)
	entities := Entities{
		ErrorCodes: findCapped(errorCodeRe, body, maxErrorCodes),
		Versions:   findCapped(versionRe, body, maxVersions),
		OS:         detectOS(low),
	}

	missing := missingInfo(category, entities)

	nextStep := NextStepReply
	if len(missing) > 0 {
		nextStep = NextStepRequestInfo
	}

	confidence := baseConfidence
	if isKnownCategory(category) {
		confidence = categoryConfidence
	}

	return Result{
		Category:    category,
		Priority:    a.priority(low),
		Product:     "",
		Summary:     summarize(subject, body),
		Entities:    entities,
		MissingInfo: missing,
		DraftReply:  DraftReply(missing),
		NextStep:    nextStep,
		Confidence:  confidence,
		ModelVersions: map[string]any{
			ModelVersionKey: ModelVersionValue,
		},
	}
}

func missingInfo(category string, entities Entities) []string {
	var missing []string
	if category == CategoryBug && len(entities.ErrorCodes) == 0 {
		missing = append(missing, promptErrorText)
	}
	if needsEnvironment(category) && entities.OS == "" {
		missing = append(missing, promptOSVersion)
	}
	if len(missing) == 0 {
		missing = append(missing, promptLogs)
	}
	return missing
}

func summarize(subject, body string) string {
	firstLine, _, _ := strings.Cut(strings.TrimSpace(body), "\n")
	if summary := truncateRunes(firstLine, maxSummaryRunes); summary != "" {
		return summary
	}
	return truncateRunes(subject, maxSummaryRunes)
}

func truncateRunes(s string, max int) string {
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// DraftReply renders the acknowledgement sent as the suggested first answer.
func DraftReply(questions []string) string {
	var b strings.Builder
	b.WriteString("Здравствуйте!\n\n")
	b.WriteString("Спасибо за обращение. Мы приняли ваш запрос в работу.\n")
	b.WriteString("Чтобы быстрее помочь, уточните, пожалуйста:\n")
	b.WriteString(BulletList(questions))
	b.WriteString("\n\n")
	b.WriteString(Signature)
	return b.String()
}

// Signature closes every templated message.
const Signature = "С уважением,\nТехподдержка"

// BulletList renders questions as "- q" lines joined by newlines.
func BulletList(questions []string) string {
	lines := make([]string, len(questions))
	for i, q := range questions {
		lines[i] = "- " + q
	}
	return strings.Join(lines, "\n")
}
