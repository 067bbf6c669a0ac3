// Package comparison aggregates stored scenarios into a structured summary
// and relays it to the external narrative generator.
package comparison

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodesk/greenroi/internal/domain"
	"github.com/ecodesk/greenroi/internal/pkg/constants"
	"github.com/ecodesk/greenroi/internal/pkg/logger"
	"github.com/ecodesk/greenroi/internal/pkg/store"
)

const systemPrompt = "You are a senior strategist specializing in sustainable IT procurement. " +
	"You analyze investment scenarios. Your tone is professional and concise. " +
	"Use Markdown to format your answer (headings, lists, bold). " +
	"Analyze the trade-offs between financial and ecological impact. " +
	"Recommend the best scenario for a long-term strategy."

const fallbackContent = "**Service error:** the analysis engine is temporarily unavailable. Please try again later."

// maxNarrativeTokens bounds the response length requested from the generator.
const maxNarrativeTokens = 600

// Generator produces free-form narrative text for a prompt pair. It is the
// only external collaborator of this package and must never be assumed
// available.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// NarrativeResult is ephemeral per comparison call and never persisted.
type NarrativeResult struct {
	Content   string `json:"content"`
	Succeeded bool   `json:"succeeded"`
}

type Service struct {
	store     store.ScenarioStore
	generator Generator
}

func NewService(store store.ScenarioStore, generator Generator) *Service {
	return &Service{store: store, generator: generator}
}

// PrepareComparison resolves the requested ids within the owner's history.
// Fewer than two requested ids, or fewer than two resolving (stale or
// cross-owner ids are expected in normal operation), is insufficient data
// rather than a hard fault.
func (s *Service) PrepareComparison(ctx context.Context, ids []int64, ownerID int64) ([]*domain.Scenario, error) {
	if len(ids) < 2 {
		return nil, constants.ErrInsufficientScenarios
	}

	scenarios, err := s.store.GetScenarios(ctx, ids, ownerID)
	if err != nil {
		return nil, fmt.Errorf("store.GetScenarios: %w", err)
	}
	if len(scenarios) < 2 {
		return nil, constants.ErrInsufficientScenarios
	}

	return scenarios, nil
}

// BuildNarrativePrompt renders the per-scenario summary handed to the
// generator: scores rounded to one decimal for display plus a readable
// equipment list.
func BuildNarrativePrompt(scenarios []*domain.Scenario) string {
	var b strings.Builder
	b.WriteString("Compare these purchase scenarios:\n")
	for _, scenario := range scenarios {
		fmt.Fprintf(&b,
			"- Scenario ID %d (%s): Global Score: %.1f, Eco Score: %.1f, Financial Score: %.1f. Equipment: %s.\n",
			scenario.ID, scenario.Label,
			scenario.GlobalScore, scenario.EcologicalScore, scenario.FinancialScore,
			EquipmentSummary(scenario.LineItems),
		)
	}
	b.WriteString("\nGive a short synthesis of the trade-offs and a clear recommendation in Markdown.")
	return b.String()
}

// EquipmentSummary renders line items as "2x MacBook Pro M3, 5x iPhone 14".
func EquipmentSummary(items []domain.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, item.Category))
	}
	return strings.Join(parts, ", ")
}

// RequestNarrative calls the generator and degrades to a deterministic
// fallback on any failure. It never returns an error: narrative
// unavailability must not break the comparison feature.
func (s *Service) RequestNarrative(ctx context.Context, prompt string) *NarrativeResult {
	content, err := s.generator.Generate(ctx, systemPrompt, prompt, maxNarrativeTokens)
	if err != nil {
		logger.Errorf(ctx, "narrative generation failed: %s", err.Error())
		return &NarrativeResult{Content: fallbackContent, Succeeded: false}
	}
	if strings.TrimSpace(content) == "" {
		logger.Error(ctx, "narrative generator returned empty content")
		return &NarrativeResult{Content: fallbackContent, Succeeded: false}
	}

	return &NarrativeResult{Content: content, Succeeded: true}
}

// Analyze is the full comparison flow: resolve scenarios, build the prompt,
// request the narrative. The only error it can return is insufficient data.
func (s *Service) Analyze(ctx context.Context, ids []int64, ownerID int64) (*NarrativeResult, error) {
	scenarios, err := s.PrepareComparison(ctx, ids, ownerID)
	if err != nil {
		return nil, err
	}

	return s.RequestNarrative(ctx, BuildNarrativePrompt(scenarios)), nil
}
