// Package categorize assigns spending categories through a fixed-priority
// rule cascade: learned merchant map, then detail phrases, then merchant
// keywords, then MCC codes.
package categorize

import (
	"sort"
	"strings"

	"github.com/bogie-dev/bogie/internal/model"
)

// MerchantLookup resolves a merchant name learned from earlier approvals.
// It always outranks the static rules.
type MerchantLookup interface {
	Category(merchant string) (model.Category, bool)
}

// Context carries everything a rule may inspect.
type Context struct {
	Merchant    string // lowercased
	MCC         string
	Description string // lowercased
}

// Rule proposes a category for a context, or declines.
type Rule func(ctx Context) (model.Category, bool)

// Engine evaluates rules in priority order. First match wins.
type Engine struct {
	rules  []Rule
	labels []PhraseRule
}

// NewEngine builds an engine from rule tables and the learned merchant
// map. Precedence is fixed: learned map, phrases, keywords, MCC.
func NewEngine(rules Rules, learned MerchantLookup) *Engine {
	cascade := []Rule{
		learnedRule(learned),
		phraseRule(rules.Phrases),
		keywordRule(rules.Keywords),
		mccRule(rules.MCC),
	}
	return &Engine{rules: cascade, labels: rules.Phrases}
}

// Categorize runs the cascade. The second result reports whether a rule
// matched; when false the caller flags the transaction as unknown.
func (e *Engine) Categorize(merchant, mcc, description string) (model.Category, bool) {
	ctx := Context{
		Merchant:    strings.ToLower(merchant),
		MCC:         mcc,
		Description: strings.ToLower(description),
	}
	for _, rule := range e.rules {
		if category, ok := rule(ctx); ok {
			return category, true
		}
	}
	return "", false
}

// NormalizeDescription rewrites descriptions of known recurring services
// to their human-readable labels.
func (e *Engine) NormalizeDescription(details, description string) string {
	lower := strings.ToLower(details)
	for _, p := range e.labels {
		if p.Label != "" && strings.Contains(lower, p.Contains) {
			return p.Label
		}
	}
	return description
}

func learnedRule(learned MerchantLookup) Rule {
	return func(ctx Context) (model.Category, bool) {
		if learned == nil || ctx.Merchant == "" {
			return "", false
		}
		return learned.Category(ctx.Merchant)
	}
}

func phraseRule(phrases []PhraseRule) Rule {
	return func(ctx Context) (model.Category, bool) {
		for _, p := range phrases {
			if strings.Contains(ctx.Description, p.Contains) {
				return p.Category, true
			}
		}
		return "", false
	}
}

func keywordRule(keywords map[model.Category][]string) Rule {
	// Deterministic category order so overlapping keywords resolve the
	// same way on every run.
	categories := make([]model.Category, 0, len(keywords))
	for c := range keywords {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	return func(ctx Context) (model.Category, bool) {
		if ctx.Merchant == "" {
			return "", false
		}
		for _, category := range categories {
			for _, kw := range keywords[category] {
				if strings.Contains(ctx.Merchant, kw) {
					return category, true
				}
			}
		}
		return "", false
	}
}

func mccRule(mcc map[string]model.Category) Rule {
	return func(ctx Context) (model.Category, bool) {
		if ctx.MCC == "" {
			return "", false
		}
		category, ok := mcc[ctx.MCC]
		return category, ok
	}
}
