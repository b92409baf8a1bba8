package review

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bogie-dev/bogie/internal/model"
)

// Decision records the outcome of a single approval instruction.
type Decision struct {
	Token    string // the raw instruction
	Index    int    // 1-based queue position, 0 when unparsable
	Item     model.ReviewItem
	Category model.Category // set when approved
	Skip     bool
	Err      error // per-instruction failure, batch continues
}

// BatchResult is the aggregate effect of applying a batch of approval
// instructions against one queue snapshot.
type BatchResult struct {
	Decisions []Decision
	Approved  []model.Entry             // rows to append to the ledger
	Learned   map[string]model.Category // merchant -> category to record
	Remaining []model.ReviewItem
}

// Apply processes instructions of the form "N=Category" or "N=skip"
// against the queue snapshot. Invalid instructions are recorded as
// per-decision errors and leave the queue untouched for that item.
func Apply(items []model.ReviewItem, tokens []string) BatchResult {
	result := BatchResult{
		Learned: make(map[string]model.Category),
	}
	removed := make(map[int]struct{})

	for _, token := range tokens {
		decision := apply(items, token, removed, &result)
		result.Decisions = append(result.Decisions, decision)
	}

	for i, it := range items {
		if _, gone := removed[i]; !gone {
			result.Remaining = append(result.Remaining, it)
		}
	}
	return result
}

func apply(items []model.ReviewItem, token string, removed map[int]struct{}, result *BatchResult) Decision {
	decision := Decision{Token: token}

	idxRaw, catRaw, found := strings.Cut(token, "=")
	if !found {
		decision.Err = fmt.Errorf("malformed instruction %q, use N=Category or N=skip", token)
		return decision
	}

	idx, err := strconv.Atoi(idxRaw)
	if err != nil {
		decision.Err = fmt.Errorf("bad index %q", idxRaw)
		return decision
	}
	decision.Index = idx

	if idx < 1 || idx > len(items) {
		decision.Err = fmt.Errorf("index %d out of range (1-%d)", idx, len(items))
		return decision
	}
	decision.Item = items[idx-1]

	if strings.EqualFold(strings.TrimSpace(catRaw), "skip") {
		decision.Skip = true
		removed[idx-1] = struct{}{}
		return decision
	}

	category, ok := model.ParseCategory(strings.TrimSpace(catRaw))
	if !ok {
		decision.Err = fmt.Errorf("unknown category %q, valid: %s", strings.TrimSpace(catRaw), model.CategoryList())
		return decision
	}

	decision.Category = category
	removed[idx-1] = struct{}{}
	result.Approved = append(result.Approved, decision.Item.Entry(category))
	if decision.Item.Merchant != "" {
		result.Learned[strings.ToLower(decision.Item.Merchant)] = category
	}
	return decision
}
