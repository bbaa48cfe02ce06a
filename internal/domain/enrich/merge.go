package enrich

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/joshua0006/moneybee/internal/domain/parse"
)

// merge combines the local result with a validated remote one. Each field is
// decided independently: the side with the higher confidence for that field
// wins, ties keep the local value. The composite is recomputed from the
// merged field confidences, never copied from either side.
func merge(local parse.ParsedExpense, remote remoteFields) parse.ParsedExpense {
	out := local
	out.Method = parse.MethodAIEnhanced

	conf := local.Confidence

	if remote.confidence.Amount > conf.Amount {
		out.Amount = decimal.NewFromFloat(remote.amount)
		conf.Amount = remote.confidence.Amount
	}
	if remote.confidence.Description > conf.Description && remote.description != "" {
		out.Description = remote.description
		conf.Description = remote.confidence.Description
	}
	if remote.confidence.Category > conf.Category {
		out.Category = remote.category
		conf.Category = remote.confidence.Category
	}
	if remote.confidence.Type > conf.Type {
		out.Type = remote.txType
		conf.Type = remote.confidence.Type
	}

	if out.Merchant == "" && remote.merchant != "" {
		out.Merchant = remote.merchant
	}

	conf.Overall = conf.Weighted()
	out.Confidence = conf

	if remote.reasoning != "" {
		out.Reasoning = strings.Join([]string{local.Reasoning, "ai: " + remote.reasoning}, "; ")
	}
	return out
}
