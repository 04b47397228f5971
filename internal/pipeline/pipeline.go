// Package pipeline orchestrates lead enrichment: insights, contacts,
// outreach message, and priority score per lead.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/contacts"
	"github.com/sells-group/leadgen-cli/internal/insights"
	"github.com/sells-group/leadgen-cli/internal/message"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/scrape"
	"github.com/sells-group/leadgen-cli/internal/scorer"
)

// maxBatchLeads caps how many leads one run enriches.
const maxBatchLeads = 5

// Pipeline enriches a batch of leads sequentially.
type Pipeline struct {
	scraper scrape.Scraper
	synth   *message.Synthesizer
	scorer  *scorer.Scorer
}

// New creates a Pipeline.
func New(s scrape.Scraper, synth *message.Synthesizer, sc *scorer.Scorer) *Pipeline {
	return &Pipeline{scraper: s, synth: synth, scorer: sc}
}

// EnrichBatch enriches at most the first five leads, strictly in input
// order, one lead fully at a time. Every per-lead failure degrades to a
// documented fallback value, so the batch always yields exactly
// min(5, len(leads)) records.
func (p *Pipeline) EnrichBatch(ctx context.Context, leads []model.Lead) []model.EnrichedLead {
	if len(leads) > maxBatchLeads {
		leads = leads[:maxBatchLeads]
	}

	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("enrichment batch started", zap.Int("leads", len(leads)))

	enriched := make([]model.EnrichedLead, 0, len(leads))
	for index, lead := range leads {
		log.Info("enriching lead",
			zap.Int("index", index),
			zap.String("company", lead.Name),
			zap.String("website", lead.Website),
		)
		enriched = append(enriched, p.enrichOne(ctx, lead, index, log))
	}

	log.Info("enrichment batch complete", zap.Int("enriched", len(enriched)))
	return enriched
}

// enrichOne runs the full enrichment sequence for a single lead. The
// website is fetched twice: once for insights, once for contacts, each
// with independent failure handling.
func (p *Pipeline) enrichOne(ctx context.Context, lead model.Lead, index int, log *zap.Logger) model.EnrichedLead {
	doc, err := p.scraper.Fetch(ctx, lead.Website)
	if err != nil {
		log.Warn("pipeline: insight fetch failed, using fallback insights",
			zap.String("website", lead.Website),
			zap.Error(err),
		)
		doc = nil
	}
	ins := insights.Extract(doc)

	var pageText string
	contactDoc, err := p.scraper.Fetch(ctx, lead.Website)
	if err != nil {
		log.Warn("pipeline: contact fetch failed, no contacts found",
			zap.String("website", lead.Website),
			zap.Error(err),
		)
	} else {
		pageText = contactDoc.Text()
	}
	cts := contacts.Extract(pageText)
	validEmails := contacts.Revalidate(cts.Emails)

	msg := p.synth.Synthesize(ctx, lead.Name, ins)

	out := model.EnrichedLead{
		Lead:        lead,
		Insights:    ins,
		Contacts:    cts,
		ValidEmails: validEmails,
		Message:     msg,
	}
	out.Score = p.scorer.Score(out, index)

	log.Info("lead enriched",
		zap.String("company", lead.Name),
		zap.Int("score", out.Score),
		zap.Int("emails", len(validEmails)),
		zap.Int("phones", len(cts.Phones)),
		zap.Strings("insights", ins),
	)
	return out
}
