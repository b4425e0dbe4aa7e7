package scoring

import (
	"time"

	"github.com/dotcommander/bizlens/internal/snapshot"
)

// Engine runs the eight category evaluators and aggregates their
// results. It holds no mutable state: the same snapshot and clock
// always produce the same result, and independent snapshots may be
// scored concurrently from the same Engine.
type Engine struct {
	cfg        Config
	evaluators []Evaluator
}

// NewEngine constructs an Engine from cfg. A nil clock falls back to
// time.Now and a non-positive recency window falls back to the default,
// so a zero-value Config still yields a working engine.
func NewEngine(cfg Config) *Engine {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.RecencyWindow <= 0 {
		cfg.RecencyWindow = DefaultRecencyWindow
	}
	return &Engine{
		cfg: cfg,
		evaluators: []Evaluator{
			NewProfileInfoEvaluator(),
			NewReviewsEvaluator(cfg),
			NewPhotosEvaluator(),
			NewPostsEvaluator(cfg),
			NewProductsEvaluator(),
			NewServicesEvaluator(),
			NewQAndAEvaluator(),
			NewAttributesEvaluator(),
		},
	}
}

// Score evaluates every category and returns the composite result.
// It never fails and never mutates the snapshot; a nil snapshot is
// treated as an empty profile.
func (e *Engine) Score(p *snapshot.Profile) OverallResult {
	if p == nil {
		p = &snapshot.Profile{}
	}

	categories := make(map[string]CategoryScore, len(e.evaluators))
	for _, evaluator := range e.evaluators {
		categories[evaluator.Name()] = evaluator.Evaluate(p)
	}

	return Aggregate(categories, e.cfg.Weights)
}
