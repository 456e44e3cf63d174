package app

import (
	"anagrind/internal/domain"
	composersvc "anagrind/internal/services/composer"
	exclusionsvc "anagrind/internal/services/exclusion"
	matchersvc "anagrind/internal/services/matcher"
	"anagrind/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Words      domain.WordStore
	Exclusions domain.ExclusionService
	Matcher    domain.MatcherService
	Composer   domain.ComposerService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	return &Wire{
		Words:      store.NewWordListFileStore(cfg.WordListPath),
		Exclusions: exclusionsvc.New(),
		Matcher:    matchersvc.New(),
		Composer:   composersvc.New(),
	}
}
