package commands

import (
	"fmt"
	"path/filepath"

	"github.com/bogie-dev/bogie/internal/categorize"
	"github.com/bogie-dev/bogie/internal/config"
	"github.com/bogie-dev/bogie/internal/dedup"
	"github.com/bogie-dev/bogie/internal/ledger"
	"github.com/bogie-dev/bogie/internal/learned"
	"github.com/bogie-dev/bogie/internal/review"
	"github.com/bogie-dev/bogie/internal/statement"
)

// env holds one invocation's configuration, rule tables, and stores,
// all rooted in the data directory.
type env struct {
	dir       string
	cfg       *config.Config
	rules     categorize.Rules
	ledger    *ledger.Service
	queue     *review.Store
	merchants *learned.Store
	dedup     *dedup.Store
}

func newEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, err
	}
	rules, err := categorize.LoadRules(filepath.Join(absDir, config.RulesFile))
	if err != nil {
		return nil, err
	}

	return &env{
		dir:       absDir,
		cfg:       cfg,
		rules:     rules,
		ledger:    ledger.NewService(filepath.Join(absDir, config.LedgerFile)),
		queue:     review.NewStore(filepath.Join(absDir, config.QueueFile)),
		merchants: learned.NewStore(filepath.Join(absDir, config.MerchantMapFile)),
		dedup:     dedup.NewStore(filepath.Join(absDir, config.DedupFile)),
	}, nil
}

// parsers returns the registry of statement dialects, with the engine's
// description normalization and the configured beneficiaries wired in.
func (e *env) parsers(engine *categorize.Engine) *statement.Registry {
	reg := statement.NewRegistry()
	reg.Register(&statement.BoGParser{
		Beneficiaries: e.cfg.Beneficiaries(),
		Normalize:     engine.NormalizeDescription,
	})
	return reg
}
