// Package config provides loading and environment overlay for the contigset
// CLI configuration. It exposes a Default() baseline, a JSON file loader,
// and a CONTIG_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("contigset.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil {
//	    // reject startup
//	}
package config
