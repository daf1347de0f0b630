package lint

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config tunes which issues a run surfaces. Loaded from an HCL file:
//
//	min_severity = "warning"
//
//	rule "segment-no-fits" {
//	  severity = "info"
//	}
//
//	rule "job-never-addressed" {
//	  disabled = true
//	}
//
// The rules themselves always run; the config only rewrites or drops their
// output, so determinism of the underlying issue list is untouched.
type Config struct {
	MinSeverity string       `hcl:"min_severity,optional"`
	Rules       []RuleConfig `hcl:"rule,block"`
}

// RuleConfig overrides one rule's reporting.
type RuleConfig struct {
	Name     string `hcl:"name,label"`
	Severity string `hcl:"severity,optional"`
	Disabled bool   `hcl:"disabled,optional"`
}

// LoadConfig reads and validates an HCL config file.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MinSeverity != "" && severityRank(Severity(c.MinSeverity)) == 0 {
		return fmt.Errorf("unknown min_severity %q", c.MinSeverity)
	}
	for _, r := range c.Rules {
		if r.Severity != "" && severityRank(Severity(r.Severity)) == 0 {
			return fmt.Errorf("rule %q: unknown severity %q", r.Name, r.Severity)
		}
	}
	return nil
}

// Apply filters and rewrites an issue list per the config. Order of the
// surviving issues is preserved. A nil config is the identity.
func (c *Config) Apply(issues []Issue) []Issue {
	if c == nil {
		return issues
	}
	overrides := make(map[string]RuleConfig, len(c.Rules))
	for _, r := range c.Rules {
		overrides[r.Name] = r
	}
	floor := severityRank(Severity(c.MinSeverity))

	out := make([]Issue, 0, len(issues))
	for _, is := range issues {
		if o, ok := overrides[is.Rule]; ok {
			if o.Disabled {
				continue
			}
			if o.Severity != "" {
				is.Severity = Severity(o.Severity)
			}
		}
		if severityRank(is.Severity) < floor {
			continue
		}
		out = append(out, is)
	}
	return out
}
