package sitecfg

import (
	"fmt"
	"os"

	"github.com/aws/constructs-go/constructs/v10"
	"gopkg.in/yaml.v3"

	infracfg "github.com/sitebridge/infra/config"
)

// LoadConfig reads the site manifest from the given YAML file. A missing
// file is not an error: the caller falls back to environment variables.
func LoadConfig(filePath string) (*SiteConfig, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading site config %s: %w", filePath, err)
	}

	var cfg SiteConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling site config %s: %w", filePath, err)
	}

	return &cfg, nil
}

// GetSpecForStack returns the spec matching the current stack suffix, or
// nil when the manifest has no entry for it.
func GetSpecForStack(scope constructs.Construct, cfg *SiteConfig) *SiteSpec {
	if cfg == nil {
		return nil
	}

	suffix := infracfg.StackSuffix(scope)
	if spec, ok := (*cfg)[suffix]; ok {
		return &spec
	}

	return nil
}
