package sitecfg

// SiteSpec is the manifest entry for one site deployment. Fields left empty
// fall back to the corresponding environment variables.
type SiteSpec struct {
	// TargetDomain is the fully-qualified domain to provision.
	TargetDomain string `yaml:"targetDomain"`
	// ContentOriginAddress is the website endpoint of the static content
	// store.
	ContentOriginAddress string `yaml:"contentOriginAddress"`
	// ApiOriginURL is the base URL of the API backend.
	ApiOriginURL string `yaml:"apiOriginUrl"`
	// LogsBucketName names a pre-existing access-log bucket; empty means
	// the stack owns its own.
	LogsBucketName string `yaml:"logsBucketName,omitempty"`
}

// SiteConfig maps stack suffixes (e.g. "staging", "prod") to their site
// specs.
type SiteConfig map[string]SiteSpec
