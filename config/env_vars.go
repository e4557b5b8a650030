package config

import (
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// SiteEnvironmentVariables are the deployment inputs for one site stack.
// LOGS_BUCKET_NAME is optional; when empty the stack provisions its own
// logs bucket.
type SiteEnvironmentVariables struct {
	TargetDomain         string `env:"SITE_DOMAIN" validate:"required,fqdn"`
	ContentOriginAddress string `env:"CONTENT_ORIGIN_ADDRESS" validate:"required"`
	ApiOriginURL         string `env:"API_ORIGIN_URL" validate:"required,url"`
	LogsBucketName       string `env:"LOGS_BUCKET_NAME"`
}

// GetEnvironmentVariables parses T from the process environment. Only runs
// during synthesis so tests can instantiate stacks without the full
// deployment environment.
func GetEnvironmentVariables[T any](scope constructs.Construct) T {
	var envObj T

	if !IsStackInSynthesis(scope) {
		return envObj
	}

	if err := env.Parse(&envObj); err != nil {
		panic(err)
	}
	if err := validator.New().Struct(&envObj); err != nil {
		panic(err)
	}

	return envObj
}
