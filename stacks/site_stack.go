package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/sitebridge/infra/config"
	"github.com/sitebridge/infra/config/sitecfg"
	"github.com/sitebridge/infra/lib/cdklogger"
	"github.com/sitebridge/infra/lib/website"
)

// SiteStackProps configures one site deployment.
type SiteStackProps struct {
	awscdk.StackProps
	// SiteConfigPath optionally points at a YAML manifest whose entry for
	// the current stack suffix overrides the environment inputs.
	SiteConfigPath string
}

// SiteStack provisions the CDN-fronted site for one target domain. Inputs
// come from the environment (SITE_DOMAIN, CONTENT_ORIGIN_ADDRESS,
// API_ORIGIN_URL, LOGS_BUCKET_NAME), optionally overridden by the site
// manifest. CrossRegionReferences must stay enabled: the viewer certificate
// lives in us-east-1.
func SiteStack(scope constructs.Construct, id string, props *SiteStackProps) awscdk.Stack {
	stack := awscdk.NewStack(scope, jsii.String(id), &props.StackProps)

	envVars := config.GetEnvironmentVariables[config.SiteEnvironmentVariables](stack)
	applyManifest(stack, props.SiteConfigPath, &envVars)

	var logs awss3.IBucket
	if envVars.LogsBucketName != "" {
		logs = awss3.Bucket_FromBucketName(stack, jsii.String("LogsBucket"), jsii.String(envVars.LogsBucketName))
	}

	website.NewWebsite(stack, "Site", &website.WebsiteProps{
		Name:          config.SiteName(stack),
		TargetDomain:  envVars.TargetDomain,
		ContentOrigin: website.ContentOrigin{OriginAddress: envVars.ContentOriginAddress},
		ApiOrigin:     website.ApiOrigin{URL: envVars.ApiOriginURL},
		LogsBucket:    logs,
	})

	return stack
}

// applyManifest overlays the manifest entry for this stack suffix, when one
// exists, on top of the environment inputs.
func applyManifest(stack awscdk.Stack, path string, envVars *config.SiteEnvironmentVariables) {
	if path == "" {
		return
	}

	cfg, err := sitecfg.LoadConfig(path)
	if err != nil {
		panic(err)
	}
	spec := sitecfg.GetSpecForStack(stack, cfg)
	if spec == nil {
		return
	}

	cdklogger.LogInfo(stack, "", "Using site manifest %s entry for suffix %q", path, config.StackSuffix(stack))
	if spec.TargetDomain != "" {
		envVars.TargetDomain = spec.TargetDomain
	}
	if spec.ContentOriginAddress != "" {
		envVars.ContentOriginAddress = spec.ContentOriginAddress
	}
	if spec.ApiOriginURL != "" {
		envVars.ApiOriginURL = spec.ApiOriginURL
	}
	if spec.LogsBucketName != "" {
		envVars.LogsBucketName = spec.LogsBucketName
	}
}
