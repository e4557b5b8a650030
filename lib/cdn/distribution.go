package cdn

import (
	"fmt"
	"net/url"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"
)

const (
	// apiPathPattern scopes the uncached behavior; everything else falls
	// through to the static default behavior.
	apiPathPattern = "/api/*"
	// apiOriginPath is the fixed deployment stage prefix on the API origin.
	apiOriginPath = "/stage"

	staticCacheTTLSeconds = 600
)

// SiteDistributionConfig holds inputs for composing the site's CloudFront
// distribution. The certificate must already be scheduled for issuance; its
// ARN token resolving is what orders distribution creation after validation.
type SiteDistributionConfig struct {
	DomainName string `validate:"required"`
	// ContentOriginAddress is the website-style endpoint of the static
	// content store.
	ContentOriginAddress string `validate:"required"`
	// ApiOriginURL is the base URL of the API backend; only the host is
	// used, the path is replaced by the fixed origin path.
	ApiOriginURL string                             `validate:"required,url"`
	Certificate  awscertificatemanager.ICertificate `validate:"required"`
	LogsBucket   awss3.IBucket                      `validate:"required"`
	PriceClass   awscloudfront.PriceClass
}

// NewSiteDistribution composes the CDN distribution: a cached static
// default behavior in front of the content origin, an uncached /api/*
// behavior proxying to the API origin, SPA-friendly error remapping, and
// TLS bound to the given certificate via SNI.
func NewSiteDistribution(scope constructs.Construct, id *string, cfg SiteDistributionConfig) awscloudfront.Distribution {
	if err := validator.New().Struct(cfg); err != nil {
		panic(err)
	}

	priceClass := cfg.PriceClass
	if priceClass == "" {
		priceClass = awscloudfront.PriceClass_PRICE_CLASS_100
	}

	// Static content is cacheable for up to ten minutes and the cache key
	// carries no cookies or query string.
	staticCache := awscloudfront.NewCachePolicy(scope, jsii.Sprintf("%sStaticCache", *id), &awscloudfront.CachePolicyProps{
		MinTtl:              awscdk.Duration_Seconds(jsii.Number(0)),
		DefaultTtl:          awscdk.Duration_Seconds(jsii.Number(staticCacheTTLSeconds)),
		MaxTtl:              awscdk.Duration_Seconds(jsii.Number(staticCacheTTLSeconds)),
		CookieBehavior:      awscloudfront.CacheCookieBehavior_None(),
		QueryStringBehavior: awscloudfront.CacheQueryStringBehavior_None(),
		HeaderBehavior:      awscloudfront.CacheHeaderBehavior_None(),
	})

	return awscloudfront.NewDistribution(scope, id, &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin: awscloudfrontorigins.NewHttpOrigin(jsii.String(cfg.ContentOriginAddress), &awscloudfrontorigins.HttpOriginProps{
				HttpPort:       jsii.Number(80),
				HttpsPort:      jsii.Number(443),
				ProtocolPolicy: awscloudfront.OriginProtocolPolicy_HTTP_ONLY,
				OriginSslProtocols: &[]awscloudfront.OriginSslPolicy{
					awscloudfront.OriginSslPolicy_TLS_V1_2,
				},
			}),
			AllowedMethods:       awscloudfront.AllowedMethods_ALLOW_GET_HEAD_OPTIONS(),
			CachePolicy:          staticCache,
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
		},
		AdditionalBehaviors: &map[string]*awscloudfront.BehaviorOptions{
			// API traffic is never cached and the full request (methods,
			// query string, cookies) reaches the backend.
			apiPathPattern: {
				Origin: awscloudfrontorigins.NewHttpOrigin(jsii.String(apiOriginHost(cfg.ApiOriginURL)), &awscloudfrontorigins.HttpOriginProps{
					ProtocolPolicy: awscloudfront.OriginProtocolPolicy_HTTPS_ONLY,
					OriginPath:     jsii.String(apiOriginPath),
				}),
				AllowedMethods:       awscloudfront.AllowedMethods_ALLOW_ALL(),
				CachePolicy:          awscloudfront.CachePolicy_CACHING_DISABLED(),
				OriginRequestPolicy:  awscloudfront.OriginRequestPolicy_ALL_VIEWER(),
				ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
			},
		},
		ErrorResponses: &[]*awscloudfront.ErrorResponse{
			{
				HttpStatus:         jsii.Number(404),
				ResponseHttpStatus: jsii.Number(404),
				ResponsePagePath:   jsii.String("/404.html"),
			},
			// The content origin answers 403 for unknown keys; remapping to
			// the index page lets client-side routed apps handle the path.
			{
				HttpStatus:         jsii.Number(403),
				ResponseHttpStatus: jsii.Number(200),
				ResponsePagePath:   jsii.String("/index.html"),
			},
		},
		DomainNames:            &[]*string{jsii.String(cfg.DomainName)},
		Certificate:            cfg.Certificate,
		SslSupportMethod:       awscloudfront.SSLMethod_SNI,
		MinimumProtocolVersion: awscloudfront.SecurityPolicyProtocol_TLS_V1_2_2021,
		PriceClass:             priceClass,
		EnableLogging:          jsii.Bool(true),
		LogBucket:              cfg.LogsBucket,
		LogFilePrefix:          jsii.String(cfg.DomainName + "/"),
		LogIncludesCookies:     jsii.Bool(false),
	})
}

// apiOriginHost strips scheme and path from the API endpoint URL down to
// the bare host.
func apiOriginHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		panic(fmt.Errorf("invalid api origin url %q: %w", rawURL, err))
	}
	if parsed.Host == "" {
		panic(fmt.Errorf("api origin url %q has no host", rawURL))
	}
	return parsed.Host
}
