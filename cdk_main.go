package main

import (
	"context"
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"

	"github.com/sitebridge/infra/config"
	"github.com/sitebridge/infra/lib/domainutil"
	"github.com/sitebridge/infra/lib/zonelookup"
	"github.com/sitebridge/infra/stacks"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	app := awscdk.NewApp(nil)

	// Fail before synthesis when the hosted zone is missing; a missing
	// zone is a configuration error the provider lookup would only report
	// later and less clearly.
	if os.Getenv("SITE_PREFLIGHT") == "true" {
		preflightZone(logger, os.Getenv("SITE_DOMAIN"))
	}

	stacks.SiteStack(
		app,
		config.WithStackSuffix(app, "Site"),
		&stacks.SiteStackProps{
			StackProps: awscdk.StackProps{
				Env:                   env(),
				CrossRegionReferences: jsii.Bool(true),
				Description:           jsii.String("CDN-fronted static site with API origin"),
			},
			SiteConfigPath: os.Getenv("SITE_CONFIG_PATH"),
		},
	)

	app.Synth(nil)
}

func preflightZone(logger *zap.Logger, targetDomain string) {
	parts, err := domainutil.Split(targetDomain)
	if err != nil {
		logger.Fatal("invalid SITE_DOMAIN", zap.String("domain", targetDomain), zap.Error(err))
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	zoneID, err := zonelookup.LookupZoneID(context.Background(), route53.New(sess), parts.Parent, logger)
	if err != nil {
		logger.Fatal("zone preflight failed", zap.String("parentDomain", parts.ZoneName()), zap.Error(err))
	}
	logger.Info("zone preflight ok", zap.String("zoneId", zoneID))
}

// env determines the AWS environment (account+region) in which our stack is
// to be deployed. For more information see:
// https://docs.aws.amazon.com/cdk/latest/guide/environments.html
func env() *awscdk.Environment {
	account := os.Getenv("CDK_DEPLOY_ACCOUNT")
	region := os.Getenv("CDK_DEPLOY_REGION")

	if len(account) == 0 || len(region) == 0 {
		account = os.Getenv("CDK_DEFAULT_ACCOUNT")
		region = os.Getenv("CDK_DEFAULT_REGION")
	}

	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}
}
