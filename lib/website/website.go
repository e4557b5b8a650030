package website

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	jsii "github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"

	"github.com/sitebridge/infra/lib/cdklogger"
	"github.com/sitebridge/infra/lib/cdn"
	"github.com/sitebridge/infra/lib/cert"
	"github.com/sitebridge/infra/lib/domainutil"
	"github.com/sitebridge/infra/lib/zonelookup"
)

// cloudFrontZoneID is the fixed hosted zone every CloudFront distribution
// endpoint lives in; alias targets must reference it, not the site's own
// zone.
const cloudFrontZoneID = "Z2FDTNDATAQYW2"

// ContentOrigin is the website-style endpoint of the static content store.
// The store itself is not owned by this construct.
type ContentOrigin struct {
	OriginAddress string `validate:"required"`
}

// ApiOrigin is the API backend; only scheme and host of the URL are used.
type ApiOrigin struct {
	URL string `validate:"required,url"`
}

// WebsiteProps holds inputs for creating a Website construct.
type WebsiteProps struct {
	// Name prefixes owned resource names, e.g. the default logs bucket.
	Name          string        `validate:"required"`
	TargetDomain  string        `validate:"required"`
	ContentOrigin ContentOrigin `validate:"required"`
	ApiOrigin     ApiOrigin     `validate:"required"`
	// LogsBucket receives distribution access logs. When nil a private
	// bucket named "<name>-logs" is created and owned by the construct.
	LogsBucket awss3.IBucket
	// Certs defaults to DnsValidatedProvider issuing in us-east-1.
	Certs cert.Provider
	// PriceClass defaults to the restricted PriceClass_100 tier.
	PriceClass awscloudfront.PriceClass
}

// Website wires the full chain for one target domain: split the domain,
// resolve its hosted zone, issue a DNS-validated certificate, compose the
// CloudFront distribution and publish the alias record. All owned resources
// are children of this construct; the hosted zone is only referenced, so
// tearing the construct down removes the alias and distribution before the
// certificate and never touches the zone.
type Website struct {
	constructs.Construct
	Certificate  awscertificatemanager.ICertificate
	Distribution awscloudfront.Distribution
	AliasRecord  awsroute53.CfnRecordSet
}

// NewWebsite provisions the site as one logical unit under scope. The
// consuming stack needs CrossRegionReferences enabled because the viewer
// certificate is issued in us-east-1.
func NewWebsite(scope constructs.Construct, id string, props *WebsiteProps) *Website {
	if err := validator.New().Struct(props); err != nil {
		panic(err)
	}

	node := constructs.NewConstruct(scope, jsii.String(id))
	site := &Website{Construct: node}

	parts, err := domainutil.Split(props.TargetDomain)
	if err != nil {
		panic(err)
	}

	zone := zonelookup.Resolve(node, parts.Parent)

	certs := props.Certs
	if certs == nil {
		certs = cert.DnsValidatedProvider{}
	}
	site.Certificate = certs.Get(node, "Cert", zone, props.TargetDomain, cert.ScopeEdge, nil)

	logs := props.LogsBucket
	if logs == nil {
		logs = awss3.NewBucket(node, jsii.String("LogsBucket"), &awss3.BucketProps{
			BucketName:        jsii.String(props.Name + "-logs"),
			BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
			// CloudFront delivers logs via bucket ACLs.
			ObjectOwnership: awss3.ObjectOwnership_OBJECT_WRITER,
			AccessControl:   awss3.BucketAccessControl_LOG_DELIVERY_WRITE,
		})
	}

	site.Distribution = cdn.NewSiteDistribution(node, jsii.String("Distribution"), cdn.SiteDistributionConfig{
		DomainName:           props.TargetDomain,
		ContentOriginAddress: props.ContentOrigin.OriginAddress,
		ApiOriginURL:         props.ApiOrigin.URL,
		Certificate:          site.Certificate,
		LogsBucket:           logs,
		PriceClass:           props.PriceClass,
	})

	site.AliasRecord = publishAlias(node, parts, zone, site.Distribution)

	cdklogger.LogInfo(node, id, "Provisioning site %s behind CloudFront, zone %s", props.TargetDomain, parts.ZoneName())

	awscdk.NewCfnOutput(node, jsii.String("CertificateArn"), &awscdk.CfnOutputProps{Value: site.Certificate.CertificateArn()})
	awscdk.NewCfnOutput(node, jsii.String("DistributionEndpoint"), &awscdk.CfnOutputProps{Value: site.Distribution.DistributionDomainName()})
	awscdk.NewCfnOutput(node, jsii.String("AliasRecordName"), &awscdk.CfnOutputProps{Value: site.AliasRecord.Name()})

	return site
}

// publishAlias points the target domain at the distribution endpoint. The
// L1 record set is used because the alias target's health evaluation is not
// exposed on the L2 ARecord.
func publishAlias(scope constructs.Construct, parts domainutil.DomainParts, zone awsroute53.IHostedZone, distribution awscloudfront.Distribution) awsroute53.CfnRecordSet {
	return awsroute53.NewCfnRecordSet(scope, jsii.String("AliasRecord"), &awsroute53.CfnRecordSetProps{
		HostedZoneId: zone.HostedZoneId(),
		Name:         jsii.String(parts.FQDN()),
		Type:         jsii.String("A"),
		AliasTarget: &awsroute53.CfnRecordSet_AliasTargetProperty{
			DnsName:              distribution.DistributionDomainName(),
			HostedZoneId:         jsii.String(cloudFrontZoneID),
			EvaluateTargetHealth: jsii.Bool(true),
		},
	})
}
