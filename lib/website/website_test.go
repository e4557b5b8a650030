package website_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	"github.com/sitebridge/infra/lib/cert"
	"github.com/sitebridge/infra/lib/website"
)

const testCertArn = "arn:aws:acm:us-east-1:123456789012:certificate/12345678-1234-1234-1234-123456789012"

// importedCerts keeps the whole site in one stack so the template can be
// asserted without cross-region wiring.
type importedCerts struct{}

func (importedCerts) Get(scope constructs.Construct, id string, _ awsroute53.IHostedZone, _ string, _ cert.IssueScope, _ []string) awscertificatemanager.ICertificate {
	return awscertificatemanager.Certificate_FromCertificateArn(scope, jsii.String(id), jsii.String(testCertArn))
}

func newSiteStack(props *website.WebsiteProps) awscdk.Stack {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})
	website.NewWebsite(stack, "Site", props)
	return stack
}

func defaultProps() *website.WebsiteProps {
	return &website.WebsiteProps{
		Name:          "mysite",
		TargetDomain:  "www.example.com",
		ContentOrigin: website.ContentOrigin{OriginAddress: "www.example.com.s3-website-us-east-1.amazonaws.com"},
		ApiOrigin:     website.ApiOrigin{URL: "https://abcdef.execute-api.us-east-1.amazonaws.com/stage/"},
		Certs:         importedCerts{},
	}
}

func TestWebsite_Synth(t *testing.T) {
	stack := newSiteStack(defaultProps())
	template := assertions.Template_FromStack(stack, nil)

	template.ResourceCountIs(jsii.String("AWS::CloudFront::Distribution"), jsii.Number(1))
	template.ResourceCountIs(jsii.String("AWS::Route53::RecordSet"), jsii.Number(1))
	// Default logs bucket is created when none is supplied.
	template.HasResourceProperties(jsii.String("AWS::S3::Bucket"), &map[string]interface{}{
		"BucketName": "mysite-logs",
	})
}

func TestWebsite_AliasRecord(t *testing.T) {
	stack := newSiteStack(defaultProps())
	template := assertions.Template_FromStack(stack, nil)

	template.HasResourceProperties(jsii.String("AWS::Route53::RecordSet"), &map[string]interface{}{
		"Name": "www.example.com.",
		"Type": "A",
		"AliasTarget": assertions.Match_ObjectLike(&map[string]interface{}{
			"HostedZoneId":         "Z2FDTNDATAQYW2",
			"EvaluateTargetHealth": true,
		}),
	})
}

func TestWebsite_SuppliedLogsBucket(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})

	props := defaultProps()
	props.LogsBucket = awss3.Bucket_FromBucketName(stack, jsii.String("ExistingLogs"), jsii.String("pre-existing-logs"))
	website.NewWebsite(stack, "Site", props)

	template := assertions.Template_FromStack(stack, nil)
	template.ResourceCountIs(jsii.String("AWS::S3::Bucket"), jsii.Number(0))
}

// Synthesizing twice with identical inputs must produce identical
// templates: convergence without spurious changes.
func TestWebsite_SynthIdempotent(t *testing.T) {
	first := assertions.Template_FromStack(newSiteStack(defaultProps()), nil)
	second := assertions.Template_FromStack(newSiteStack(defaultProps()), nil)

	require.Equal(t, *first.ToJSON(), *second.ToJSON())
}

// The default certificate provider must issue into a us-east-1 stack.
func TestWebsite_EdgeCertificateByDefault(t *testing.T) {
	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("eu-west-1"),
		},
		CrossRegionReferences: jsii.Bool(true),
	})

	props := defaultProps()
	props.Certs = nil
	site := website.NewWebsite(stack, "Site", props)

	certStack := awscdk.Stack_Of(site.Certificate)
	require.Equal(t, cert.EdgeRegion, *certStack.Region())
	require.NotEqual(t, *stack.StackName(), *certStack.StackName())
}

func TestWebsite_InvalidDomain(t *testing.T) {
	props := defaultProps()
	props.TargetDomain = "localhost"
	require.Panics(t, func() { newSiteStack(props) })
}
