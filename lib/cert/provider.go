package cert

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"
)

// EdgeRegion is where edge-facing certificates must live: CloudFront only
// binds viewer certificates issued in us-east-1, regardless of the rest of
// the stack's region.
const EdgeRegion = "us-east-1"

// IssueScope indicates certificate issuance scope: edge or region.
type IssueScope string

const (
	// ScopeEdge issues the certificate in us-east-1 for edge services
	// (CloudFront viewer certificates).
	ScopeEdge IssueScope = "edge"
	// ScopeRegion issues the certificate in the same region as the calling
	// stack.
	ScopeRegion IssueScope = "region"
)

// Provider defines how to obtain an ACM certificate for a domain.
type Provider interface {
	// Get returns a certificate for fqdn, validated against zone, issued
	// under the given scope. additionalSANs adds extra subject alternative
	// names.
	Get(scope constructs.Construct, id string, zone awsroute53.IHostedZone, fqdn string, s IssueScope, additionalSANs []string) awscertificatemanager.ICertificate
}

// DnsValidatedProvider requests certificates with DNS validation. The
// validation CNAME is published into the supplied zone and the certificate
// resource only reports complete once the authority has observed it, so the
// ARN token is unusable downstream until validation finished and the record
// is removed together with the certificate on teardown.
//
// Only the certificate's own domain validation option is consumed; this
// provider issues single-domain certificates plus explicit SANs, each of
// which ACM validates against the same zone.
type DnsValidatedProvider struct{}

var _ Provider = DnsValidatedProvider{}

func (DnsValidatedProvider) Get(scope constructs.Construct, id string, zone awsroute53.IHostedZone, fqdn string, s IssueScope, additionalSANs []string) awscertificatemanager.ICertificate {
	certScope := scope
	if s == ScopeEdge {
		certScope = edgeStack(scope)
	}

	props := &awscertificatemanager.CertificateProps{
		DomainName: jsii.String(fqdn),
		Validation: awscertificatemanager.CertificateValidation_FromDns(zone),
	}
	if len(additionalSANs) > 0 {
		sans := lo.Map(additionalSANs, func(name string, _ int) *string { return jsii.String(name) })
		props.SubjectAlternativeNames = &sans
	}

	return awscertificatemanager.NewCertificate(certScope, jsii.String(id), props)
}

// edgeStack returns the us-east-1 sibling stack holding edge certificates,
// creating it on first use. Consuming stacks need CrossRegionReferences
// enabled to read the ARN across regions.
func edgeStack(scope constructs.Construct) awscdk.Stack {
	parent := awscdk.Stack_Of(scope)
	const id = "EdgeCert"

	if existing := parent.Node().TryFindChild(jsii.String(id)); existing != nil {
		return existing.(awscdk.Stack)
	}

	return awscdk.NewStack(parent, jsii.String(id), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: parent.Account(),
			Region:  jsii.String(EdgeRegion),
		},
		CrossRegionReferences: jsii.Bool(true),
	})
}
