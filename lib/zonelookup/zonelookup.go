package zonelookup

import (
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// Resolve returns the hosted zone owning parentDomain. The lookup construct
// is created once per (stack, parent domain); any further caller within the
// same stack observes the same zone without a second context lookup.
// parentDomain may be in canonical trailing-dot form.
func Resolve(scope constructs.Construct, parentDomain string) awsroute53.IHostedZone {
	stack := awscdk.Stack_Of(scope)
	id := lookupID(parentDomain)

	if existing := stack.Node().TryFindChild(jsii.String(id)); existing != nil {
		return existing.(awsroute53.IHostedZone)
	}

	return awsroute53.HostedZone_FromLookup(stack, jsii.String(id), &awsroute53.HostedZoneProviderProps{
		DomainName: jsii.String(strings.TrimSuffix(parentDomain, ".")),
	})
}

// lookupID derives a stable construct id from the domain so that repeated
// resolutions land on the same tree node.
func lookupID(parentDomain string) string {
	name := strings.TrimSuffix(parentDomain, ".")
	return "ZoneLookup-" + strings.ReplaceAll(name, ".", "-")
}
