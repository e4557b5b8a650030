package zonelookup_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	"github.com/sitebridge/infra/lib/zonelookup"
)

func newTestStack() awscdk.Stack {
	app := awscdk.NewApp(nil)
	return awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})
}

// Two resolutions of the same parent domain must share one lookup construct
// and report the same zone id.
func TestResolve_Memoized(t *testing.T) {
	stack := newTestStack()

	first := zonelookup.Resolve(stack, "example.com.")
	second := zonelookup.Resolve(stack, "example.com.")

	require.Equal(t, *first.HostedZoneId(), *second.HostedZoneId())
	require.Equal(t, *first.Node().Path(), *second.Node().Path())

	lookups := 0
	for _, child := range *stack.Node().Children() {
		if p := child.Node().Id(); p != nil && *p == "ZoneLookup-example-com" {
			lookups++
		}
	}
	require.Equal(t, 1, lookups)
}

func TestResolve_DistinctDomains(t *testing.T) {
	stack := newTestStack()

	first := zonelookup.Resolve(stack, "example.com")
	second := zonelookup.Resolve(stack, "other.org")

	require.NotEqual(t, *first.Node().Path(), *second.Node().Path())
}
