package config

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// StackSuffix reads "stackSuffix" from CDK context so several site stacks
// can coexist in one account (e.g. staging, prod). Empty when unset.
func StackSuffix(scope constructs.Construct) string {
	raw := scope.Node().TryGetContext(jsii.String("stackSuffix"))
	if raw == nil {
		return ""
	}
	suffix, ok := raw.(string)
	if !ok {
		panic(fmt.Sprintf("context %q must be a string, got %T", "stackSuffix", raw))
	}
	return suffix
}

// WithStackSuffix appends the context stack suffix to a base stack name.
func WithStackSuffix(scope constructs.Construct, name string) string {
	suffix := StackSuffix(scope)
	if suffix == "" {
		return name
	}
	return name + "-" + suffix
}

// SiteName reads "siteName" from CDK context; it prefixes owned resource
// names such as the default logs bucket.
func SiteName(scope constructs.Construct) string {
	raw := scope.Node().TryGetContext(jsii.String("siteName"))
	if raw == nil {
		return "site"
	}
	name, ok := raw.(string)
	if !ok {
		panic(fmt.Sprintf("context %q must be a string, got %T", "siteName", raw))
	}
	return name
}

// IsStackInSynthesis reports whether scope is being synthesized for real,
// as opposed to being instantiated under tests or listing.
func IsStackInSynthesis(scope constructs.Construct) bool {
	stack := awscdk.Stack_Of(scope)
	if stack == nil {
		return false
	}
	return *stack.BundlingRequired()
}
