package cdklogger

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// LogInfo attaches an INFO message to the construct's metadata; the CLI
// prints it during synth.
func LogInfo(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddInfo(jsii.String(prefixed(scope, constructID, format, args...)))
}

// LogWarning attaches a WARNING message to the construct's metadata.
func LogWarning(scope constructs.Construct, constructID string, format string, args ...interface{}) {
	awscdk.Annotations_Of(scope).AddWarning(jsii.String(prefixed(scope, constructID, format, args...)))
}

// prefixed prepends "[id]" unless the construct path already ends in the
// id, which would only repeat it.
func prefixed(scope constructs.Construct, constructID string, format string, args ...interface{}) string {
	message := fmt.Sprintf(format, args...)
	if constructID == "" {
		return message
	}
	path := *scope.Node().Path()
	if strings.HasSuffix(path, "/"+constructID) || path == constructID {
		return message
	}
	return fmt.Sprintf("[%s] %s", constructID, message)
}
