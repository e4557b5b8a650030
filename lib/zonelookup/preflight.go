package zonelookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
	"go.uber.org/zap"
)

// ErrZoneNotFound indicates the DNS registry has no public hosted zone for
// the requested parent domain. This is a configuration error, not a
// transient fault, so callers must surface it rather than retry.
var ErrZoneNotFound = errors.New("hosted zone not found")

// LookupZoneID resolves the hosted zone id for parentDomain against Route53
// ahead of synthesis. The returned id is stripped of the "/hostedzone/"
// prefix so it matches what the CDK lookup would produce.
func LookupZoneID(ctx context.Context, registry route53iface.Route53API, parentDomain string, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	// Route53 stores zone names in trailing-dot form.
	dnsName := strings.TrimSuffix(parentDomain, ".") + "."

	out, err := registry.ListHostedZonesByNameWithContext(ctx, &route53.ListHostedZonesByNameInput{
		DNSName:  aws.String(dnsName),
		MaxItems: aws.String("1"),
	})
	if err != nil {
		return "", fmt.Errorf("listing hosted zones for %q: %w", parentDomain, err)
	}

	for _, zone := range out.HostedZones {
		if aws.StringValue(zone.Name) != dnsName {
			continue
		}
		id := strings.TrimPrefix(aws.StringValue(zone.Id), "/hostedzone/")
		logger.Info("resolved hosted zone",
			zap.String("domain", parentDomain),
			zap.String("zoneId", id))
		return id, nil
	}

	return "", fmt.Errorf("%w: %q", ErrZoneNotFound, parentDomain)
}
