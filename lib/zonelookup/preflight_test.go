package zonelookup_test

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/route53"
	"github.com/aws/aws-sdk-go/service/route53/route53iface"
	"github.com/stretchr/testify/require"

	"github.com/sitebridge/infra/lib/zonelookup"
)

type fakeRegistry struct {
	route53iface.Route53API
	out *route53.ListHostedZonesByNameOutput
	err error
}

func (f *fakeRegistry) ListHostedZonesByNameWithContext(_ aws.Context, _ *route53.ListHostedZonesByNameInput, _ ...request.Option) (*route53.ListHostedZonesByNameOutput, error) {
	return f.out, f.err
}

func TestLookupZoneID_Found(t *testing.T) {
	registry := &fakeRegistry{
		out: &route53.ListHostedZonesByNameOutput{
			HostedZones: []*route53.HostedZone{
				{
					Id:   aws.String("/hostedzone/Z1234567890ABC"),
					Name: aws.String("example.com."),
				},
			},
		},
	}

	id, err := zonelookup.LookupZoneID(context.Background(), registry, "example.com.", nil)
	require.NoError(t, err)
	require.Equal(t, "Z1234567890ABC", id)
}

// ListHostedZonesByName returns the lexicographically next zone when the
// requested one is absent; the preflight must not accept it.
func TestLookupZoneID_NotFound(t *testing.T) {
	registry := &fakeRegistry{
		out: &route53.ListHostedZonesByNameOutput{
			HostedZones: []*route53.HostedZone{
				{
					Id:   aws.String("/hostedzone/Z0987654321XYZ"),
					Name: aws.String("examplf.com."),
				},
			},
		},
	}

	_, err := zonelookup.LookupZoneID(context.Background(), registry, "example.com", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, zonelookup.ErrZoneNotFound)
}
