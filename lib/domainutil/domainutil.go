package domainutil

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDomain indicates the input is not a fully-qualified domain,
// i.e. it carries no registered-domain suffix at all.
var ErrInvalidDomain = errors.New("invalid domain: no registered-domain suffix")

// DomainParts is the decomposition of a fully-qualified domain into the
// leaf subdomain label and the parent (registered) domain. When the parent
// carries more than one label it is canonicalized with a trailing dot, the
// form hosted-zone lookups expect.
type DomainParts struct {
	Sub    string
	Parent string
}

// Split decomposes a fully-qualified domain name. With exactly two labels
// the whole input is the parent domain and the subdomain is empty; with
// more, the first label is the subdomain and the rest become the parent in
// canonical (trailing-dot) form.
func Split(domain string) (DomainParts, error) {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return DomainParts{}, fmt.Errorf("%w: %q", ErrInvalidDomain, domain)
	}
	if len(labels) == 2 {
		return DomainParts{Sub: "", Parent: domain}, nil
	}
	return DomainParts{
		Sub:    labels[0],
		Parent: strings.Join(labels[1:], ".") + ".",
	}, nil
}

// FQDN rejoins the parts into the canonical record name, always with a
// trailing dot.
func (p DomainParts) FQDN() string {
	name := strings.TrimSuffix(p.Parent, ".")
	if p.Sub != "" {
		name = p.Sub + "." + name
	}
	return name + "."
}

// ZoneName returns the parent domain in the bare form (no trailing dot)
// accepted by zone lookups.
func (p DomainParts) ZoneName() string {
	return strings.TrimSuffix(p.Parent, ".")
}
