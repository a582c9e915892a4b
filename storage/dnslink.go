package storage

import (
	"fmt"
	"net"
	"strings"
)

const (
	// dnslinkPrefix is the TXT record payload prefix carrying a will CID.
	dnslinkPrefix = "dnslink=/will/"

	// dnslinkLabel is prepended to the domain for TXT lookups.
	dnslinkLabel = "_dnslink."
)

// TXTResolver defines the interface for DNS TXT lookups.
// This allows tests to mock DNS resolution.
type TXTResolver interface {
	// LookupTXT looks up TXT records for the given name.
	LookupTXT(name string) ([]string, error)
}

// defaultTXTResolver wraps the standard net package DNS functions.
type defaultTXTResolver struct{}

func (defaultTXTResolver) LookupTXT(name string) ([]string, error) {
	return net.LookupTXT(name)
}

// DefaultResolver is the production TXT resolver using the net package.
var DefaultResolver TXTResolver = defaultTXTResolver{}

// DNSLinkName returns the TXT record name that publishes the will pointer
// for a domain (e.g. "_dnslink.estate.example.org").
func DNSLinkName(domain string) string {
	return dnslinkLabel + domain
}

// FormatDNSLink renders the TXT record payload publishing cid
// (e.g. "dnslink=/will/4e0365...").
func FormatDNSLink(cid CID) string {
	return dnslinkPrefix + cid.String()
}

// ResolveDNSLink resolves the will CID published for a domain.
func ResolveDNSLink(domain string) (CID, error) {
	return ResolveDNSLinkWithResolver(domain, DefaultResolver)
}

// ResolveDNSLinkWithResolver resolves the DNSLink pointer using the provided
// resolver. It looks up _dnslink.{domain} TXT records and extracts the CID
// from the first record with the "dnslink=/will/" prefix.
func ResolveDNSLinkWithResolver(domain string, resolver TXTResolver) (CID, error) {
	if domain == "" {
		return CID{}, fmt.Errorf("%w: empty domain", ErrDNSLookupFailed)
	}

	name := DNSLinkName(domain)
	txts, err := resolver.LookupTXT(name)
	if err != nil {
		return CID{}, fmt.Errorf("%w: TXT lookup for %s: %w", ErrDNSLookupFailed, name, err)
	}

	// Find the first TXT record with the dnslink prefix.
	for _, txt := range txts {
		txt = strings.TrimSpace(txt)
		if !strings.HasPrefix(txt, dnslinkPrefix) {
			continue
		}
		cid, err := ParseCID(strings.TrimSpace(strings.TrimPrefix(txt, dnslinkPrefix)))
		if err != nil {
			return CID{}, err
		}
		return cid, nil
	}

	return CID{}, fmt.Errorf("%w: no %q TXT record for %s", ErrNoDNSLink, dnslinkPrefix, name)
}
