package namegen

import (
	"net/url"
	"strings"
)

const (
	// DefaultNamecheapRedirect is the affiliate click-through wrapping
	// Namecheap search URLs.
	DefaultNamecheapRedirect = "https://www.anrdoezrs.net/click-101410219-12892698"

	godaddySearchURL   = "https://www.godaddy.com/domainsearch/find"
	namecheapSearchURL = "https://www.namecheap.com/domains/registration/results/?domain="
)

// LinkBuilder builds registrar links for available domains.
// The zero value uses DefaultNamecheapRedirect.
type LinkBuilder struct {
	NamecheapRedirect string
}

// Enrich converts a classified candidate into a result. Links are attached
// only when available is true.
func (b LinkBuilder) Enrich(c DomainCandidate, available bool) DomainResult {
	res := DomainResult{
		Name:      c.FullName(),
		Available: available,
	}
	if available {
		res.AffiliateLinks = &AffiliateLinks{
			GoDaddy:   b.godaddy(c),
			Namecheap: b.namecheap(c),
		}
	}
	return res
}

func (b LinkBuilder) godaddy(c DomainCandidate) string {
	return godaddySearchURL +
		"?domainToCheck=" + url.QueryEscape(c.Name) +
		"&tld=." + url.QueryEscape(c.TLD) +
		"&checkAvail=1"
}

func (b LinkBuilder) namecheap(c DomainCandidate) string {
	redirect := b.NamecheapRedirect
	if redirect == "" {
		redirect = DefaultNamecheapRedirect
	}
	return redirect + "?url=" + encodeURIComponent(namecheapSearchURL+c.FullName())
}

// encodeURIComponent escapes s like the JavaScript function of that name:
// everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded and
// spaces become %20.
func encodeURIComponent(s string) string {
	return jsUnreserved.Replace(url.QueryEscape(s))
}

var jsUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
