package namegen

// Style is the naming flavour the user asked for. Values outside the known
// set are accepted and treated like any non-creative style.
type Style string

const (
	StyleShort        Style = "short"
	StyleBrandable    Style = "brandable"
	StyleBalanced     Style = "balanced"
	StyleCreative     Style = "creative"
	StyleFunny        Style = "funny"
	StyleProfessional Style = "professional"
)

// Known reports whether s is one of the documented styles.
func (s Style) Known() bool {
	switch s {
	case StyleShort, StyleBrandable, StyleBalanced, StyleCreative, StyleFunny, StyleProfessional:
		return true
	}
	return false
}

// GenerationRequest is a validated naming brief.
type GenerationRequest struct {
	Keywords     []string `json:"keywords"`
	Description  string   `json:"description,omitempty"`
	DomainLength int      `json:"domainLength"`
	DomainStyle  Style    `json:"domainStyle"`
	TLDs         []string `json:"tlds,omitempty"`
}

// DomainCandidate is one suggestion as returned by the model.
type DomainCandidate struct {
	Name string `json:"name"`
	TLD  string `json:"tld"`
}

// FullName joins name and TLD with a dot, preserving case.
func (c DomainCandidate) FullName() string {
	return c.Name + "." + c.TLD
}

// AffiliateLinks are registrar purchase URLs for an available domain.
type AffiliateLinks struct {
	GoDaddy   string `json:"godaddy"`
	Namecheap string `json:"namecheap"`
}

// DomainResult is one classified, enriched suggestion.
// AffiliateLinks is nil unless Available is true.
type DomainResult struct {
	Name           string          `json:"name"`
	Available      bool            `json:"available"`
	AffiliateLinks *AffiliateLinks `json:"affiliateLinks"`
}

// Response is the pipeline output.
type Response struct {
	Results []DomainResult `json:"results"`
	// Degraded is set when availability could not be checked and every
	// result was reported available.
	Degraded bool `json:"degraded,omitempty"`
}
