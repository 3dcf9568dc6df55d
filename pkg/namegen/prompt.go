package namegen

import (
	"strconv"
	"strings"
)

// SystemInstruction is the fixed system message sent with every prompt.
const SystemInstruction = "You are a domain name generation expert. Generate creative, memorable, and available domain names based on the provided keywords and parameters. Return only valid domain suggestions in JSON format."

var (
	// PopularTLDs are recommended when the user picked no TLDs.
	PopularTLDs = []string{"com", "net", "org", "io", "co", "app", "dev"}
	// CreativeTLDs replace PopularTLDs for creative and funny styles.
	CreativeTLDs = []string{"ai", "io", "co", "me", "app", "xyz", "tech", "design"}
)

// RecommendedTLDs returns the pool offered to the model for a style.
func RecommendedTLDs(style Style) []string {
	if style == StyleCreative || style == StyleFunny {
		return CreativeTLDs
	}
	return PopularTLDs
}

const promptQualities = `Please provide 5-10 domain name suggestions that:
1. Are creative and memorable
2. Reflect the keywords and project description
3. Match the requested style (%STYLE%)
4. Are approximately %LENGTH% characters long (excluding TLD)
5. Would likely be available (not common words or very short domains)
6. Each suggestion should include both the domain name and an appropriate TLD

Explanation for different styles:
- "short": Brief, concise domains that are easy to remember
- "brandable": Unique, made-up words that can become strong brand identifiers
- "balanced": A good mix of meaningfulness and creativity
- "creative": Unusual, innovative combinations that stand out
- "funny": Playful, humorous domains that evoke a smile
- "professional": Serious, trustworthy domains suitable for business

Return your response as a JSON object with this structure:
{
  "domains": [
    {"name": "example", "tld": "com"},
    {"name": "anotherexample", "tld": "io"}
  ]
}
`

// BuildPrompt renders the user message for a request. The output depends
// only on req.
func BuildPrompt(req GenerationRequest) string {
	length := strconv.Itoa(req.DomainLength)
	style := string(req.DomainStyle)

	var b strings.Builder
	b.WriteString("\nGenerate domain name suggestions based on the following parameters:\n\n")
	b.WriteString("Keywords: " + strings.Join(req.Keywords, ", ") + "\n")
	if req.Description != "" {
		b.WriteString("Project Description: " + req.Description)
	}
	b.WriteString("\n")
	b.WriteString("Preferred Domain Length: " + length + " characters (approximately for the name part, excluding TLD)\n")
	b.WriteString("Domain Style: " + style + "\n\n")
	b.WriteString(tldInstructions(req))
	b.WriteString("\n\n")
	b.WriteString(strings.NewReplacer("%STYLE%", style, "%LENGTH%", length).Replace(promptQualities))
	return b.String()
}

func tldInstructions(req GenerationRequest) string {
	if len(req.TLDs) > 0 {
		return "TLDs to consider: " + strings.Join(req.TLDs, ", ") + "\n" +
			"Please only use these specific TLDs in your suggestions."
	}
	return "No specific TLDs were selected by the user.\n" +
		"Please choose appropriate TLDs from popular options like: " + strings.Join(RecommendedTLDs(req.DomainStyle), ", ") + "\n" +
		"Select the TLD that best fits each domain name. For professional domains, prefer .com when appropriate.\n" +
		"For each suggestion, pick the TLD that enhances the domain's meaning or marketability."
}
