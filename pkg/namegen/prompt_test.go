package namegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/namekit/pkg/namegen"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	t.Parallel()

	req := namegen.GenerationRequest{
		Keywords:     []string{"ocean", "blue"},
		Description:  "surf shop",
		DomainLength: 10,
		DomainStyle:  namegen.StyleCreative,
	}
	assert.Equal(t, namegen.BuildPrompt(req), namegen.BuildPrompt(req))
}

func TestBuildPrompt_Content(t *testing.T) {
	t.Parallel()

	p := namegen.BuildPrompt(namegen.GenerationRequest{
		Keywords:     []string{"ocean", "blue"},
		DomainLength: 8,
		DomainStyle:  namegen.StyleBrandable,
	})

	assert.True(t, strings.HasPrefix(p, "\nGenerate domain name suggestions based on the following parameters:\n\nKeywords: ocean, blue\n\nPreferred Domain Length: 8 characters"))
	assert.Contains(t, p, "approximately 8 characters")
	assert.Contains(t, p, "4. Are approximately 8 characters long (excluding TLD)")
	assert.Contains(t, p, "3. Match the requested style (brandable)")
	assert.Contains(t, p, "Domain Style: brandable\n")
	assert.Contains(t, p, "Please choose appropriate TLDs from popular options like: com, net, org, io, co, app, dev\n")
	assert.Contains(t, p, "For professional domains, prefer .com when appropriate.")
	assert.Contains(t, p, "Please provide 5-10 domain name suggestions")
	assert.Contains(t, p, `{"name": "example", "tld": "com"}`)
	assert.NotContains(t, p, "Project Description")
	assert.True(t, strings.HasSuffix(p, "  ]\n}\n"))

	for i := 1; i <= 6; i++ {
		assert.Contains(t, p, "\n"+string(rune('0'+i))+". ")
	}
	assert.NotContains(t, p, "\n7. ")
}

func TestBuildPrompt_Description(t *testing.T) {
	t.Parallel()

	p := namegen.BuildPrompt(namegen.GenerationRequest{
		Keywords:     []string{"a"},
		Description:  "An app for sailors",
		DomainLength: 5,
		DomainStyle:  namegen.StyleShort,
	})
	assert.Contains(t, p, "Keywords: a\nProject Description: An app for sailors\nPreferred Domain Length: 5")
}

func TestBuildPrompt_UserTLDs(t *testing.T) {
	t.Parallel()

	p := namegen.BuildPrompt(namegen.GenerationRequest{
		Keywords:     []string{"zap"},
		DomainLength: 6,
		DomainStyle:  namegen.StyleFunny,
		TLDs:         []string{"io", "ai"},
	})

	assert.Contains(t, p, "TLDs to consider: io, ai\nPlease only use these specific TLDs in your suggestions.")
	assert.NotContains(t, p, "No specific TLDs were selected")
	assert.NotContains(t, p, "popular options like")
}

func TestBuildPrompt_Pools(t *testing.T) {
	t.Parallel()

	creative := "popular options like: " + strings.Join(namegen.CreativeTLDs, ", ") + "\n"
	popular := "popular options like: " + strings.Join(namegen.PopularTLDs, ", ") + "\n"

	tests := []struct {
		style namegen.Style
		want  string
	}{
		{namegen.StyleCreative, creative},
		{namegen.StyleFunny, creative},
		{namegen.StyleShort, popular},
		{namegen.StyleBrandable, popular},
		{namegen.StyleBalanced, popular},
		{namegen.StyleProfessional, popular},
		{"unheard-of", popular},
	}

	for _, tt := range tests {
		t.Run(string(tt.style), func(t *testing.T) {
			p := namegen.BuildPrompt(namegen.GenerationRequest{
				Keywords:     []string{"k"},
				DomainLength: 8,
				DomainStyle:  tt.style,
			})
			assert.Contains(t, p, "No specific TLDs were selected by the user.\n")
			assert.Contains(t, p, tt.want)
		})
	}

	assert.Equal(t, []string{"ai", "io", "co", "me", "app", "xyz", "tech", "design"}, namegen.RecommendedTLDs(namegen.StyleCreative))
	assert.Equal(t, []string{"com", "net", "org", "io", "co", "app", "dev"}, namegen.RecommendedTLDs(namegen.StyleProfessional))
}
