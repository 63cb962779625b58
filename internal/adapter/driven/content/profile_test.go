package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedProfile(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Guilherme José Gonçalves", p.Name)
	assert.Equal(t, "Guilherme José Gonçalves | Portfólio", p.PageTitle)
	assert.NotEmpty(t, p.Hero)
	assert.NotEmpty(t, p.About)
	require.Len(t, p.Experience, 3)
	assert.Equal(t, "LogX (Narwal Sistemas)", p.Experience[0].Company)
	assert.Equal(t, "2022", p.Experience[2].Period)
	assert.Len(t, p.HardSkills, 5)
	assert.Len(t, p.SoftSkills, 8)
	require.Len(t, p.Blog, 1)
	assert.Equal(t, "https://github.com/guijosegon/GuiaCompletoScrum", p.Blog[0].URL)

	kinds := make([]string, 0, len(p.Socials))
	for _, s := range p.Socials {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []string{"github", "linkedin", "email"}, kinds)
}

func TestParse_DefaultsPageTitleToName(t *testing.T) {
	p, err := Parse([]byte("name: Ada\n"))
	require.NoError(t, err)

	assert.Equal(t, "Ada", p.PageTitle)
	assert.Empty(t, p.Experience)
}

func TestParse_RequiresName(t *testing.T) {
	_, err := Parse([]byte("heading: hi\n"))
	assert.ErrorContains(t, err, "name is required")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("name: Ada\nheadline: typo\n"))
	assert.Error(t, err)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("name: [unterminated\n"))
	assert.Error(t, err)
}
