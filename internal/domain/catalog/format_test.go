package catalog

import (
	"testing"

	"prepcat/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormat_KnownValues(t *testing.T) {
	tests := []struct {
		raw  string
		dim  entity.TagDimension
		want DisplayToken
	}{
		{raw: "1 year", dim: entity.DimensionTimeframes, want: DisplayToken{Kind: TokenText, Text: "1Y", Label: "1 year"}},
		{raw: "72 hours", dim: entity.DimensionTimeframes, want: DisplayToken{Kind: TokenText, Text: "72H", Label: "First 72 hours"}},
		{raw: "man", dim: entity.DimensionDemographics, want: DisplayToken{Kind: TokenIcon, Icon: "mars", Label: "Man"}},
		{raw: "home", dim: entity.DimensionLocations, want: DisplayToken{Kind: TokenIcon, Icon: "house", Label: "Home"}},
		{raw: "EMP", dim: entity.DimensionScenarios, want: DisplayToken{Kind: TokenText, Text: "EMP", Label: "Electromagnetic pulse"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.raw, tt.dim))
		})
	}
}

func TestFormat_UnknownValuesPassThrough(t *testing.T) {
	token := Format("zombie apocalypse", entity.DimensionScenarios)

	assert.Equal(t, DisplayToken{Kind: TokenText, Text: "zombie apocalypse", Label: "zombie apocalypse"}, token)
}

func TestFormat_DimensionsDoNotLeakVocabulary(t *testing.T) {
	// "man" is a demographics icon; in scenarios it is just text.
	token := Format("man", entity.DimensionScenarios)

	assert.Equal(t, TokenText, token.Kind)
	assert.Equal(t, "man", token.Text)
}

func TestFormatAll_PreservesOrder(t *testing.T) {
	tokens := FormatAll([]string{"1 year", "3 months"}, entity.DimensionTimeframes)

	assert.Equal(t, []string{"1Y", "3M"}, []string{tokens[0].Text, tokens[1].Text})
}
