package catalog

import (
	"prepcat/internal/domain/entity"
)

// TokenKind distinguishes literal display tokens from symbolic icons.
type TokenKind string

const (
	TokenText TokenKind = "text"
	TokenIcon TokenKind = "icon"
)

// DisplayToken is the render-ready form of a raw tag value: either a short
// literal string or an icon name, always with a human-readable label for
// tooltips.
type DisplayToken struct {
	Kind  TokenKind `json:"kind"`
	Text  string    `json:"text,omitempty"`
	Icon  string    `json:"icon,omitempty"`
	Label string    `json:"label"`
}

// Fixed per-dimension display vocabularies. Values outside these maps pass
// through unchanged as literal text; unknown input is not an error.
var (
	scenarioTokens = map[string]DisplayToken{
		"EMP":          {Kind: TokenText, Text: "EMP", Label: "Electromagnetic pulse"},
		"earthquake":   {Kind: TokenIcon, Icon: "house-crack", Label: "Earthquake"},
		"flood":        {Kind: TokenIcon, Icon: "water", Label: "Flood"},
		"wildfire":     {Kind: TokenIcon, Icon: "fire", Label: "Wildfire"},
		"hurricane":    {Kind: TokenIcon, Icon: "hurricane", Label: "Hurricane"},
		"winter storm": {Kind: TokenIcon, Icon: "snowflake", Label: "Winter storm"},
		"blackout":     {Kind: TokenIcon, Icon: "plug-circle-xmark", Label: "Power blackout"},
		"pandemic":     {Kind: TokenIcon, Icon: "virus", Label: "Pandemic"},
	}

	demographicTokens = map[string]DisplayToken{
		"man":    {Kind: TokenIcon, Icon: "mars", Label: "Man"},
		"woman":  {Kind: TokenIcon, Icon: "venus", Label: "Woman"},
		"adult":  {Kind: TokenIcon, Icon: "user", Label: "Adult"},
		"child":  {Kind: TokenIcon, Icon: "child", Label: "Child"},
		"baby":   {Kind: TokenIcon, Icon: "baby", Label: "Baby"},
		"senior": {Kind: TokenIcon, Icon: "person-cane", Label: "Senior"},
		"pet":    {Kind: TokenIcon, Icon: "paw", Label: "Pet"},
	}

	timeframeTokens = map[string]DisplayToken{
		"72 hours": {Kind: TokenText, Text: "72H", Label: "First 72 hours"},
		"1 week":   {Kind: TokenText, Text: "1W", Label: "1 week"},
		"1 month":  {Kind: TokenText, Text: "1M", Label: "1 month"},
		"3 months": {Kind: TokenText, Text: "3M", Label: "3 months"},
		"6 months": {Kind: TokenText, Text: "6M", Label: "6 months"},
		"1 year":   {Kind: TokenText, Text: "1Y", Label: "1 year"},
		"5 years":  {Kind: TokenText, Text: "5Y", Label: "5 years"},
	}

	locationTokens = map[string]DisplayToken{
		"home":    {Kind: TokenIcon, Icon: "house", Label: "Home"},
		"car":     {Kind: TokenIcon, Icon: "car", Label: "Car"},
		"work":    {Kind: TokenIcon, Icon: "briefcase", Label: "Work"},
		"bug out": {Kind: TokenText, Text: "BOB", Label: "Bug-out bag"},
	}
)

// Format maps a raw tag value to its display token. Pure and total:
// unrecognized values become literal text tokens labeled with themselves.
func Format(raw string, dim entity.TagDimension) DisplayToken {
	var vocabulary map[string]DisplayToken
	switch dim {
	case entity.DimensionScenarios:
		vocabulary = scenarioTokens
	case entity.DimensionDemographics:
		vocabulary = demographicTokens
	case entity.DimensionTimeframes:
		vocabulary = timeframeTokens
	case entity.DimensionLocations:
		vocabulary = locationTokens
	}

	if token, ok := vocabulary[raw]; ok {
		return token
	}

	return DisplayToken{Kind: TokenText, Text: raw, Label: raw}
}

// FormatAll maps a slice of raw values in order.
func FormatAll(raw []string, dim entity.TagDimension) []DisplayToken {
	tokens := make([]DisplayToken, 0, len(raw))
	for _, value := range raw {
		tokens = append(tokens, Format(value, dim))
	}

	return tokens
}
