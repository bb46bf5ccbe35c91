package handler

import (
	"encoding/json"
	"testing"

	"prepcat/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagPatchRequest_ToPatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want entity.TagPatch
	}{
		{
			name: "absent fields leave dimensions untouched",
			body: `{}`,
			want: entity.TagPatch{},
		},
		{
			name: "null reverts to inherited",
			body: `{"scenarios": null}`,
			want: entity.TagPatch{
				Scenarios: entity.TagFieldPatch{Present: true},
			},
		},
		{
			name: "array becomes an override",
			body: `{"scenarios": ["EMP", "flood"]}`,
			want: entity.TagPatch{
				Scenarios: entity.TagFieldPatch{Present: true, Values: []string{"EMP", "flood"}},
			},
		},
		{
			name: "empty array is an override with nothing",
			body: `{"demographics": []}`,
			want: entity.TagPatch{
				Demographics: entity.TagFieldPatch{Present: true, Values: []string{}},
			},
		},
		{
			name: "mixed states across dimensions",
			body: `{"scenarios": ["EMP"], "timeframes": null, "locations": []}`,
			want: entity.TagPatch{
				Scenarios:  entity.TagFieldPatch{Present: true, Values: []string{"EMP"}},
				Timeframes: entity.TagFieldPatch{Present: true},
				Locations:  entity.TagFieldPatch{Present: true, Values: []string{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req TagPatchRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			patch, err := req.ToPatch()
			require.NoError(t, err)
			assert.Equal(t, tt.want, *patch)
		})
	}
}

func TestTagPatchRequest_ToPatchRejectsNonArray(t *testing.T) {
	t.Parallel()

	var req TagPatchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"scenarios": "EMP"}`), &req))

	_, err := req.ToPatch()
	assert.Error(t, err)
}

func TestDecodeFieldPatchEmptyArrayStaysNonNil(t *testing.T) {
	t.Parallel()

	patch, err := decodeFieldPatch(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.True(t, patch.Present)
	require.NotNil(t, patch.Values)
	assert.Empty(t, patch.Values)
}
