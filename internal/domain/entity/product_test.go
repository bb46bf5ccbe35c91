package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestProduct_CloneIsFullyDetached(t *testing.T) {
	original := &Product{
		ID:           "p-1",
		Name:         "7 Gallon Water Jug",
		MasterItemID: "mi-1",
		SupplierID:   strPtr("sup-1"),
		Price:        "24.99",
		SKU:          strPtr("JUG-7G"),
		ASIN:         strPtr("B00JUG0001"),
		Metadata:     map[string]string{"color": "blue"},
		Tags: TagSet{
			Scenarios: []string{"EMP"},
		},
	}

	cloned := original.Clone()
	require.Equal(t, original, cloned)

	// Mutating the clone in place must not leak into the original.
	*cloned.SupplierID = "sup-2"
	*cloned.SKU = "JUG-10G"
	*cloned.ASIN = "B00JUG0002"
	cloned.Metadata["color"] = "red"
	cloned.Tags.Scenarios[0] = "flood"

	assert.Equal(t, "sup-1", *original.SupplierID)
	assert.Equal(t, "JUG-7G", *original.SKU)
	assert.Equal(t, "B00JUG0001", *original.ASIN)
	assert.Equal(t, "blue", original.Metadata["color"])
	assert.Equal(t, []string{"EMP"}, original.Tags.Scenarios)
}

func TestProduct_CloneKeepsNilPointers(t *testing.T) {
	original := &Product{ID: "p-2", Name: "Lasagna Pouch", MasterItemID: "mi-2"}

	cloned := original.Clone()
	assert.Nil(t, cloned.SupplierID)
	assert.Nil(t, cloned.SKU)
	assert.Nil(t, cloned.ASIN)
	assert.Nil(t, cloned.Metadata)
}
