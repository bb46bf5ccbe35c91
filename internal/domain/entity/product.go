package entity

// Product is a concrete purchasable item under a master item.
//
// Price arrives from the external data layer as a decimal serialized either
// as a string or a number; it is held verbatim and coerced where needed.
// Tag dimensions follow the inherit-vs-override sentinel documented on TagSet.
type Product struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	MasterItemID string            `json:"master_item_id"`
	SupplierID   *string           `json:"supplier_id"`
	Price        string            `json:"price"`
	SKU          *string           `json:"sku"`
	ASIN         *string           `json:"asin"`
	Metadata     map[string]string `json:"metadata"`
	Tags         TagSet            `json:"tags"`
}

// HasOverriddenTags reports whether any tag dimension overrides the master
// item, for UI badge purposes. An empty override still counts.
func (p *Product) HasOverriddenTags() bool {
	return p.Tags.HasAnyOverride()
}

// Clone returns a deep copy safe to mutate without touching the snapshot.
func (p *Product) Clone() *Product {
	cloned := *p
	cloned.Tags = p.Tags.Clone()
	cloned.SupplierID = cloneStringPtr(p.SupplierID)
	cloned.SKU = cloneStringPtr(p.SKU)
	cloned.ASIN = cloneStringPtr(p.ASIN)
	if p.Metadata != nil {
		cloned.Metadata = make(map[string]string, len(p.Metadata))
		for k, v := range p.Metadata {
			cloned.Metadata[k] = v
		}
	}

	return &cloned
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	copied := *s

	return &copied
}
