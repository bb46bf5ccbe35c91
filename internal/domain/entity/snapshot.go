package entity

// Snapshot is one wholesale read-model of the catalog: the four flat arrays
// supplied by the external data layer. Snapshots are immutable by convention;
// refreshes replace the whole value (last write wins).
type Snapshot struct {
	Categories  []*Category   `json:"categories"`
	MasterItems []*MasterItem `json:"master_items"`
	Products    []*Product    `json:"products"`
	Suppliers   []*Supplier   `json:"suppliers"`
}

// Clone returns a copy whose slices can be re-pointed without touching the
// original. Elements are shared; mutating code must clone the entity it
// replaces.
func (s *Snapshot) Clone() *Snapshot {
	cloned := &Snapshot{
		Categories:  make([]*Category, len(s.Categories)),
		MasterItems: make([]*MasterItem, len(s.MasterItems)),
		Products:    make([]*Product, len(s.Products)),
		Suppliers:   make([]*Supplier, len(s.Suppliers)),
	}
	copy(cloned.Categories, s.Categories)
	copy(cloned.MasterItems, s.MasterItems)
	copy(cloned.Products, s.Products)
	copy(cloned.Suppliers, s.Suppliers)

	return cloned
}
