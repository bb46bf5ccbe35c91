package catalog

import (
	"sort"
	"strings"

	"prepcat/internal/domain/entity"
)

// UncategorizedID is the synthetic root group that collects products and
// master items whose category references cannot be resolved. Bad references
// degrade into this bucket instead of failing the grouping pass.
const UncategorizedID = "uncategorized"

// uncategorizedName is also the sort key substituted for missing names.
const uncategorizedName = "Uncategorized"

// MasterItemGroup is one master item bucket with its filtered products.
// MasterItem is nil only for the degraded bucket holding products whose
// master item id resolves to nothing.
type MasterItemGroup struct {
	MasterItem *entity.MasterItem `json:"master_item"`
	Products   []*entity.Product  `json:"products"`
}

// SubcategoryGroup is a second-level category with its master item buckets.
type SubcategoryGroup struct {
	Category    *entity.Category   `json:"category"`
	MasterItems []*MasterItemGroup `json:"master_items"`
}

// CategoryGroup is a root category: its directly-owned master items plus its
// subcategories.
type CategoryGroup struct {
	Category      *entity.Category    `json:"category"`
	MasterItems   []*MasterItemGroup  `json:"master_items"`
	Subcategories []*SubcategoryGroup `json:"subcategories"`
}

// Group builds the three-level navigable tree from the already-filtered
// product list. Every root category, subcategory and master item appears in
// the output even with zero matching products, so empty branches stay
// visible and actionable.
//
// Construction order matters: roots are seeded first, subcategories attached
// second, master items filed third with empty buckets, and only then are
// products appended. Products or master items with broken references fall
// into the synthetic "uncategorized" root.
func Group(filtered []*entity.Product, ix *Index) []*CategoryGroup {
	b := newGroupBuilder(ix)

	for _, category := range ix.Snapshot().Categories {
		if category.IsRoot() {
			b.ensureRoot(category.ID)
		}
	}
	for _, category := range ix.Snapshot().Categories {
		if !category.IsRoot() {
			b.attachSubcategory(category)
		}
	}
	for _, masterItem := range ix.Snapshot().MasterItems {
		b.fileMasterItem(masterItem)
	}
	for _, product := range filtered {
		b.appendProduct(product)
	}

	return b.finish()
}

type groupBuilder struct {
	ix        *Index
	roots     map[string]*CategoryGroup
	rootOrder []string
	subGroups map[string]*SubcategoryGroup
	// buckets is keyed by master item id; the degraded bucket for unresolvable
	// master references uses the empty key.
	buckets map[string]*MasterItemGroup
}

func newGroupBuilder(ix *Index) *groupBuilder {
	return &groupBuilder{
		ix:        ix,
		roots:     make(map[string]*CategoryGroup),
		subGroups: make(map[string]*SubcategoryGroup),
		buckets:   make(map[string]*MasterItemGroup),
	}
}

// ensureRoot returns the root group for a category id, creating it on first
// use. Unknown ids get a synthetic category so a dangling parent reference
// still produces a visible group.
func (b *groupBuilder) ensureRoot(id string) *CategoryGroup {
	if group, ok := b.roots[id]; ok {
		return group
	}

	category := b.ix.Category(id)
	if category == nil {
		name := uncategorizedName
		if id != UncategorizedID {
			name = id
		}
		category = &entity.Category{ID: id, Name: name}
	}

	group := &CategoryGroup{Category: category}
	b.roots[id] = group
	b.rootOrder = append(b.rootOrder, id)

	return group
}

func (b *groupBuilder) attachSubcategory(category *entity.Category) {
	parent := b.ensureRoot(*category.ParentID)
	sub := &SubcategoryGroup{Category: category}
	parent.Subcategories = append(parent.Subcategories, sub)
	b.subGroups[category.ID] = sub
}

// fileMasterItem places an empty bucket for the master item under
// (root, subcategory) or (root, direct) depending on its owning category.
func (b *groupBuilder) fileMasterItem(masterItem *entity.MasterItem) {
	bucket := &MasterItemGroup{MasterItem: masterItem, Products: []*entity.Product{}}
	b.buckets[masterItem.ID] = bucket

	category := b.ix.Category(masterItem.CategoryID)
	switch {
	case category == nil:
		root := b.ensureRoot(UncategorizedID)
		root.MasterItems = append(root.MasterItems, bucket)
	case category.IsRoot():
		root := b.ensureRoot(category.ID)
		root.MasterItems = append(root.MasterItems, bucket)
	default:
		sub, ok := b.subGroups[category.ID]
		if !ok {
			// Subcategory missed the attach pass (inconsistent input); attach now.
			b.attachSubcategory(category)
			sub = b.subGroups[category.ID]
		}
		sub.MasterItems = append(sub.MasterItems, bucket)
	}
}

// appendProduct drops the product into its master item's bucket, lazily
// creating one for master items absent from the snapshot arrays.
func (b *groupBuilder) appendProduct(product *entity.Product) {
	if bucket, ok := b.buckets[product.MasterItemID]; ok {
		bucket.Products = append(bucket.Products, product)

		return
	}

	if masterItem := b.ix.MasterItem(product.MasterItemID); masterItem != nil {
		b.fileMasterItem(masterItem)
		b.buckets[masterItem.ID].Products = append(b.buckets[masterItem.ID].Products, product)

		return
	}

	// Master item unresolvable: degraded bucket under the uncategorized root.
	bucket, ok := b.buckets[""]
	if !ok {
		bucket = &MasterItemGroup{Products: []*entity.Product{}}
		b.buckets[""] = bucket
		root := b.ensureRoot(UncategorizedID)
		root.MasterItems = append(root.MasterItems, bucket)
	}
	bucket.Products = append(bucket.Products, product)
}

// finish applies display ordering: roots alphabetical with "uncategorized"
// forced last, subcategories and master items alphabetical within their
// parents.
func (b *groupBuilder) finish() []*CategoryGroup {
	groups := make([]*CategoryGroup, 0, len(b.roots))
	for _, id := range b.rootOrder {
		groups = append(groups, b.roots[id])
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Category.ID == UncategorizedID {
			return false
		}
		if b.Category.ID == UncategorizedID {
			return true
		}

		return strings.ToLower(a.Category.Name) < strings.ToLower(b.Category.Name)
	})

	for _, group := range groups {
		sortMasterItems(group.MasterItems)
		sort.SliceStable(group.Subcategories, func(i, j int) bool {
			return strings.ToLower(subName(group.Subcategories[i])) < strings.ToLower(subName(group.Subcategories[j]))
		})
		for _, sub := range group.Subcategories {
			sortMasterItems(sub.MasterItems)
		}
	}

	return groups
}

func sortMasterItems(buckets []*MasterItemGroup) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return strings.ToLower(bucketName(buckets[i])) < strings.ToLower(bucketName(buckets[j]))
	})
}

// bucketName substitutes "Uncategorized" for missing names, for sort
// purposes only.
func bucketName(bucket *MasterItemGroup) string {
	if bucket.MasterItem == nil || bucket.MasterItem.Name == "" {
		return uncategorizedName
	}

	return bucket.MasterItem.Name
}

func subName(sub *SubcategoryGroup) string {
	if sub.Category == nil || sub.Category.Name == "" {
		return uncategorizedName
	}

	return sub.Category.Name
}
