package entity

// Supplier identifies the vendor of a product. The affiliate fields are
// configuration for the affiliate-link surface, which lives outside this
// service; they are carried through untouched.
type Supplier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AffiliateID *string `json:"affiliate_id"`
	URLTemplate *string `json:"url_template"`
}
