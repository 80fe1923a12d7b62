package models

// ProductType is one sellable variant of a product (size/grade) with its own
// price and optional promotional tag.
type ProductType struct {
	Name  string `bson:"name" json:"name"`
	Price string `bson:"price" json:"price"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Offer string `bson:"offer,omitempty" json:"offer,omitempty"`
}

// Product is a catalog entry. Documents are keyed by product name, so an
// upsert with an existing name replaces the whole document.
type Product struct {
	Name      string        `bson:"_id" json:"name"`
	Brand     string        `bson:"brand" json:"brand"`
	Category  string        `bson:"category" json:"category"`
	Types     []ProductType `bson:"types" json:"types"`
	MainImage string        `bson:"mainImage,omitempty" json:"mainImage,omitempty"`
}

// PruneTypes drops variants missing a name or price, mirroring what the
// admin form filters out before saving.
func (p *Product) PruneTypes() {
	kept := p.Types[:0]
	for _, t := range p.Types {
		if t.Name != "" && t.Price != "" {
			kept = append(kept, t)
		}
	}
	p.Types = kept
}
