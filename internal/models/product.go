package models

// Category is an open set; apparel and music are the ones the catalog
// currently stocks.
type Category string

const (
	CategoryApparel Category = "apparel"
	CategoryMusic   Category = "music"

	// CategoryAll is the sentinel accepted by the list endpoint for an
	// unfiltered catalog.
	CategoryAll = "all"
)

// ApparelDetails and MusicDetails are the per-category attribute sets. A
// product carries exactly one of them, matching its Category.
type ApparelDetails struct {
	Fabric string `json:"fabric" bson:"fabric"`
	Fit    string `json:"fit" bson:"fit"`
	Care   string `json:"care" bson:"care"`
}

type MusicDetails struct {
	Format      string `json:"format" bson:"format"`
	ReleaseYear int    `json:"release_year" bson:"release_year"`
	Tracks      int    `json:"tracks" bson:"tracks"`
}

type Product struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name" validate:"required"`
	Description string   `json:"description" bson:"description" validate:"required"`
	Price       float64  `json:"price" bson:"price" validate:"gte=0"`
	ImageURL    string   `json:"image_url" bson:"image_url" validate:"required"`
	Category    Category `json:"category" bson:"category" validate:"required,oneof=apparel music"`
	Album       string   `json:"album,omitempty" bson:"album,omitempty"`

	Apparel *ApparelDetails `json:"apparel,omitempty" bson:"apparel,omitempty"`
	Music   *MusicDetails   `json:"music,omitempty" bson:"music,omitempty"`
}

// Details returns the variant matching the product category, or nil when the
// catalog entry carries no attributes.
func (p *Product) Details() any {
	switch p.Category {
	case CategoryApparel:
		if p.Apparel != nil {
			return p.Apparel
		}
	case CategoryMusic:
		if p.Music != nil {
			return p.Music
		}
	}

	return nil
}
