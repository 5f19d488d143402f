package model

// ServiceCategory classifies a photography service offering.
type ServiceCategory string

const (
	CategoryPreWedding ServiceCategory = "Pre-Wedding"
	CategoryWedding    ServiceCategory = "Wedding"
	CategoryPreBaby    ServiceCategory = "Pre-Baby"
	CategoryPhotoshoot ServiceCategory = "Photoshoot"
	CategoryJewelry    ServiceCategory = "Jewelry"
	CategoryCloths     ServiceCategory = "Cloths"
	CategoryBirthday   ServiceCategory = "Birthday"
)

// ServiceCategories lists all valid categories in display order.
func ServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryPreWedding,
		CategoryWedding,
		CategoryPreBaby,
		CategoryPhotoshoot,
		CategoryJewelry,
		CategoryCloths,
		CategoryBirthday,
	}
}

// Valid reports whether c is one of the seven known categories.
func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryPreWedding, CategoryWedding, CategoryPreBaby,
		CategoryPhotoshoot, CategoryJewelry, CategoryCloths, CategoryBirthday:
		return true
	}
	return false
}

// Service is a photography service offering. ImageURL is the primary
// thumbnail; Gallery holds the ordered carousel images. The content store
// keeps ImageURL synchronized with Gallery[0] whenever the gallery is
// non-empty and caps the gallery at ten images.
type Service struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Category    ServiceCategory `json:"category"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Gallery     []string        `json:"gallery"`
	Price       string          `json:"price,omitempty"`
	Features    []string        `json:"features"`
}
