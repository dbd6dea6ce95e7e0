package wfc

// Category is the land-use class a tile belongs to. The set is closed; the
// emitter maps each category to an output primitive.
type Category string

const (
	CategoryResidential Category = "residential"
	CategoryCommercial  Category = "commercial"
	CategoryIndustrial  Category = "industrial"
	CategoryPark        Category = "park"
	CategoryRoadH       Category = "road-horizontal"
	CategoryRoadV       Category = "road-vertical"
	CategoryEmpty       Category = "empty"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryResidential,
	CategoryCommercial,
	CategoryIndustrial,
	CategoryPark,
	CategoryRoadH,
	CategoryRoadV,
	CategoryEmpty,
}

func validCategory(c Category) bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Tile is one entry of the catalog. Weight biases the collapse choice; it
// does not have to be normalized.
type Tile struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Weight   float64  `json:"weight"`
}

// Compatibility scores category pairs. Pairs never set score 0 and are
// therefore incompatible; a pair is compatible when its score exceeds the
// threshold. Lookups are ordered (from, to) so asymmetric rules are
// expressible, though the default catalog is symmetric.
type Compatibility struct {
	Threshold float64
	scores    map[[2]Category]float64
}

// NewCompatibility creates an empty matrix with the given threshold.
func NewCompatibility(threshold float64) *Compatibility {
	return &Compatibility{
		Threshold: threshold,
		scores:    make(map[[2]Category]float64),
	}
}

// Set assigns the score for (from, to).
func (c *Compatibility) Set(from, to Category, score float64) {
	c.scores[[2]Category{from, to}] = score
}

// SetBoth assigns the score in both directions.
func (c *Compatibility) SetBoth(a, b Category, score float64) {
	c.Set(a, b, score)
	c.Set(b, a, score)
}

// Score returns the score for (from, to), 0 for unlisted pairs.
func (c *Compatibility) Score(from, to Category) float64 {
	return c.scores[[2]Category{from, to}]
}

// Compatible reports whether from may sit next to to.
func (c *Compatibility) Compatible(from, to Category) bool {
	return c.Score(from, to) > c.Threshold
}

// Catalog is the tile set plus its adjacency rules, immutable during a run.
type Catalog struct {
	Tiles  []Tile
	Compat *Compatibility
}

// DefaultCompatThreshold is the score above which two categories may touch.
const DefaultCompatThreshold = 0.3

// DefaultCatalog is the built-in fallback used whenever an external catalog
// cannot be loaded. It covers every category with mild zoning preferences:
// like attracts like, industry avoids homes and parks, roads go with
// everything.
func DefaultCatalog() *Catalog {
	compat := NewCompatibility(DefaultCompatThreshold)
	pairs := []struct {
		a, b  Category
		score float64
	}{
		{CategoryResidential, CategoryResidential, 0.9},
		{CategoryResidential, CategoryCommercial, 0.6},
		{CategoryResidential, CategoryIndustrial, 0.1},
		{CategoryResidential, CategoryPark, 0.8},
		{CategoryResidential, CategoryRoadH, 0.7},
		{CategoryResidential, CategoryRoadV, 0.7},
		{CategoryResidential, CategoryEmpty, 0.5},
		{CategoryCommercial, CategoryCommercial, 0.8},
		{CategoryCommercial, CategoryIndustrial, 0.5},
		{CategoryCommercial, CategoryPark, 0.5},
		{CategoryCommercial, CategoryRoadH, 0.8},
		{CategoryCommercial, CategoryRoadV, 0.8},
		{CategoryCommercial, CategoryEmpty, 0.4},
		{CategoryIndustrial, CategoryIndustrial, 0.9},
		{CategoryIndustrial, CategoryPark, 0.2},
		{CategoryIndustrial, CategoryRoadH, 0.7},
		{CategoryIndustrial, CategoryRoadV, 0.7},
		{CategoryIndustrial, CategoryEmpty, 0.5},
		{CategoryPark, CategoryPark, 0.9},
		{CategoryPark, CategoryRoadH, 0.6},
		{CategoryPark, CategoryRoadV, 0.6},
		{CategoryPark, CategoryEmpty, 0.7},
		{CategoryRoadH, CategoryRoadH, 0.9},
		{CategoryRoadH, CategoryRoadV, 0.5},
		{CategoryRoadV, CategoryRoadV, 0.9},
		{CategoryRoadH, CategoryEmpty, 0.5},
		{CategoryRoadV, CategoryEmpty, 0.5},
		{CategoryEmpty, CategoryEmpty, 0.9},
	}
	for _, p := range pairs {
		compat.SetBoth(p.a, p.b, p.score)
	}

	return &Catalog{
		Tiles: []Tile{
			{ID: 0, Name: "house", Category: CategoryResidential, Weight: 5},
			{ID: 1, Name: "apartments", Category: CategoryResidential, Weight: 3},
			{ID: 2, Name: "shop", Category: CategoryCommercial, Weight: 3},
			{ID: 3, Name: "office", Category: CategoryCommercial, Weight: 2},
			{ID: 4, Name: "factory", Category: CategoryIndustrial, Weight: 2},
			{ID: 5, Name: "park", Category: CategoryPark, Weight: 2},
			{ID: 6, Name: "street-ew", Category: CategoryRoadH, Weight: 2},
			{ID: 7, Name: "street-ns", Category: CategoryRoadV, Weight: 2},
			{ID: 8, Name: "vacant", Category: CategoryEmpty, Weight: 1},
		},
		Compat: compat,
	}
}

// TileByID returns the tile with the given id, or ok=false.
func (c *Catalog) TileByID(id int) (Tile, bool) {
	for _, t := range c.Tiles {
		if t.ID == id {
			return t, true
		}
	}
	return Tile{}, false
}
