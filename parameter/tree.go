package parameter

// Tree shape, bands in index order: star topper, garland, body
const (
	// TreeStarCount is the size of the star-topper band (hero included)
	TreeStarCount = 800

	// TreeGarlandCount is the size of the garland band
	TreeGarlandCount = 2500

	// TreeHeight is the apex height above the base plane
	TreeHeight = 12.0

	// TreeRadius is the cone radius at the base
	TreeRadius = 4.5

	// TreeBaseY shifts the whole cone so the scene centers vertically
	TreeBaseY = -6.0
)

// Star topper
const (
	// StarSpikes is the point count of the star-polygon outline
	StarSpikes = 5

	// StarOuterRadius/InnerRadius parameterize the polar boundary
	StarOuterRadius = 1.3
	StarInnerRadius = 0.55

	// StarThickness is the flat depth of the star slab
	StarThickness = 0.25
)

// Garland
const (
	// GarlandTurns is the fixed number of spiral windings down the cone
	GarlandTurns = 6.0

	// GarlandScatterRadius/Height/Angle are the independent random
	// scatter magnitudes around the ideal spiral
	GarlandScatterRadius = 0.25
	GarlandScatterHeight = 0.2
	GarlandScatterAngle  = 0.15

	// GarlandHighlightGap is the hard minimum index distance between
	// highlight ornaments; spacing, not probability
	GarlandHighlightGap = 40

	// GarlandHighlightChance is the draw probability for an eligible index
	GarlandHighlightChance = 0.04

	// GarlandDimScale renders non-highlight garland beads at half size
	GarlandDimScale = 0.5
)

// Tree body
const (
	// BodyOrnamentChance recolors a small fraction as ornaments
	BodyOrnamentChance = 0.06

	// BodyEdgeShrink scales particles down with distance from the
	// trunk axis (silhouette edge looks finer than the interior)
	BodyEdgeShrink = 0.35
)
