package validation

const (
	// Price limits, in ringgit
	MinBasePrice = 0.0
	MaxBasePrice = 10_000_000.00

	MaxFeePercentage = 100.0

	// String lengths
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxNameLength        = 150
	MaxCompanyLength     = 200
	MaxCategoryLength    = 100
	MaxTierNameLength    = 50
	MaxTags              = 20
	MaxImages            = 10
)
