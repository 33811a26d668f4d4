package cache

import "fmt"

type EntityType string

const (
	EntityFeeTier EntityType = "fee_tier"
)

type KeyType string

const (
	KeyTable KeyType = "table"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entity, keyType, value)
}

// FeeTierTableKey holds the full tier table snapshot used for pricing.
var FeeTierTableKey = GenerateKey(EntityFeeTier, KeyTable, "all")
