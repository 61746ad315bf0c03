// internal/types/types.go
package types

// EntityID identifies a tower, enemy or projectile. Zero means "none".
type EntityID uint64
