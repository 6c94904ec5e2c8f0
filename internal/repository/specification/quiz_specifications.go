package specification

import "gorm.io/gorm"

// Ungraded selects attempts that have been submitted but not scored.
type Ungraded struct{}

func (s Ungraded) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("passed IS NULL")
}
