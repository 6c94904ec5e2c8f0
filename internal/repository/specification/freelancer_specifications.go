package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NameOrEmailLike matches a substring of the full name or email,
// case-insensitively. Deeper matching (skills, language pairs) happens
// in-process after load.
type NameOrEmailLike struct {
	Query string
}

func (s NameOrEmailLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("full_name ILIKE ? OR email ILIKE ?", pattern, pattern)
}

type ByFreelancerID struct {
	FreelancerID uuid.UUID
}

func (s ByFreelancerID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("freelancer_id = ?", s.FreelancerID)
}
