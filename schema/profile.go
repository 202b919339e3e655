package schema

import (
	"time"
)

const (
	ProfileCollection = "profiles"
)

// Skill levels accepted for a profile skill entry
const (
	SkillLevelBeginner     = "Beginner"
	SkillLevelIntermediate = "Intermediate"
	SkillLevelAdvanced     = "Advanced"
	SkillLevelExpert       = "Expert"
)

// Skill - a skill a user offers or wants to learn
type Skill struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Level       string `bson:"level" json:"level"`
}

// Profile - user profile data, including the reputation aggregate that
// is recomputed from the ratings collection on every rating write
type Profile struct {
	ID            string    `bson:"id" json:"id"`
	AccountNumber string    `bson:"account_number" json:"account_number"`
	Name          string    `bson:"name" json:"name"`
	AverageRating float64   `bson:"average_rating" json:"average_rating"`
	TotalRatings  int       `bson:"total_ratings" json:"total_ratings"`
	SkillsOffered []Skill   `bson:"skills_offered" json:"skills_offered"`
	SkillsWanted  []Skill   `bson:"skills_wanted" json:"skills_wanted"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidSkillLevel reports whether the given level is a known skill level.
func ValidSkillLevel(level string) bool {
	switch level {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}
