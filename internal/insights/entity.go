package insights

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IndustryInsight struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Industry          string         `gorm:"uniqueIndex;not null" json:"industry"`
	SalaryRanges      datatypes.JSON `gorm:"type:jsonb" json:"salary_ranges"`
	GrowthRate        float64        `json:"growth_rate"`
	DemandLevel       string         `json:"demand_level"`
	TopSkills         datatypes.JSON `gorm:"type:jsonb" json:"top_skills"`
	MarketOutlook     string         `json:"market_outlook"`
	KeyTrends         datatypes.JSON `gorm:"type:jsonb" json:"key_trends"`
	RecommendedSkills datatypes.JSON `gorm:"type:jsonb" json:"recommended_skills"`
	LastUpdated       time.Time      `json:"last_updated"`
	NextUpdate        time.Time      `json:"next_update"`
}

type SalaryRange struct {
	Role     string  `json:"role"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Location string  `json:"location"`
}

type insightsPayload struct {
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        float64       `json:"growthRate"`
	DemandLevel       string        `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     string        `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
}
