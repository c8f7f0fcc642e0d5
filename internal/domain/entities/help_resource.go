package entities

import (
	"time"

	"github.com/google/uuid"
)

// CoverageLevel is the geographic granularity at which a resource is visible.
// Each level is contained in the one above it: landelijk ⊃ provincie ⊃
// gemeente ⊃ stad ⊃ wijk.
type CoverageLevel string

const (
	CoverageLandelijk CoverageLevel = "landelijk"
	CoverageProvincie CoverageLevel = "provincie"
	CoverageGemeente  CoverageLevel = "gemeente"
	CoverageStad      CoverageLevel = "stad"
	CoverageWijk      CoverageLevel = "wijk"
)

// ResourceType categorizes a help organization.
type ResourceType string

const (
	ResourceZorgorganisatie  ResourceType = "zorgorganisatie"
	ResourceVrijwilligers    ResourceType = "vrijwilligersorganisatie"
	ResourceGemeenteLoket    ResourceType = "gemeente_loket"
	ResourceRespijtzorg      ResourceType = "respijtzorg"
	ResourceMantelzorgsteun  ResourceType = "mantelzorgondersteuning"
	ResourceThuiszorg        ResourceType = "thuiszorg"
	ResourceWelzijn          ResourceType = "welzijnsorganisatie"
	ResourceInformatiepunt   ResourceType = "informatiepunt"
)

// HelpResource is a help organization (hulpbron) editable via the admin and
// gemeente CRUD screens and queried read-only by the resolver.
type HelpResource struct {
	ID          uuid.UUID    `json:"id" gorm:"primaryKey;column:id;type:uuid"`
	Name        string       `json:"name" gorm:"column:name;index"`
	Description string       `json:"description" gorm:"column:description;type:text"`
	Type        ResourceType `json:"type" gorm:"column:type"`
	Phone       string       `json:"phone" gorm:"column:phone"`
	Email       string       `json:"email" gorm:"column:email"`
	Website     string       `json:"website" gorm:"column:website"`
	Street      string       `json:"street" gorm:"column:street"`
	HouseNumber string       `json:"house_number" gorm:"column:house_number"`
	Postcode    string       `json:"postcode" gorm:"column:postcode"`
	City        string       `json:"city" gorm:"column:city"`

	CoverageLevel     CoverageLevel `json:"coverage_level" gorm:"column:coverage_level"`
	Province          string        `json:"province" gorm:"column:province"`
	Municipality      string        `json:"municipality" gorm:"column:municipality;index"`
	CoverageCities    []string      `json:"coverage_cities" gorm:"column:coverage_cities;serializer:json"`
	CoverageDistricts []string      `json:"coverage_districts" gorm:"column:coverage_districts;serializer:json"`

	// Category matches a CareTask id or a deelgebied name and drives the
	// personalized recommendations.
	Category string `json:"category" gorm:"column:category;index"`

	VisibleAtTierLow    bool `json:"visible_at_tier_low" gorm:"column:visible_at_tier_low;default:true"`
	VisibleAtTierMedium bool `json:"visible_at_tier_medium" gorm:"column:visible_at_tier_medium;default:true"`
	VisibleAtTierHigh   bool `json:"visible_at_tier_high" gorm:"column:visible_at_tier_high;default:true"`

	IsActive  bool      `json:"is_active" gorm:"column:is_active;default:true;index"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}
