package fief

import "time"

const (
	CategoryPositive = "positive"
	CategoryNegative = "negative"
	CategoryNeutral  = "neutral"
	CategorySpecial  = "special"
)

// Event is one narrative entry in the fiefdom's append-only log.
type Event struct {
	ID        int64     `json:"id,omitempty"`
	OwnerID   string    `json:"owner_id,omitempty"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	Day       int       `json:"day"`
	Year      int       `json:"year"`
	CitizenID *int64    `json:"citizen_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

var eventCategories = map[string]string{
	"traveling_merchant":  CategoryPositive,
	"bountiful_harvest":   CategoryPositive,
	"skilled_immigrant":   CategoryPositive,
	"festival":            CategoryPositive,
	"good_weather":        CategoryPositive,
	"treasure_found":      CategoryPositive,
	"royal_favor":         CategoryPositive,
	"miraculous_recovery": CategoryPositive,
	"birth":               CategoryPositive,
	"marriage":            CategoryPositive,
	"immigration":         CategoryPositive,
	"area_created":        CategoryPositive,
	"buildings_created":   CategoryPositive,
	"population_created":  CategoryPositive,
	"citizen_recruited":   CategoryPositive,
	"bulk_recruitment":    CategoryPositive,
	"hired":               CategoryPositive,
	"coming_of_age":       CategoryNeutral,
	"elder":               CategoryNeutral,

	"illness_outbreak":  CategoryNegative,
	"illness":           CategoryNegative,
	"harsh_weather":     CategoryNegative,
	"fire":              CategoryNegative,
	"theft":             CategoryNegative,
	"crop_blight":       CategoryNegative,
	"building_collapse": CategoryNegative,
	"worker_accident":   CategoryNegative,
	"tax_collector":     CategoryNegative,
	"death_old_age":     CategoryNegative,
	"death_illness":     CategoryNegative,
	"death_natural":     CategoryNegative,
	"hunger":            CategoryNegative,

	"wandering_minstrel": CategoryNeutral,
	"mysterious_stranger": CategoryNeutral,
	"wildlife_sighting":  CategoryNeutral,
	"market_day":         CategoryNeutral,
	"pilgrim_passage":    CategoryNeutral,
	"season_change":      CategoryNeutral,
	"year_change":        CategoryNeutral,
	"production":         CategoryNeutral,
	"upkeep":             CategoryNeutral,
	"tax_collection":     CategoryNeutral,

	"comet_sighting":    CategorySpecial,
	"wandering_knight":  CategorySpecial,
	"ancient_discovery": CategorySpecial,
	"achievement":       CategorySpecial,
}

// EventCategory maps an event type to its display category.
// Unknown types are neutral.
func EventCategory(eventType string) string {
	if c, ok := eventCategories[eventType]; ok {
		return c
	}
	return CategoryNeutral
}

// NewEvent stamps an event with the clock's calendar position and the
// category derived from its type.
func NewEvent(clk Clock, eventType, message string) Event {
	return Event{
		OwnerID:  clk.OwnerID,
		Type:     eventType,
		Message:  message,
		Category: EventCategory(eventType),
		Day:      clk.Day,
		Year:     clk.Year,
	}
}
