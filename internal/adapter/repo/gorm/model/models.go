package model

import "time"

type Clock struct {
	OwnerID   string `gorm:"column:owner_id;primaryKey"`
	Day       int32  `gorm:"column:day"`
	Year      int32  `gorm:"column:year"`
	Treasury  int64  `gorm:"column:treasury"`
	Settings  []byte `gorm:"column:settings;type:jsonb"`
	Version   int64  `gorm:"column:version"`
	UpdatedAt time.Time
}

func (Clock) TableName() string { return "clocks" }

type Citizen struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerID        string `gorm:"column:owner_id;index"`
	Name           string `gorm:"column:name"`
	Age            int32  `gorm:"column:age"`
	Gender         string `gorm:"column:gender"`
	Health         int32  `gorm:"column:health"`
	Happiness      int32  `gorm:"column:happiness"`
	Wealth         int64  `gorm:"column:wealth"`
	Alive          bool   `gorm:"column:alive"`
	Role           string `gorm:"column:role"`
	Skills         []byte `gorm:"column:skills;type:jsonb"`
	HomeBuildingID *int64 `gorm:"column:home_building_id"`
	WorkBusinessID *int64 `gorm:"column:work_business_id"`
	SpouseID       *int64 `gorm:"column:spouse_id"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Citizen) TableName() string { return "citizens" }

type Business struct {
	ID               int64  `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerID          string `gorm:"column:owner_id;index"`
	Name             string `gorm:"column:name"`
	BuildingID       int64  `gorm:"column:building_id"`
	OwnerCitizenID   *int64 `gorm:"column:owner_citizen_id"`
	Type             string `gorm:"column:type"`
	Products         []byte `gorm:"column:products;type:jsonb"`
	EmployeeCapacity int32  `gorm:"column:employee_capacity"`
	CurrentEmployees int32  `gorm:"column:current_employees"`
	Treasury         int64  `gorm:"column:treasury"`
	Reputation       int32  `gorm:"column:reputation"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Business) TableName() string { return "businesses" }

type Building struct {
	ID               int64  `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerID          string `gorm:"column:owner_id;index"`
	Name             string `gorm:"column:name"`
	Type             string `gorm:"column:type"`
	TemplateID       string `gorm:"column:template_id"`
	AreaID           int64  `gorm:"column:area_id"`
	OwnerCitizenID   *int64 `gorm:"column:owner_citizen_id"`
	Capacity         int32  `gorm:"column:capacity"`
	Condition        int32  `gorm:"column:condition"`
	ConstructionCost int64  `gorm:"column:construction_cost"`
	UpkeepCost       int64  `gorm:"column:upkeep_cost"`
	X                int32  `gorm:"column:x"`
	Y                int32  `gorm:"column:y"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Building) TableName() string { return "buildings" }

type Area struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerID     string  `gorm:"column:owner_id;index"`
	Name        string  `gorm:"column:name"`
	Description string  `gorm:"column:description"`
	TaxRate     float64 `gorm:"column:tax_rate"`
	MaxCapacity int32   `gorm:"column:max_capacity"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Area) TableName() string { return "areas" }

type InventoryItem struct {
	OwnerID   string `gorm:"column:owner_id;primaryKey"`
	GoodID    string `gorm:"column:good_id;primaryKey"`
	Quantity  int32  `gorm:"column:quantity"`
	UpdatedAt time.Time
}

func (InventoryItem) TableName() string { return "inventory_items" }

type Event struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	OwnerID   string `gorm:"column:owner_id;index"`
	Type      string `gorm:"column:type"`
	Message   string `gorm:"column:message"`
	Category  string `gorm:"column:category"`
	Day       int32  `gorm:"column:day"`
	Year      int32  `gorm:"column:year"`
	CitizenID *int64 `gorm:"column:citizen_id"`
	CreatedAt time.Time
}

func (Event) TableName() string { return "events" }

type AchievementUnlock struct {
	OwnerID       string    `gorm:"column:owner_id;primaryKey"`
	AchievementID string    `gorm:"column:achievement_id;primaryKey"`
	UnlockedAt    time.Time `gorm:"column:unlocked_at"`
}

func (AchievementUnlock) TableName() string { return "achievement_unlocks" }

type DailySnapshot struct {
	OwnerID      string    `gorm:"column:owner_id;primaryKey"`
	Year         int32     `gorm:"column:year;primaryKey"`
	Day          int32     `gorm:"column:day;primaryKey"`
	Population   int64     `gorm:"column:population"`
	Treasury     int64     `gorm:"column:treasury"`
	Buildings    int64     `gorm:"column:buildings"`
	AvgHappiness int64     `gorm:"column:avg_happiness"`
	AvgHealth    int64     `gorm:"column:avg_health"`
	RecordedAt   time.Time `gorm:"column:recorded_at"`
}

func (DailySnapshot) TableName() string { return "daily_snapshots" }
