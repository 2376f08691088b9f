package models

// Category 硬件分类（与前台分类表一致）
type Category string

const (
	CategoryCPU       Category = "cpu"
	CategoryMainboard Category = "mainboard"
	CategoryGPU       Category = "gpu"
	CategoryRAM       Category = "ram"
	CategoryDisk      Category = "disk"
	CategoryPower     Category = "power"
	CategoryCooling   Category = "cooling"
	CategoryFan       Category = "fan"
	CategoryCase      Category = "case"
	CategoryMonitor   Category = "monitor"
	CategoryMouse     Category = "mouse"
	CategoryKeyboard  Category = "keyboard"
	CategoryAccessory Category = "accessory"
)

// HardwareItem 硬件条目
// Specs 是开放的 键→值 字典：每个分类的期望字段由后台分类表配置，
// 这里不做校验
type HardwareItem struct {
	ID        string                 `json:"id"`
	Category  Category               `json:"category"`
	Brand     string                 `json:"brand"`
	Model     string                 `json:"model"`
	Price     float64                `json:"price"`
	SortOrder int                    `json:"sortOrder"`
	Status    string                 `json:"status"` // active, draft, archived
	Specs     map[string]interface{} `json:"specs"`
	Image     string                 `json:"image,omitempty"`
	CreatedAt string                 `json:"createdAt,omitempty"`
	UpdatedAt string                 `json:"updatedAt,omitempty"`

	IsDiscount    bool `json:"isDiscount,omitempty"`
	IsRecommended bool `json:"isRecommended,omitempty"`
	IsNew         bool `json:"isNew,omitempty"`
}
