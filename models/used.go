package models

// InspectionReport 官方质检报告
type InspectionReport struct {
	InspectedAt   string `json:"inspectedAt"`
	Grade         string `json:"grade"` // A/B/C/D
	Score         int    `json:"score"` // 0-100
	Temperature   string `json:"temperature,omitempty"`
	StressTest    bool   `json:"stressTest"`
	FunctionTest  bool   `json:"functionTest"`
	Appearance    string `json:"appearance"`
	Notes         string `json:"notes"`
	Summary       string `json:"summary,omitempty"`
	InspectorName string `json:"inspectorName,omitempty"`
	ReportID      string `json:"reportId,omitempty"`
}

// UsedItem 二手硬件
type UsedItem struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"` // official 官方自营, personal 个人闲置
	Category      string   `json:"category"` // host, gpu, accessory
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Condition     string   `json:"condition"` // 成色，如 "99新"
	Status        string   `json:"status"`    // pending, published, rejected, sold
	SellerID      string   `json:"sellerId"`
	SellerName    string   `json:"sellerName"`
	SellerAvatar  string   `json:"sellerAvatar,omitempty"`
	XianyuLink    string   `json:"xianyuLink,omitempty"`
	CreatedAt     int64    `json:"createdAt"`
	// 标记已售时间戳，前台用于 3 天后隐藏
	SoldAt           int64             `json:"soldAt,omitempty"`
	InspectionReport *InspectionReport `json:"inspectionReport,omitempty"`
	AdminNotes       string            `json:"adminNotes,omitempty"`
	Contact          string            `json:"contact,omitempty"`
}

// RecycleRequest 硬件回收请求
type RecycleRequest struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	Description string `json:"description"`
	Wechat      string `json:"wechat"`
	Image       string `json:"image,omitempty"`
	Status      string `json:"status"` // pending, completed
	IsRead      bool   `json:"isRead"`
	CreatedAt   string `json:"createdAt"`
}
