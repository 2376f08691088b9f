package models

// ConfigItem 保存的装机配置单
type ConfigItem struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	AuthorName    string              `json:"authorName"`
	Title         string              `json:"title"`
	TotalPrice    float64             `json:"totalPrice"`
	Items         map[Category]string `json:"items"` // 分类 → 硬件 ID，允许不完整
	Tags          []string            `json:"tags"`
	Status        string              `json:"status"` // published, hidden
	IsRecommended bool                `json:"isRecommended"`
	Views         int                 `json:"views"`
	Likes         int                 `json:"likes"`
	CreatedAt     string              `json:"createdAt"`
	// 年度流水号，如 2026-000001。首次保存时生成，之后不再变更
	SerialNumber string `json:"serialNumber,omitempty"`
	Description  string `json:"description,omitempty"`

	// 晒单（可选）
	ShowcaseImages  []string `json:"showcaseImages,omitempty"`
	ShowcaseMessage string   `json:"showcaseMessage,omitempty"`
	ShowcaseStatus  string   `json:"showcaseStatus,omitempty"` // none, pending, approved, rejected
}

// CommentItem 配置单评论
type CommentItem struct {
	ID        string `json:"id"`
	ConfigID  string `json:"configId"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"` // 发表时的用户名快照
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	Status    string `json:"status"` // active, hidden
}
