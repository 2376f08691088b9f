package models

// DiscountTier 折扣档位
type DiscountTier struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
	SortOrder   int     `json:"sortOrder"`
}

// PricingStrategy 报价策略
type PricingStrategy struct {
	ServiceFeeRate float64        `json:"serviceFeeRate"`
	DiscountTiers  []DiscountTier `json:"discountTiers"`
}

// AISettings AI 装机助手配置
type AISettings struct {
	Provider string `json:"provider"` // deepseek, openai, claude, custom
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseUrl"`
	Model    string `json:"model"`
	Enabled  bool   `json:"enabled"`
	Persona  string `json:"persona,omitempty"`
	Strategy string `json:"strategy,omitempty"`

	Intros             []string `json:"intros,omitempty"`
	LowBudgetIntros    []string `json:"lowBudgetIntros,omitempty"`
	SevereBudgetIntros []string `json:"severeBudgetIntros,omitempty"`
	Verdicts           []string `json:"verdicts,omitempty"`
	CTAs               []string `json:"ctas,omitempty"`
}

// SMSSettings 短信验证码配置
type SMSSettings struct {
	Provider        string `json:"provider"` // aliyun, tencent, mock
	AccessKeyID     string `json:"accessKeyId"`
	AccessKeySecret string `json:"accessKeySecret"`
	SignName        string `json:"signName"`
	TemplateCode    string `json:"templateCode"`
	Enabled         bool   `json:"enabled"`
}

// StoreSettings xiaoyu_settings 键下的聚合对象
type StoreSettings struct {
	PricingStrategy *PricingStrategy `json:"pricingStrategy,omitempty"`
	AISettings      *AISettings      `json:"aiSettings,omitempty"`
	SMSSettings     *SMSSettings     `json:"smsSettings,omitempty"`
}

// AboutUsCard 关于我们·顶部卡片
type AboutUsCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

type AboutUsBrandImage struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// AboutUsConfig 关于我们页面配置
type AboutUsConfig struct {
	TopCards    []AboutUsCard       `json:"topCards"`
	BrandImages []AboutUsBrandImage `json:"brandImages"`
}
