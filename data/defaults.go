// Package data 内置的默认/示例数据，仅允许迁移引擎写入存储
package data

import "xiaoyu-backend/models"

// 预置账号的保留 ID。迁移时按 ID 对齐，按用户名收编历史数据
const (
	AdminID    = "u-admin"
	DemoUserID = "u-demo"
	StreamerID = "u-streamer"
	SubAdminID = "u-subadmin"

	LegacyAdminName = "admin"
)

// DefaultAccount 预置账号，Password 为明文默认密码，落库前做 bcrypt
type DefaultAccount struct {
	ID       string
	Username string
	Password string
	Role     string
}

func DefaultAccounts() []DefaultAccount {
	return []DefaultAccount{
		{ID: AdminID, Username: "admin", Password: "admin123", Role: "admin"},
		{ID: SubAdminID, Username: "xiaoyu_kf", Password: "kf123456", Role: "sub_admin"},
		{ID: StreamerID, Username: "xiaoyu_live", Password: "live1234", Role: "streamer"},
		{ID: DemoUserID, Username: "demo", Password: "demo1234", Role: "user"},
	}
}

func DefaultStrategy() models.PricingStrategy {
	return models.PricingStrategy{
		ServiceFeeRate: 0.06,
		DiscountTiers: []models.DiscountTier{
			{ID: "d1", Name: "标准售价", Multiplier: 1.0, Description: "普通用户购买价格", SortOrder: 1},
			{ID: "d2", Name: "粉丝专享", Multiplier: 0.99, Description: "关注直播间粉丝", SortOrder: 2},
			{ID: "d3", Name: "老铁特惠", Multiplier: 0.98, Description: "回头客/老客户", SortOrder: 3},
			{ID: "d4", Name: "老板骨折", Multiplier: 0.95, Description: "特殊活动或亲友价", SortOrder: 4},
		},
	}
}

func DefaultSMSSettings() models.SMSSettings {
	return models.SMSSettings{
		Provider:     "mock",
		SignName:     "小鱼装机",
		TemplateCode: "SMS_123456789",
		Enabled:      false,
	}
}

func DefaultChatSettings() models.ChatSettings {
	return models.ChatSettings{
		WelcomeMessage: "您好！我是小鱼装机客服，请问有什么可以帮您？",
		QuickReplies:   []string{"如何下单？", "发货时间是多久？", "售后保修政策", "我想咨询配置推荐"},
	}
}

func DefaultAboutUs() models.AboutUsConfig {
	return models.AboutUsConfig{
		TopCards: []models.AboutUsCard{
			{Title: "AI 智选算法", Description: "我们构建了超 10,000 条硬件知识图谱，通过毫秒级计算，在海量组合中为您锁定最优的性能平衡点。", Icon: "Zap"},
			{Title: "极致美学", Description: "跑分不是全部，美学才是永恒。我们严格把控硬件外观与配色方案，确保您的电脑桌上不仅是工具，更是一件艺术品。", Icon: "Heart"},
			{Title: "上门装机", Description: "告别繁琐教程与折腾过程，专业装机团队全城预约上门，从安装到走线，为您提供极致的一站式省心体验。", Icon: "Sparkles"},
		},
		BrandImages: []models.AboutUsBrandImage{
			{Title: "行业领先算法奖", Desc: "连续三年蝉联"},
			{Title: "全网级影响力", Desc: "覆盖千万 DIY 爱好者"},
		},
	}
}

// SampleHardware 首次启动时铺底的硬件库
func SampleHardware() []models.HardwareItem {
	return []models.HardwareItem{
		{ID: "c1", Category: models.CategoryCPU, Brand: "Intel", Model: "i5-13600KF", Price: 1899, SortOrder: 1, Status: "active", Specs: map[string]interface{}{"socket": "LGA1700", "cores": 14, "threads": 20, "frequency": "5.1", "wattage": 181, "memoryType": "DDR5"}, UpdatedAt: "2023-10-01"},
		{ID: "c2", Category: models.CategoryCPU, Brand: "Intel", Model: "i5-12400F", Price: 849, SortOrder: 2, Status: "active", Specs: map[string]interface{}{"socket": "LGA1700", "cores": 6, "threads": 12, "frequency": "4.4", "wattage": 117, "memoryType": "DDR4"}, UpdatedAt: "2023-10-01"},
		{ID: "c3", Category: models.CategoryCPU, Brand: "AMD", Model: "R5 7500F", Price: 1099, SortOrder: 3, Status: "active", Specs: map[string]interface{}{"socket": "AM5", "cores": 6, "threads": 12, "frequency": "5.0", "wattage": 65, "memoryType": "DDR5"}, UpdatedAt: "2023-10-01"},
		{ID: "m1", Category: models.CategoryMainboard, Brand: "MSI", Model: "B760M 迫击炮 II", Price: 1299, SortOrder: 10, Status: "active", Specs: map[string]interface{}{"socket": "LGA1700", "vrm": "12+1+1", "memoryType": "DDR5", "formFactor": "MATX", "m2Slots": 2}, UpdatedAt: "2023-10-01"},
		{ID: "m2", Category: models.CategoryMainboard, Brand: "ASUS", Model: "H610M-A", Price: 599, SortOrder: 11, Status: "active", Specs: map[string]interface{}{"socket": "LGA1700", "vrm": "6+1", "memoryType": "DDR4", "formFactor": "MATX"}, UpdatedAt: "2023-10-01"},
		{ID: "g1", Category: models.CategoryGPU, Brand: "Colorful", Model: "RTX 4060 战斧", Price: 2399, SortOrder: 20, Status: "active", Specs: map[string]interface{}{"wattage": 550, "maxWattage": 115, "performance": "1080P/2K 畅玩", "length": 250, "memorySize": 8}, UpdatedAt: "2023-10-01"},
		{ID: "g2", Category: models.CategoryGPU, Brand: "ASUS", Model: "RTX 4070 Ti Super", Price: 6499, SortOrder: 21, Status: "active", Specs: map[string]interface{}{"wattage": 750, "maxWattage": 285, "performance": "4K 流畅", "length": 300}, UpdatedAt: "2023-10-01"},
		{ID: "r1", Category: models.CategoryRAM, Brand: "Kingston", Model: "Fury 16G DDR4 3200", Price: 259, SortOrder: 30, Status: "active", Specs: map[string]interface{}{"memoryType": "DDR4"}, UpdatedAt: "2023-10-01"},
		{ID: "r2", Category: models.CategoryRAM, Brand: "Corsair", Model: "Vengeance 32G(16*2) DDR5 6000", Price: 799, SortOrder: 31, Status: "active", Specs: map[string]interface{}{"memoryType": "DDR5"}, UpdatedAt: "2023-10-01"},
		{ID: "d1", Category: models.CategoryDisk, Brand: "Samsung", Model: "990 PRO 1TB", Price: 699, SortOrder: 40, Status: "active", Specs: map[string]interface{}{}, UpdatedAt: "2023-10-01"},
		{ID: "p1", Category: models.CategoryPower, Brand: "GreatWall", Model: "G7 750W 金牌", Price: 499, SortOrder: 50, Status: "active", Specs: map[string]interface{}{"wattage": 750}, UpdatedAt: "2023-10-01"},
		{ID: "cl1", Category: models.CategoryCooling, Brand: "Valkyrie", Model: "A360 水冷", Price: 399, SortOrder: 60, Status: "active", Specs: map[string]interface{}{}, UpdatedAt: "2023-10-01"},
		{ID: "ca1", Category: models.CategoryCase, Brand: "LianLi", Model: "包豪斯海景房", Price: 899, SortOrder: 80, Status: "active", Specs: map[string]interface{}{"formFactor": "ATX"}, UpdatedAt: "2023-10-01"},
	}
}

// SampleConfigs 广场示例配置单。迁移时按 ID 合并进存量数据，内置字段覆盖同名字段
func SampleConfigs() []models.ConfigItem {
	return []models.ConfigItem{
		{ID: "cfg1", UserID: "u1", AuthorName: "小鱼官方", Title: "13600K 纯白海景房", TotalPrice: 9800, Status: "published", IsRecommended: true, Views: 5000, Likes: 1204, Tags: []string{"颜值", "海景房", "生产力"}, Items: map[models.Category]string{models.CategoryCPU: "c1", models.CategoryMainboard: "m1", models.CategoryGPU: "g1"}, CreatedAt: "2023-10-01", SerialNumber: "2026-000001"},
		{ID: "cfg2", UserID: "u2", AuthorName: "隔壁老王", Title: "4060Ti 网游性价比", TotalPrice: 5200, Status: "published", Views: 120, Likes: 8, Tags: []string{"实用", "游戏"}, Items: map[models.Category]string{models.CategoryCPU: "c1"}, CreatedAt: "2023-10-05", SerialNumber: "2026-000002"},
		{ID: "cfg3", UserID: "u3", AuthorName: "被坑的网友", Title: "这配置能点亮吗？", TotalPrice: 3000, Status: "hidden", Views: 10, Tags: []string{"求助"}, Items: map[models.Category]string{models.CategoryCPU: "c1"}, CreatedAt: "2023-10-06", SerialNumber: "2026-000003"},
		{ID: "cfg5", UserID: "u4", AuthorName: "黑客帝国", Title: "暗夜骑士 4090 猛兽", TotalPrice: 25999, Status: "published", IsRecommended: true, Views: 8900, Likes: 2341, Tags: []string{"小钢炮", "游戏"}, Items: map[models.Category]string{models.CategoryCPU: "c1", models.CategoryMainboard: "m1", models.CategoryGPU: "g1"}, CreatedAt: "2023-10-07", SerialNumber: "2026-000005"},
		{ID: "cfg6", UserID: "u5", AuthorName: "小樱Sakura", Title: "粉色心情 萌妹专用机", TotalPrice: 8500, Status: "published", IsRecommended: true, Views: 12000, Likes: 4520, Tags: []string{"颜值", "直播"}, Items: map[models.Category]string{models.CategoryCPU: "c1", models.CategoryMainboard: "m1", models.CategoryGPU: "g1"}, CreatedAt: "2023-10-08", SerialNumber: "2026-000006"},
		{ID: "cfg10", UserID: "u1", AuthorName: "败家之眼", Title: "ROG 信仰全家桶", TotalPrice: 35999, Status: "published", IsRecommended: true, Views: 50000, Likes: 8888, Tags: []string{"颜值", "游戏"}, Items: map[models.Category]string{models.CategoryCPU: "c1", models.CategoryMainboard: "m1", models.CategoryGPU: "g1"}, CreatedAt: "2023-10-12", SerialNumber: "2026-000010"},
	}
}

// SampleUsedItems 二手区铺底数据
func SampleUsedItems() []models.UsedItem {
	return []models.UsedItem{
		{
			ID: "used-official-1", Type: "official", Category: "gpu", Brand: "NVIDIA", Model: "RTX 3080 10G",
			Price: 2800, OriginalPrice: 5499, Description: "官方回收矿锅已排除，三个月店保",
			Images: []string{}, Condition: "95新", Status: "published",
			SellerID: AdminID, SellerName: "小鱼官方自营", CreatedAt: 1696118400000,
			InspectionReport: &models.InspectionReport{
				InspectedAt: "2023-10-01", Grade: "A", Score: 92, Temperature: "72°C",
				StressTest: true, FunctionTest: true, Appearance: "轻微使用痕迹",
				Notes: "烤机 1 小时无黑屏花屏", InspectorName: "QC-07", ReportID: "RPT-20231001-001",
			},
		},
		{
			ID: "used-personal-1", Type: "personal", Category: "host", Brand: "整机", Model: "12400F + 3060Ti 主机",
			Price: 3500, Description: "自用一年，只玩过 LOL", Images: []string{}, Condition: "9成新",
			Status: "pending", SellerID: "u2", SellerName: "隔壁老王", CreatedAt: 1696204800000,
		},
	}
}
