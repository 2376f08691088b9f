package database

import (
	"encoding/json"
	"log"

	"xiaoyu-backend/data"
	"xiaoyu-backend/models"

	"golang.org/x/crypto/bcrypt"
)

// Seed 启动时的迁移/铺底。版本标记一致则直接返回；
// 任何一步失败只记日志不阻塞启动，应用降级可用
func Seed(kv *KVStore) {
	if err := seed(kv); err != nil {
		log.Printf("❌ 数据迁移失败（应用继续启动）: %v", err)
	}
}

func seed(kv *KVStore) error {
	marker, ok, err := kv.Get(KeyInitFlag)
	if err != nil {
		return err
	}
	if ok && marker == InitTag {
		return nil
	}

	log.Printf("🛠️ 检测到数据版本变更，开始合并内置数据 (%s)", InitTag)

	if err := mergeSampleConfigs(kv); err != nil {
		return err
	}

	// 以下集合只在键完全缺失时铺底，绝不覆盖已有数据
	seedIfAbsent(kv, KeyProducts, func() interface{} { return data.SampleHardware() })
	seedIfAbsent(kv, KeySettings, func() interface{} {
		strategy := data.DefaultStrategy()
		sms := data.DefaultSMSSettings()
		return models.StoreSettings{PricingStrategy: &strategy, SMSSettings: &sms}
	})
	seedIfAbsent(kv, KeyUsedItems, func() interface{} { return data.SampleUsedItems() })
	seedIfAbsent(kv, KeyRecycleRequests, func() interface{} { return []models.RecycleRequest{} })

	if err := seedDefaultAccounts(kv); err != nil {
		return err
	}

	if err := kv.Set(KeyInitFlag, InitTag); err != nil {
		return err
	}
	log.Println("✅ 数据迁移完成")
	return nil
}

// mergeSampleConfigs 按 ID 合并内置配置单：缺失追加；已存在则浅合并，
// 内置字段覆盖同名字段，存量独有字段保留
func mergeSampleConfigs(kv *KVStore) error {
	var existing []json.RawMessage
	if raw, ok, _ := kv.Get(KeyConfigs); ok {
		// 解析失败视为空集合，不让坏数据挡住启动
		if err := json.Unmarshal([]byte(raw), &existing); err != nil {
			log.Printf("⚠️ 存量配置单数据损坏，按空集合处理: %v", err)
			existing = nil
		}
	}

	index := make(map[string]int, len(existing))
	for i, raw := range existing {
		var probe struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &probe); err == nil && probe.ID != "" {
			index[probe.ID] = i
		}
	}

	for _, bundled := range data.SampleConfigs() {
		bundledRaw, err := json.Marshal(bundled)
		if err != nil {
			return err
		}
		i, found := index[bundled.ID]
		if !found {
			existing = append(existing, bundledRaw)
			continue
		}
		merged, err := shallowMerge(existing[i], bundledRaw)
		if err != nil {
			return err
		}
		existing[i] = merged
	}

	out, err := json.Marshal(existing)
	if err != nil {
		return err
	}
	return kv.Set(KeyConfigs, string(out))
}

// shallowMerge 字段级覆盖：overlay 中出现的键赢，base 独有的键保留
func shallowMerge(base, overlay json.RawMessage) (json.RawMessage, error) {
	var baseMap map[string]json.RawMessage
	if err := json.Unmarshal(base, &baseMap); err != nil {
		// 存量条目不是对象，直接用内置版本
		return overlay, nil
	}
	var overlayMap map[string]json.RawMessage
	if err := json.Unmarshal(overlay, &overlayMap); err != nil {
		return nil, err
	}
	for k, v := range overlayMap {
		baseMap[k] = v
	}
	return json.Marshal(baseMap)
}

// seedDefaultAccounts 预置 admin/user/streamer/sub_admin 四个账号。
// 同名不同 ID 的存量账号视作同一逻辑账号就地收编；
// 名为 admin 但 ID 不是保留 ID 的历史账号直接清除，避免出现两个 admin
func seedDefaultAccounts(kv *KVStore) error {
	var users []models.UserItem
	if raw, ok, _ := kv.Get(KeyUsers); ok {
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			log.Printf("⚠️ 存量用户数据损坏，按空集合处理: %v", err)
			users = nil
		}
	}

	kept := users[:0]
	for _, u := range users {
		if u.Username == data.LegacyAdminName && u.ID != data.AdminID {
			log.Printf("🧹 移除历史遗留的重复管理员账号 (id=%s)", u.ID)
			continue
		}
		kept = append(kept, u)
	}
	users = kept

	for _, def := range data.DefaultAccounts() {
		if i := indexOfUser(users, func(u models.UserItem) bool { return u.ID == def.ID }); i >= 0 {
			users[i].Username = def.Username
			users[i].Role = def.Role
			users[i].Status = "active"
			continue
		}
		// 用户名撞上但 ID 不同：就地收编，不重复建号
		if i := indexOfUser(users, func(u models.UserItem) bool { return u.Username == def.Username }); i >= 0 {
			users[i].Role = def.Role
			users[i].Status = "active"
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(def.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		users = append(users, models.UserItem{
			ID:       def.ID,
			Username: def.Username,
			Password: string(hashed),
			Role:     def.Role,
			Status:   "active",
		})
	}

	out, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return kv.Set(KeyUsers, string(out))
}

func indexOfUser(users []models.UserItem, match func(models.UserItem) bool) int {
	for i, u := range users {
		if match(u) {
			return i
		}
	}
	return -1
}

func seedIfAbsent(kv *KVStore, key string, build func() interface{}) {
	if _, ok, err := kv.Get(key); err != nil || ok {
		return
	}
	raw, err := json.Marshal(build())
	if err != nil {
		log.Printf("⚠️ 铺底数据序列化失败 %s: %v", key, err)
		return
	}
	if err := kv.Set(key, string(raw)); err != nil {
		log.Printf("⚠️ 铺底数据写入失败 %s: %v", key, err)
	}
}
