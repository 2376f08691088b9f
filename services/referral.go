package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
)

const (
	// 每成功邀请一人奖励的 VIP 天数
	DaysPerInvite = 7
	// 通过邀请能获得的 VIP 天数终身上限
	MaxInviteVipDays = 30

	dayMillis = 24 * 60 * 60 * 1000
)

// 邀请码字符表，去掉了 0/O、1/I 这类易混字符
const inviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var ErrUserNotFound = errors.New("用户不存在")

// ReferralResult 业务结果，不是错误：达到上限时 Success=false 但注册流程照常
type ReferralResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ReferralService 邀请码签发、邀请奖励与 VIP 到期时间推算
type ReferralService struct {
	users repositories.UserRepository
	now   func() time.Time
}

func NewReferralService(users repositories.UserRepository) *ReferralService {
	return &ReferralService{users: users, now: time.Now}
}

// EnsureInviteCode 懒生成用户专属邀请码。重复调用返回同一个码；
// 生成时与现存用户查重，保证全局唯一
func (s *ReferralService) EnsureInviteCode(userID string) (string, error) {
	user, ok := s.users.FindByID(userID)
	if !ok {
		return "", ErrUserNotFound
	}
	if user.InviteCode != "" {
		return user.InviteCode, nil
	}

	code := generateInviteCode()
	for {
		if _, taken := s.users.FindByInviteCode(code); !taken {
			break
		}
		code = generateInviteCode()
	}

	user.InviteCode = code
	if err := s.users.Upsert(user); err != nil {
		return "", err
	}
	return code, nil
}

func (s *ReferralService) FindUserByInviteCode(code string) (models.UserItem, bool) {
	return s.users.FindByInviteCode(code)
}

// ProcessReferral 给邀请人发放奖励。实际奖励天数 = min(单次奖励, 上限剩余额度)；
// 额度用尽后返回 Success=false，但这是业务结果，被邀请人注册不受影响
func (s *ReferralService) ProcessReferral(inviterID string) (ReferralResult, error) {
	inviter, ok := s.users.FindByID(inviterID)
	if !ok {
		return ReferralResult{Success: false, Message: "邀请人不存在"}, nil
	}

	if inviter.InviteVipDays >= MaxInviteVipDays {
		return ReferralResult{Success: false, Message: "邀请人已达 VIP 上限"}, nil
	}

	actualDays := DaysPerInvite
	if remaining := MaxInviteVipDays - inviter.InviteVipDays; actualDays > remaining {
		actualDays = remaining
	}

	inviter.InviteCount++
	inviter.InviteVipDays += actualDays
	inviter.VIPExpireAt = s.extendFrom(inviter.VIPExpireAt, actualDays)

	if err := s.users.Upsert(inviter); err != nil {
		return ReferralResult{}, err
	}

	msg := fmt.Sprintf("邀请成功！获得 %d 天 VIP", actualDays)
	if inviter.InviteVipDays >= MaxInviteVipDays {
		msg += "（已达上限）"
	}
	return ReferralResult{Success: true, Message: msg}, nil
}

// ExtendVIP 购买/支付成功后的 VIP 延期，与邀请奖励同一套到期时间算法
func (s *ReferralService) ExtendVIP(userID string, days int) error {
	user, ok := s.users.FindByID(userID)
	if !ok {
		return ErrUserNotFound
	}
	user.VIPExpireAt = s.extendFrom(user.VIPExpireAt, days)
	return s.users.Upsert(user)
}

// extendFrom VIP 未到期则在现有到期时间上续，否则从现在起算。
// 到期时间永远是绝对时间戳，不存时长
func (s *ReferralService) extendFrom(currentExpire int64, days int) int64 {
	nowMs := s.now().UnixMilli()
	start := nowMs
	if currentExpire > nowMs {
		start = currentExpire
	}
	return start + int64(days)*dayMillis
}

func generateInviteCode() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = inviteAlphabet[rand.Intn(len(inviteAlphabet))]
	}
	return string(b)
}
