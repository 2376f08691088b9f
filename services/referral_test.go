package services

import (
	"testing"
	"time"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"

	"github.com/stretchr/testify/require"
)

func newReferralFixture(t *testing.T) (*ReferralService, repositories.UserRepository) {
	t.Helper()
	kv := newTestKV(t)
	users := repositories.NewUserRepository(kv, bus.New(nil))
	return NewReferralService(users), users
}

func TestEnsureInviteCodeStable(t *testing.T) {
	svc, users := newReferralFixture(t)
	require.NoError(t, users.Upsert(models.UserItem{ID: "u-1", Username: "alice"}))

	code, err := svc.EnsureInviteCode("u-1")
	require.NoError(t, err)
	require.Len(t, code, 6)
	for _, ch := range code {
		require.Contains(t, inviteAlphabet, string(ch))
	}

	again, err := svc.EnsureInviteCode("u-1")
	require.NoError(t, err)
	require.Equal(t, code, again)

	_, err = svc.EnsureInviteCode("u-missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestProcessReferralRewardsInviter(t *testing.T) {
	svc, users := newReferralFixture(t)
	now := time.Now()
	svc.now = func() time.Time { return now }

	require.NoError(t, users.Upsert(models.UserItem{ID: "u-1", Username: "alice"}))

	result, err := svc.ProcessReferral("u-1")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "邀请成功！获得 7 天 VIP", result.Message)

	inviter, _ := users.FindByID("u-1")
	require.Equal(t, 1, inviter.InviteCount)
	require.Equal(t, 7, inviter.InviteVipDays)
	require.Equal(t, now.UnixMilli()+7*dayMillis, inviter.VIPExpireAt)
}

func TestProcessReferralCapsAtThirtyDays(t *testing.T) {
	svc, users := newReferralFixture(t)
	now := time.Now()
	svc.now = func() time.Time { return now }

	require.NoError(t, users.Upsert(models.UserItem{ID: "u-1", Username: "alice"}))

	// 前 4 次每次 7 天，第 5 次只剩 2 天额度
	for i := 0; i < 4; i++ {
		result, err := svc.ProcessReferral("u-1")
		require.NoError(t, err)
		require.True(t, result.Success)
	}

	result, err := svc.ProcessReferral("u-1")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "邀请成功！获得 2 天 VIP（已达上限）", result.Message)

	inviter, _ := users.FindByID("u-1")
	require.Equal(t, MaxInviteVipDays, inviter.InviteVipDays)
	require.Equal(t, now.UnixMilli()+int64(MaxInviteVipDays)*dayMillis, inviter.VIPExpireAt)

	// 额度用尽后不再发放
	result, err = svc.ProcessReferral("u-1")
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "邀请人已达 VIP 上限", result.Message)

	after, _ := users.FindByID("u-1")
	require.Equal(t, 5, after.InviteCount)
}

func TestProcessReferralUnknownInviter(t *testing.T) {
	svc, _ := newReferralFixture(t)

	result, err := svc.ProcessReferral("u-ghost")
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, "邀请人不存在", result.Message)
}

func TestExtendVIPFromActiveExpiry(t *testing.T) {
	svc, users := newReferralFixture(t)
	now := time.Now()
	svc.now = func() time.Time { return now }

	// VIP 未到期：在剩余时间上续
	future := now.UnixMilli() + 10*dayMillis
	require.NoError(t, users.Upsert(models.UserItem{ID: "u-1", Username: "alice", VIPExpireAt: future}))
	require.NoError(t, svc.ExtendVIP("u-1", 30))
	u, _ := users.FindByID("u-1")
	require.Equal(t, future+30*dayMillis, u.VIPExpireAt)

	// VIP 已过期：从现在起算
	past := now.UnixMilli() - 5*dayMillis
	require.NoError(t, users.Upsert(models.UserItem{ID: "u-2", Username: "bob", VIPExpireAt: past}))
	require.NoError(t, svc.ExtendVIP("u-2", 30))
	u2, _ := users.FindByID("u-2")
	require.Equal(t, now.UnixMilli()+30*dayMillis, u2.VIPExpireAt)
}
