package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/config"
	"xiaoyu-backend/database"
	"xiaoyu-backend/middleware"
	"xiaoyu-backend/models"
	"xiaoyu-backend/repositories"
	"xiaoyu-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testAuthCfg = config.AuthConfig{JWTSecret: "test-secret", TokenExpireHours: 1}

func newAuthFixture(t *testing.T) (*gin.Engine, repositories.UserRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.InitDB(dsn)
	require.NoError(t, err)
	kv := database.NewKVStore(db, 0)

	eventBus := bus.New(nil)
	users := repositories.NewUserRepository(kv, eventBus)
	referral := services.NewReferralService(users)
	stats := services.NewStatsService(repositories.NewStatsRepository(kv, eventBus))
	h := NewAuthHandler(users, referral, stats, testAuthCfg)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	authed := r.Group("/", middleware.AuthMiddleware(testAuthCfg.JWTSecret))
	authed.GET("/me/invite-code", h.MyInviteCode)
	return r, users
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newAuthFixture(t)

	w := httpDo(r, "POST", "/auth/register", models.RegisterReq{Username: "alice", Password: "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	// 重名注册被拒
	w = httpDo(r, "POST", "/auth/register", models.RegisterReq{Username: "alice", Password: "secret123"})
	require.Equal(t, http.StatusConflict, w.Code)

	w = httpDo(r, "POST", "/auth/login", models.LoginReq{Username: "alice", Password: "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string          `json:"token"`
		User  models.UserItem `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	// 密码哈希不出接口
	require.Empty(t, resp.User.Password)

	w = httpDo(r, "POST", "/auth/login", models.LoginReq{Username: "alice", Password: "wrong-pass"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterWithInviteCodeRewardsInviter(t *testing.T) {
	r, users := newAuthFixture(t)

	require.NoError(t, users.Upsert(models.UserItem{
		ID: "u-inviter", Username: "inviter", Status: "active",
		Password: mustHash(t, "pass1234"), InviteCode: "ABC234",
	}))

	w := httpDo(r, "POST", "/auth/register", models.RegisterReq{
		Username: "newbie", Password: "secret123", InviteCode: "abc234",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Invite services.ReferralResult `json:"invite"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Invite.Success)

	inviter, _ := users.FindByID("u-inviter")
	require.Equal(t, 1, inviter.InviteCount)
	require.Equal(t, 7, inviter.InviteVipDays)
	require.NotZero(t, inviter.VIPExpireAt)

	newbie, ok := users.FindByUsername("newbie")
	require.True(t, ok)
	require.Equal(t, "u-inviter", newbie.InvitedBy)
}

func TestRegisterWithUnknownInviteCodeStillSucceeds(t *testing.T) {
	r, users := newAuthFixture(t)

	w := httpDo(r, "POST", "/auth/register", models.RegisterReq{
		Username: "newbie", Password: "secret123", InviteCode: "ZZZZZZ",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Invite services.ReferralResult `json:"invite"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Invite.Success)
	require.Equal(t, "邀请人不存在", resp.Invite.Message)

	_, ok := users.FindByUsername("newbie")
	require.True(t, ok)
}

func TestMyInviteCodeRequiresAuth(t *testing.T) {
	r, _ := newAuthFixture(t)

	w := httpDo(r, "GET", "/me/invite-code", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMyInviteCodeStable(t *testing.T) {
	r, _ := newAuthFixture(t)

	w := httpDo(r, "POST", "/auth/register", models.RegisterReq{Username: "alice", Password: "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	w = httpDo(r, "POST", "/auth/login", models.LoginReq{Username: "alice", Password: "secret123"})
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	get := func() string {
		req := httptest.NewRequest("GET", "/me/invite-code", nil)
		req.Header.Set("Authorization", "Bearer "+login.Token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			InviteCode string `json:"inviteCode"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp.InviteCode
	}

	first := get()
	require.Len(t, first, 6)
	require.Equal(t, first, get())
}
