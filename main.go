package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"xiaoyu-backend/bus"
	"xiaoyu-backend/config"
	"xiaoyu-backend/database"
	"xiaoyu-backend/handlers"
	"xiaoyu-backend/middleware"
	"xiaoyu-backend/repositories"
	"xiaoyu-backend/services"
)

func main() {

	// 加载配置
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		panic(err)
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Storage.Path)
	if err != nil {
		panic(err)
	}
	kv := database.NewKVStore(db, cfg.Storage.MaxBytes)

	// 失效通知通道
	hub := bus.NewHub()
	go hub.Run()
	eventBus := bus.New(hub)

	// 首启/升级时灌默认数据
	database.Seed(kv)

	// 初始化 Repositories
	productRepo := repositories.NewProductRepository(kv, eventBus)
	configRepo := repositories.NewConfigRepository(kv, eventBus)
	userRepo := repositories.NewUserRepository(kv, eventBus)
	usedRepo := repositories.NewUsedRepository(kv, eventBus)
	recycleRepo := repositories.NewRecycleRepository(kv, eventBus)
	commentRepo := repositories.NewCommentRepository(kv, eventBus)
	chatRepo := repositories.NewChatRepository(kv, eventBus)
	settingsRepo := repositories.NewSettingsRepository(kv, eventBus)
	statsRepo := repositories.NewStatsRepository(kv, eventBus)
	likesRepo := repositories.NewLikesRepository(kv, eventBus)

	// 初始化 Services
	referralService := services.NewReferralService(userRepo)
	statsService := services.NewStatsService(statsRepo)
	chatService := services.NewChatService(chatRepo)
	smsService := services.NewSMSService(kv)
	paymentPoller := services.NewPaymentPoller(cfg.Payment)

	// 会话列表兜底轮询：推送掉线的实例靠这个保底刷新
	chatPoller := services.NewPoller(cfg.Chat.PollInterval(), func() {
		eventBus.Publish(bus.Event{Key: database.KeyChatSessions})
	})
	chatPoller.Start()
	defer chatPoller.Stop()

	// 初始化 Handlers (注入 Repo)
	authHandler := handlers.NewAuthHandler(userRepo, referralService, statsService, cfg.Auth)
	productHandler := handlers.NewProductHandler(productRepo)
	configHandler := handlers.NewConfigHandler(configRepo, likesRepo, statsService)
	userHandler := handlers.NewUserHandler(userRepo)
	usedHandler := handlers.NewUsedHandler(usedRepo, recycleRepo)
	commentHandler := handlers.NewCommentHandler(commentRepo)
	chatHandler := handlers.NewChatHandler(chatRepo, chatService)
	settingsHandler := handlers.NewSettingsHandler(settingsRepo, chatRepo, smsService)
	statsHandler := handlers.NewStatsHandler(statsService)
	storageHandler := handlers.NewStorageHandler(kv, eventBus)
	paymentHandler := handlers.NewPaymentHandler(paymentPoller, referralService)

	// 注册路由
	r := gin.Default()
	v1 := r.Group("/api/v1")
	{
		// 公开接口
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)
		v1.POST("/sms/send", settingsHandler.SendSMSCode)

		v1.GET("/products", productHandler.ListProducts)
		v1.GET("/products/:id", productHandler.GetProduct)
		v1.GET("/configs", configHandler.ListConfigs)
		v1.GET("/configs/:id", configHandler.GetConfig)
		v1.GET("/configs/:id/comments", commentHandler.ListComments)
		v1.GET("/used", usedHandler.ListUsed)
		v1.GET("/used/:id", usedHandler.GetUsed)
		v1.POST("/recycle", usedHandler.SubmitRecycle)
		v1.GET("/pricing", settingsHandler.GetPricingStrategy)
		v1.GET("/about-us", settingsHandler.GetAboutUs)
		v1.POST("/stats/ai-generation", statsHandler.LogAiGeneration)

		// 客服会话：访客不登录也能聊
		v1.POST("/chat/session", chatHandler.OpenSession)
		v1.GET("/chat/sessions/:id/messages", chatHandler.ListMessages)
		v1.POST("/chat/sessions/:id/messages", chatHandler.PostMessage)

		// WebSocket 失效通知
		v1.GET("/ws", func(c *gin.Context) {
			handlers.ServeWs(hub, c)
		})
	}

	// 登录用户接口
	user := r.Group("/api/v1", middleware.AuthMiddleware(cfg.Auth.JWTSecret))
	{
		user.GET("/me/invite-code", authHandler.MyInviteCode)
		user.GET("/me/likes", configHandler.MyLikes)
		user.POST("/configs/:id/like", configHandler.ToggleLike)
		user.POST("/configs/:id/comments", commentHandler.PostComment)
		user.POST("/configs", configHandler.SaveConfig)
		user.POST("/used", usedHandler.SaveUsed)

		user.GET("/payment/orders/:id", paymentHandler.QueryOrder)
		user.POST("/payment/orders/:id/watch", paymentHandler.WatchOrder)
		user.DELETE("/payment/orders/:id/watch", paymentHandler.CancelWatch)
	}

	// 管理端接口
	admin := r.Group("/api/v1/admin", middleware.AuthMiddleware(cfg.Auth.JWTSecret), middleware.AdminOnly())
	{
		admin.GET("/products", productHandler.ListAllProducts)
		admin.POST("/products", productHandler.SaveProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)

		admin.GET("/configs", configHandler.ListAllConfigs)
		admin.POST("/configs", configHandler.SaveConfig)
		admin.DELETE("/configs/:id", configHandler.DeleteConfig)

		admin.GET("/users", userHandler.ListUsers)
		admin.POST("/users", userHandler.SaveUser)
		admin.DELETE("/users/:id", userHandler.DeleteUser)

		admin.GET("/used", usedHandler.ListAllUsed)
		admin.POST("/used", usedHandler.SaveUsed)
		admin.POST("/used/:id/sold", usedHandler.MarkSold)
		admin.DELETE("/used/:id", usedHandler.DeleteUsed)

		admin.GET("/recycle", usedHandler.ListRecycle)
		admin.POST("/recycle", usedHandler.UpdateRecycle)
		admin.POST("/recycle/:id/read", usedHandler.MarkRecycleRead)
		admin.DELETE("/recycle/:id", usedHandler.DeleteRecycle)

		admin.GET("/comments", commentHandler.ListAllComments)
		admin.POST("/comments", commentHandler.UpdateComment)
		admin.DELETE("/comments/:id", commentHandler.DeleteComment)

		admin.GET("/chat/sessions", chatHandler.ListSessions)
		admin.POST("/chat/sessions/:id/read", chatHandler.MarkRead)
		admin.POST("/chat/sessions/:id/close", chatHandler.CloseSession)
		admin.GET("/chat/settings", settingsHandler.GetChatSettings)
		admin.POST("/chat/settings", settingsHandler.SaveChatSettings)

		admin.GET("/settings/pricing", settingsHandler.GetPricingStrategy)
		admin.POST("/settings/pricing", settingsHandler.SavePricingStrategy)
		admin.GET("/settings/ai", settingsHandler.GetAISettings)
		admin.POST("/settings/ai", settingsHandler.SaveAISettings)
		admin.GET("/settings/sms", settingsHandler.GetSMSSettings)
		admin.POST("/settings/sms", settingsHandler.SaveSMSSettings)
		admin.GET("/settings/about-us", settingsHandler.GetAboutUs)
		admin.POST("/settings/about-us", settingsHandler.SaveAboutUs)

		admin.GET("/stats", statsHandler.GetStats)

		admin.GET("/storage/export", storageHandler.Export)
		admin.POST("/storage/import", storageHandler.Import)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("🚀 小鱼装机后端启动，监听 %s", addr)
	_ = r.Run(addr)
}
