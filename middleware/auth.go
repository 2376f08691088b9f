package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"xiaoyu-backend/utils"
)

// AuthMiddleware 校验 Bearer Token，并把身份写入上下文
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(401, gin.H{"error": "未登录"})
			c.Abort()
			return
		}

		tokenString := authHeader[7:] // 去掉 "Bearer "
		claims, err := utils.ParseToken(tokenString, jwtSecret)
		if err != nil {
			c.JSON(401, gin.H{"error": "无效的Token"})
			c.Abort()
			return
		}

		c.Set("current_user_id", claims.UserID)
		c.Set("current_role", claims.Role)
		c.Next()
	}
}

// AdminOnly 管理端接口的角色闸门，必须挂在 AuthMiddleware 之后
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("current_role")
		if role != "admin" && role != "sub_admin" {
			c.JSON(403, gin.H{"error": "无权限访问"})
			c.Abort()
			return
		}
		c.Next()
	}
}
