package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"member-auth/database"
	"member-auth/internal/config"
	handlers "member-auth/internal/handlers/auth"
	"member-auth/internal/member"
	"member-auth/internal/middleware"
	"member-auth/internal/oauth"
	"member-auth/internal/stores"
	"member-auth/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Database migration error: %v", err)
	}

	memberStore := &stores.GormMemberStore{DB: db}
	refreshStore := &stores.GormRefreshTokenStore{DB: db}
	hasher := member.BcryptHasher{}
	tokenService := &token.JWTService{Secret: []byte(cfg.JWTSecret)}

	issuer := &token.Issuer{
		Tokens:     tokenService,
		Store:      refreshStore,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
	}

	auth := handlers.NewAuthHandler(
		memberStore,
		refreshStore,
		hasher,
		tokenService,
		issuer,
		map[string]oauth.Provider{
			"facebook": oauth.NewFacebook(),
			"google":   oauth.NewGoogle(),
		})

	// Initialize router
	r := gin.Default()

	authGroup := r.Group("/v1/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/facebook", auth.OAuthLogin("facebook"))
		authGroup.POST("/google", auth.OAuthLogin("google"))
		authGroup.POST("/refresh-token", auth.RefreshToken)
		authGroup.POST("/logout", auth.Logout)
	}

	// Routes behind the access-token middleware
	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuth(tokenService))
	{
		protected.GET("/auth/me", auth.GetCurrentUser)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.Run(":" + cfg.Port)
}
