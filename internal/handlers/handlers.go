package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"awkwardturtle/api/internal/apperr"
	"awkwardturtle/api/internal/config"
	"awkwardturtle/api/internal/middleware"
	"awkwardturtle/api/internal/models"
	"awkwardturtle/api/internal/repository"
	"awkwardturtle/api/internal/service"
)

type HandlerSet struct {
	log           zerolog.Logger
	cfg           *config.AppConfig
	db            *pgxpool.Pool
	cache         *redis.Client
	auth          *service.AuthService
	friends       *service.FriendService
	messages      *service.MessageService
	notifications *service.NotificationService
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	friendRepo := repository.NewFriendshipRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifications := service.NewNotificationService(notificationRepo, cache, cfg, log)
	auth := service.NewAuthService(userRepo, cfg, log)
	friends := service.NewFriendService(userRepo, friendRepo, notifications, log)
	messages := service.NewMessageService(userRepo, messageRepo, notifications, log)

	return HandlerSet{
		log:           log,
		cfg:           cfg,
		db:            db,
		cache:         cache,
		auth:          auth,
		friends:       friends,
		messages:      messages,
		notifications: notifications,
	}
}

// NotificationService exposes the feed service for wiring into the
// maintenance scheduler.
func (h HandlerSet) NotificationService() *service.NotificationService {
	return h.notifications
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	v1.GET("/", h.Root)

	sessionRequired := middleware.Auth(h.cfg.Security.CookieName, h.auth)

	auth := v1.Group("/auth")
	auth.POST("/register", h.RegisterUser)
	auth.POST("/login", h.Login)
	auth.POST("/logout", sessionRequired, h.Logout)

	friends := v1.Group("/friends", sessionRequired)
	friends.GET("", h.ListFriends)
	friends.POST("/add/:username", h.AddFriend)
	friends.POST("/remove/:username", h.RemoveFriend)

	messages := v1.Group("/messages", sessionRequired)
	messages.POST("/send", h.SendMessage)
	messages.GET("/inbox", h.Inbox)
	messages.GET("/outbox", h.Outbox)
	messages.POST("/:id/read", h.MarkMessageRead)

	notifications := v1.Group("/notifications", sessionRequired)
	notifications.GET("", h.ListNotifications)
	notifications.GET("/:id", h.GetNotification)
	notifications.POST("/:id/read", h.MarkNotificationRead)
	notifications.DELETE("", h.DeleteAllNotifications)

	users := v1.Group("/users")
	users.PUT("/:id/status", h.UpdateUserStatus)
}

func (h HandlerSet) Root(c *gin.Context) {
	c.JSON(200, gin.H{"message": "Awkward Turtle API v1"})
}

// currentUser returns the user stored by the auth middleware. Routes
// calling this are always behind that middleware.
func currentUser(c *gin.Context) models.User {
	user, _ := c.MustGet(middleware.CurrentUserKey).(models.User)
	return user
}

// fail maps a service error onto its status code and detail payload.
func fail(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"detail": apperr.Detail(err)})
}

// failValidation reports a request-binding failure. Matches the
// original API's 422 contract for malformed input.
func failValidation(c *gin.Context, err error) {
	c.JSON(422, gin.H{"detail": err.Error()})
}
