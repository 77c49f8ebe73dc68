package main

import (
	"fmt"
	"log"
	"os"

	"quicknotes/config"
	"quicknotes/handler"
	"quicknotes/middleware"
	"quicknotes/model"
	"quicknotes/repository"
	"quicknotes/services"
	"quicknotes/usecase"
	"quicknotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	if os.Getenv("JWT_SECRET_KEY") == "" && os.Getenv("GO_ENV") != "test" {
		log.Fatal("Required environment variable JWT_SECRET_KEY is not set")
	}

	utils.InitValidator()
	services.InitJWT(os.Getenv("JWT_SECRET_KEY"))
}

func setupRouter(db *sqlx.DB, serverCfg config.ServerConfig, authCfg config.AuthConfig, limiter *services.LoginLimiter) *gin.Engine {
	usersRepo := repository.GetUsersRepo(db)
	notesRepo := repository.GetNotesRepo(db)
	tagsRepo := repository.GetTagsRepo(db)
	imagesRepo := repository.GetImagesRepo(db)

	userService := &usecase.UserService{UsersRepo: usersRepo}
	noteService := &usecase.NoteService{NotesRepo: notesRepo}
	tagService := &usecase.TagService{TagsRepo: tagsRepo}

	usersHandler := handler.NewUsersHandler(userService)
	notesHandler := handler.NewNotesHandler(noteService)
	tagsHandler := handler.NewTagsHandler(tagService)
	tokenHandler := handler.NewTokenHandler(userService, limiter, authCfg.TokenTTL)
	uploadsHandler := handler.NewUploadsHandler(imagesRepo, serverCfg.UploadDir, serverCfg.UploadBaseURL)
	statsHandler := handler.NewStatsHandler(usersRepo, notesRepo, tagsRepo)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(serverCfg.MaxRequestSize))

	// Public routes
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/auth/token", tokenHandler.IssueToken)
	router.POST("/users", usersHandler.Register)
	router.GET("/users", usersHandler.ListUsers)
	router.GET("/users/:id", usersHandler.GetUser)
	router.GET("/tags", tagsHandler.ListTags)
	router.GET("/tags/:id", tagsHandler.GetTag)
	router.PUT("/uploads", uploadsHandler.UploadImage)
	router.Static(serverCfg.UploadBaseURL, serverCfg.UploadDir)

	// Authenticated routes (Basic or Bearer)
	protected := router.Group("", middleware.RequireAuth(userService))
	{
		notes := protected.Group("/notes")
		{
			notes.GET("", notesHandler.ListNotes)
			notes.POST("", notesHandler.CreateNote)
			notes.GET("/:id", notesHandler.GetNote)
			notes.PUT("/:id", notesHandler.EditNote)
			notes.DELETE("/:id", notesHandler.DeleteNote)
			notes.PUT("/:id/restore", notesHandler.RestoreNote)
			notes.PUT("/:id/tags", notesHandler.AddTags)
			notes.DELETE("/:id/tags", notesHandler.RemoveTags)
		}

		protected.POST("/tags", tagsHandler.CreateTag)
		protected.PUT("/tags/:id", tagsHandler.RenameTag)
		protected.DELETE("/tags/:id", tagsHandler.DeleteTag)

		admin := protected.Group("", middleware.RequireRole(model.RoleAdmin))
		{
			admin.PUT("/users/:id", usersHandler.RenameUser)
			admin.DELETE("/users/:id", usersHandler.DeleteUser)
			admin.GET("/stats", statsHandler.GetStats)
		}
	}

	return router
}

func main() {
	dbCfg := config.LoadDatabaseConfig()
	serverCfg := config.LoadServerConfig()
	authCfg := config.LoadAuthConfig()

	db, err := repository.Open(dbCfg.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := os.MkdirAll(serverCfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	var limiter *services.LoginLimiter
	if serverCfg.RedisURL != "" {
		limiter, err = services.NewLoginLimiter(serverCfg.RedisURL, serverCfg.LoginAttempts, serverCfg.LoginWindow)
		if err != nil {
			log.Fatalf("Failed to connect login limiter: %v", err)
		}
	} else {
		log.Println("REDIS_URL not set, login rate limiting disabled")
	}

	router := setupRouter(db, serverCfg, authCfg, limiter)

	serverAddr := fmt.Sprintf(":%s", serverCfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
