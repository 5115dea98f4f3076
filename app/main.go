package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/syamsf/dicoding-forum-api/internal/repository/mysql"
	"github.com/syamsf/dicoding-forum-api/internal/repository/mysql/model"
	redisRepo "github.com/syamsf/dicoding-forum-api/internal/repository/redis"
	"github.com/syamsf/dicoding-forum-api/internal/rest"
	"github.com/syamsf/dicoding-forum-api/internal/rest/middleware"
	"github.com/syamsf/dicoding-forum-api/internal/usecase/comment"
	"github.com/syamsf/dicoding-forum-api/internal/usecase/reply"
	"github.com/syamsf/dicoding-forum-api/internal/usecase/thread"
	"github.com/syamsf/dicoding-forum-api/internal/usecase/user"
)

const (
	defaultTimeout         = 30
	defaultAddress         = ":5000"
	defaultSessionDB       = 0
	defaultAccessTTLHours  = 1
	defaultRefreshTTLHours = 24
	dbMaxRetry             = 10
	dbRetryIntervalSec     = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(gormmysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	err = db.AutoMigrate(
		&model.User{},
		&model.Thread{},
		&model.Comment{},
		&model.Reply{},
		&model.CommentLike{},
	)
	if err != nil {
		log.Fatal("failed to migrate database schema:", err)
	}

	// prepare session store
	sessionHost := os.Getenv("SESSION_HOST")
	sessionPort := os.Getenv("SESSION_PORT")
	sessionPass := os.Getenv("SESSION_PASS")
	sessionDBStr := os.Getenv("SESSION_DB")
	sessionDB, err := strconv.Atoi(sessionDBStr)
	if err != nil {
		log.Println("failed to parse session DB index, using default")
		sessionDB = defaultSessionDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     sessionHost + ":" + sessionPort,
		Password: sessionPass,
		DB:       sessionDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the session store connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to session store", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	threadRepo := mysqlRepo.NewThreadRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	replyRepo := mysqlRepo.NewReplyRepository(db)
	likeRepo := mysqlRepo.NewCommentLikeRepository(db)
	tokenStore := redisRepo.NewRefreshTokenStore(client)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	accessTTL := ttlFromEnv("ACCESS_TOKEN_TTL_HOURS", defaultAccessTTLHours)
	refreshTTL := ttlFromEnv("REFRESH_TOKEN_TTL_HOURS", defaultRefreshTTLHours)

	userSvc := user.NewService(userRepo, tokenStore, jwtSecret, accessTTL, refreshTTL)
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	commentSvc := comment.NewService(commentRepo, threadRepo, likeRepo)
	replySvc := reply.NewService(replyRepo, commentRepo, threadRepo)

	userHandler := rest.NewUserHandler(userSvc)
	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Register routes
	route.POST("/users", userHandler.Register)
	route.POST("/authentications", userHandler.Login)
	route.PUT("/authentications", userHandler.Refresh)
	route.DELETE("/authentications", userHandler.Logout)

	route.GET("/threads/:threadId", threadHandler.GetDetail)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/threads", threadHandler.Store)
		authorized.POST("/threads/:threadId/comments", commentHandler.Store)
		authorized.DELETE("/threads/:threadId/comments/:commentId", commentHandler.Delete)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", commentHandler.ToggleLike)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", replyHandler.Store)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", replyHandler.Delete)
	}

	// Start Server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}

func ttlFromEnv(key string, defaultHours int) time.Duration {
	hours, err := strconv.Atoi(os.Getenv(key))
	if err != nil || hours <= 0 {
		log.Printf("failed to parse %s, using default %d hours", key, defaultHours)
		hours = defaultHours
	}
	return time.Duration(hours) * time.Hour
}
