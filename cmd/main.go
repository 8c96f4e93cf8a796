package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/gorilla/mux"
	_ "github.com/jackc/pgx/v4/stdlib"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"guilds/pkg/admin"
	"guilds/pkg/analytics"
	"guilds/pkg/comment"
	"guilds/pkg/config"
	"guilds/pkg/discord"
	"guilds/pkg/guild"
	"guilds/pkg/logger"
	"guilds/pkg/middleware"
	"guilds/pkg/modlog"
	"guilds/pkg/sessions"
	"guilds/pkg/storage"
	"guilds/pkg/submission"
	"guilds/pkg/thumbs"
	"guilds/pkg/user"
	"guilds/pkg/user/api"
	"guilds/pkg/voting"
)

func main() {
	seedData := flag.Bool("seed", false, "fill an empty database with fake content and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("main:", err)
	}
	zapLogger := logger.Run(cfg.LogLevel)
	defer zapLogger.Sync() //nolint:errcheck

	db, err := sql.Open("pgx", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("main: unable to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("main: unable to reach PostgreSQL: %v", err)
	}

	redisPool := &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(cfg.RedisAddr)
		},
	}
	defer redisPool.Close()
	if conn := redisPool.Get(); conn.Err() != nil {
		log.Fatalf("main: can't connect to Redis: %v", conn.Err())
	} else {
		conn.Close()
	}

	mongoCtx, mongoCtxCancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer mongoCtxCancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalln("main: can't connect to MongoDB,", err)
	}
	if err := mongoClient.Ping(mongoCtx, nil); err != nil {
		log.Fatalln("main: unable to connect to MongoDB,", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Println("main: failed disconnecting from MongoDB,", err)
		}
	}()

	store, err := storage.NewStore(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL, cfg.S3UseSSL)
	if err != nil {
		log.Fatalln("main:", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	usersRepo := user.NewUserRepo(db)
	postsRepo := submission.NewSubmissionRepo(db)
	commentsRepo := comment.NewCommentRepo(db, rng)
	boardsRepo := guild.NewBoardRepo(db)
	modLog := modlog.NewModLog(mongoClient.Database(cfg.MongoDB).Collection(modlog.Collection))
	sessionManager := sessions.NewSessionManager(cfg.SecretKey, redisPool)

	if *seedData {
		seed(context.Background(), usersRepo, boardsRepo, postsRepo, commentsRepo, rng)
		return
	}

	var thumbnailer submission.IThumbnailer
	if cfg.APIFlashKey != "" {
		gen := thumbs.NewGenerator(cfg.APIFlashKey, store, postsRepo)
		defer gen.Wait()
		thumbnailer = gen
	} else {
		zapLogger.Warn("APIFLASH_KEY is not set, thumbnails are disabled")
	}

	var (
		roles  admin.IRoleSync
		linker http.Handler
	)
	if cfg.Discord.BotToken != "" {
		discordClient, err := discord.NewClient(cfg.Discord)
		if err != nil {
			log.Fatalln("main:", err)
		}
		roles = discordClient
		linker = discord.NewLinker(sessionManager, usersRepo, discordClient, discord.NewOAuthConfig(cfg.Discord))
	} else {
		zapLogger.Warn("DISCORD_BOT_TOKEN is not set, account linking is disabled")
	}

	userHandler := api.NewUserHandler(usersRepo, sessionManager)
	postHandler := submission.NewSubmissionHandler(postsRepo, commentsRepo, boardsRepo,
		voting.NewPercentCache(redisPool), thumbnailer, store.URL)
	adminHandler := admin.NewAdminHandler(usersRepo, postsRepo, commentsRepo, boardsRepo, modLog, store, roles)
	statsHandler := analytics.NewAnalyticsHandler(usersRepo, store)

	auth := middleware.NewAuthMiddleware(sessionManager, usersRepo)
	logMiddleware := middleware.NewLoggingMiddleware(zapLogger)

	r := mux.NewRouter()
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)
	r.Use(auth.Middleware)

	// Posts
	r.HandleFunc("/post/{pid}", postHandler.Get).Methods("GET")
	r.HandleFunc("/post/{pid}/comment/{cid}", postHandler.GetComment).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()

	// User
	apiRouter.HandleFunc("/register", userHandler.Register).Methods("POST")
	apiRouter.HandleFunc("/login", userHandler.LogIn).Methods("POST")
	apiRouter.Handle("/me", middleware.RequireAuth(http.HandlerFunc(userHandler.Me))).Methods("GET")
	apiRouter.Handle("/submit", middleware.RequireAuth(auth.RequireFormKey(http.HandlerFunc(postHandler.Submit)))).
		Methods("POST")

	// Moderation
	mod := func(level int, h http.HandlerFunc) http.Handler {
		return middleware.RequireAdmin(level)(auth.RequireFormKey(h))
	}
	apiRouter.Handle("/ban_user/{uid}", mod(3, adminHandler.BanUser)).Methods("POST")
	apiRouter.Handle("/unban_user/{uid}", mod(3, adminHandler.UnbanUser)).Methods("POST")
	apiRouter.Handle("/ban_post/{pid}", mod(3, adminHandler.BanPost)).Methods("POST")
	apiRouter.Handle("/unban_post/{pid}", mod(3, adminHandler.UnbanPost)).Methods("POST")
	apiRouter.Handle("/distinguish/{pid}", mod(1, adminHandler.DistinguishPost)).Methods("POST")
	apiRouter.Handle("/sticky/{pid}", mod(3, adminHandler.Sticky)).Methods("POST")
	apiRouter.Handle("/ban_comment/{cid}", mod(1, adminHandler.BanComment)).Methods("POST")
	apiRouter.Handle("/unban_comment/{cid}", mod(1, adminHandler.UnbanComment)).Methods("POST")
	apiRouter.Handle("/distinguish_comment/{cid}", mod(1, adminHandler.DistinguishComment)).Methods("POST")
	apiRouter.Handle("/undistinguish_comment/{cid}", mod(1, adminHandler.UndistinguishComment)).Methods("POST")
	apiRouter.Handle("/ban_guild/{bid}", mod(4, adminHandler.BanGuild)).Methods("POST")
	apiRouter.Handle("/unban_guild/{bid}", mod(4, adminHandler.UnbanGuild)).Methods("POST")
	apiRouter.Handle("/mod_self/{bid}", mod(4, adminHandler.ModSelf)).Methods("POST")
	apiRouter.Handle("/mod_log", middleware.RequireAdmin(2)(http.HandlerFunc(adminHandler.ModLog))).Methods("GET")

	// Analytics
	apiRouter.Handle("/user_stat_data", middleware.RequireAdmin(2)(http.HandlerFunc(statsHandler.UserStatData))).
		Methods("GET")

	// Discord
	if linker != nil {
		r.Handle("/discord", middleware.RequireAuth(linker)).Methods("GET")
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Infof("serving at %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("main:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Errorf("shutdown: %v", err)
	}
}
