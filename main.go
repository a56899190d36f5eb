package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/amazeing/api"
	api_i "github.com/beka-birhanu/amazeing/api/i"
	mazeapi "github.com/beka-birhanu/amazeing/api/maze"
	"github.com/beka-birhanu/amazeing/api/middleware"
	"github.com/beka-birhanu/amazeing/config"
	"github.com/beka-birhanu/amazeing/infrastruture/cache"
	logger "github.com/beka-birhanu/amazeing/infrastruture/log"
	"github.com/beka-birhanu/amazeing/infrastruture/repo"
	"github.com/beka-birhanu/amazeing/infrastruture/token"
	"github.com/beka-birhanu/amazeing/maze"
	"github.com/beka-birhanu/amazeing/service"
	"github.com/beka-birhanu/amazeing/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout    = 10 * time.Second
	mazeCollection    = "mazes"
	defaultConfigFile = "config.txt"
)

var (
	serve      = flag.Bool("serve", false, "run the HTTP API instead of generating one maze")
	issueToken = flag.String("issue-token", "", "print a signed token for the given subject and exit")
	tokenTTL   = flag.Duration("token-ttl", 24*time.Hour, "lifetime of tokens printed by -issue-token")
)

// Global variables for dependencies
var (
	envs           config.Config
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	mazeCache      i.MazeCache
	mazeService    i.MazeService
	jwtTokenizer   i.Tokenizer
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initEnvs() {
	var err error
	envs, err = config.LoadEnvs()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading environment: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Environment loaded")
}

func initMongo(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(envs.MongoURI()))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, envs.DBName, mazeCollection)
	appLogger.Info("Maze repository initialized")
}

// initRedis connects the cache. The API still works without it, so a
// failed ping only disables caching.
func initRedis(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	redisClient = redis.NewClient(&redis.Options{
		Addr:     envs.RedisAddr,
		Password: envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Warning(fmt.Sprintf("Redis ping failed, caching disabled: %v", err))
		return
	}

	c, err := cache.NewRedisMazeCache(redisClient, envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Warning(fmt.Sprintf("Creating maze cache, caching disabled: %v", err))
		return
	}
	mazeCache = c
	appLogger.Info("Connected to Redis")
}

func initMazeService() {
	svc, err := service.NewMazeService(mazeCache, mazeRepo, newLogger("MAZE", config.ColorCyan))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	mazeService = svc
	appLogger.Info("Maze service initialized")
}

func initJWTTokenizer() {
	t, err := token.NewJwtService(envs.JWTSecret, envs.JWTIssuer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating JWT tokenizer: %v", err))
		os.Exit(1)
	}
	jwtTokenizer = t
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeController() {
	c, err := mazeapi.NewController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	mazeController = c
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    envs.Addr(),
		BaseURL:                 "/api",
		GinMode:                 envs.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: middleware.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func runServer(ctx context.Context) {
	initEnvs()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initMazeRepo(mongoClient)
	initMazeService()
	initJWTTokenizer()
	initMazeController()
	initRouter(jwtTokenizer)

	appLogger.Info(fmt.Sprintf("Serving on %s", envs.Addr()))
	if err := router.Run(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Running server: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Server stopped")
}

func runIssueToken(subject string) {
	initEnvs()
	initJWTTokenizer()

	signed, err := jwtTokenizer.Generate(map[string]interface{}{"sub": subject}, *tokenTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Signing token: %v", err))
		os.Exit(1)
	}
	fmt.Println(signed)
}

func runGenerate(ctx context.Context, path string) {
	mf, err := config.LoadMaze(path)
	if err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}

	initMazeService()
	m, err := mazeService.Generate(ctx, mf.Options())
	if err != nil {
		appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}

	if err := writeOutput(mf.OutputFile, m); err != nil {
		appLogger.Error(fmt.Sprintf("Writing %s: %v", mf.OutputFile, err))
		os.Exit(1)
	}

	fmt.Print(m.String())
	appLogger.Info(fmt.Sprintf("Maze %dx%d with seed %d written to %s, shortest path %d steps",
		mf.Width, mf.Height, m.Seed, mf.OutputFile, m.Path.Steps()))
}

func writeOutput(path string, m *maze.Maze) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := maze.WriteHex(f, m.Grid, m.Entry, m.Exit, m.Path); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger = newLogger("APP", config.ColorGreen)

	switch {
	case *serve:
		runServer(ctx)
	case *issueToken != "":
		runIssueToken(*issueToken)
	default:
		path := defaultConfigFile
		if flag.NArg() > 0 {
			path = flag.Arg(0)
		}
		runGenerate(ctx, path)
	}
}
