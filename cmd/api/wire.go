//go:build wireinject
// +build wireinject

// Wire injector. Run `wire gen ./cmd/api` to regenerate wire_gen.go; main.go
// keeps a manual wiring of the same graph.

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appbook "github.com/adilzhan/libra/internal/application/book"
	appborrow "github.com/adilzhan/libra/internal/application/borrow"
	applibrarian "github.com/adilzhan/libra/internal/application/librarian"
	appreader "github.com/adilzhan/libra/internal/application/reader"
	"github.com/adilzhan/libra/internal/domain/book"
	"github.com/adilzhan/libra/internal/domain/librarian"
	"github.com/adilzhan/libra/internal/domain/reader"
	"github.com/adilzhan/libra/internal/infrastructure/config"
	"github.com/adilzhan/libra/internal/infrastructure/persistence/mysql"
	"github.com/adilzhan/libra/internal/infrastructure/persistence/redis"
	"github.com/adilzhan/libra/internal/interface/http/handler"
	"github.com/adilzhan/libra/internal/interface/http/middleware"
	"github.com/adilzhan/libra/pkg/jwt"
	"github.com/adilzhan/libra/pkg/mq"
)

var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
	provideEventPublisher,
)

var repositorySet = wire.NewSet(
	mysql.NewBookRepository,
	mysql.NewReaderRepository,
	mysql.NewLibrarianRepository,
	mysql.NewBorrowRepository,
	mysql.NewTxManager,
	wire.Bind(new(appborrow.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appbook.TxManager), new(*mysql.TxManager)),
)

var domainSet = wire.NewSet(
	book.NewService,
	reader.NewService,
	librarian.NewService,
)

var applicationSet = wire.NewSet(
	applibrarian.NewRegisterUseCase,
	applibrarian.NewLoginUseCase,
	applibrarian.NewLogoutUseCase,
	appbook.NewAddBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appreader.NewRegisterReaderUseCase,
	appreader.NewGetReaderUseCase,
	appreader.NewListReadersUseCase,
	appreader.NewUpdateReaderUseCase,
	appreader.NewDeleteReaderUseCase,
	appborrow.NewBorrowBookUseCase,
	appborrow.NewReturnBookUseCase,
	appborrow.NewListRecordsUseCase,
)

var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

var handlerSet = wire.NewSet(
	handler.NewLibrarianHandler,
	handler.NewBookHandler,
	handler.NewReaderHandler,
	handler.NewBorrowHandler,
)

func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.RefreshTokenExpire)
}

func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

func provideEventPublisher(cfg *config.Config) (mq.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return mq.NoopPublisher{}, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
}

func provideGinEngine(
	cfg *config.Config,
	librarianHandler *handler.LibrarianHandler,
	bookHandler *handler.BookHandler,
	readerHandler *handler.ReaderHandler,
	borrowHandler *handler.BorrowHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.Metrics())
	registerRoutes(r, librarianHandler, bookHandler, readerHandler, borrowHandler, authMiddleware)
	return r
}

// InitializeApp assembles the whole application and returns the router.
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
