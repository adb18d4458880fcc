package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

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
	"github.com/adilzhan/libra/pkg/logger"
	"github.com/adilzhan/libra/pkg/mq"
	"github.com/adilzhan/libra/pkg/response"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	db, err := mysql.NewDB(cfg)
	if err != nil {
		zl.Fatal("failed to connect to mysql", zap.Error(err))
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		zl.Fatal("failed to connect to redis", zap.Error(err))
	}

	publisher, closePublisher, err := newPublisher(cfg)
	if err != nil {
		zl.Fatal("failed to connect to message broker", zap.Error(err))
	}
	defer closePublisher()

	// Infrastructure.
	bookRepo := mysql.NewBookRepository(db)
	readerRepo := mysql.NewReaderRepository(db)
	librarianRepo := mysql.NewLibrarianRepository(db)
	borrowRepo := mysql.NewBorrowRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire, cfg.JWT.RefreshTokenExpire)

	// Domain.
	bookService := book.NewService(bookRepo)
	readerService := reader.NewService(readerRepo)
	librarianService := librarian.NewService(librarianRepo)

	// Application.
	registerUseCase := applibrarian.NewRegisterUseCase(librarianService)
	loginUseCase := applibrarian.NewLoginUseCase(librarianService, jwtManager, sessionStore)
	logoutUseCase := applibrarian.NewLogoutUseCase(jwtManager, sessionStore)

	addBookUseCase := appbook.NewAddBookUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookRepo, borrowRepo, txManager)

	registerReaderUseCase := appreader.NewRegisterReaderUseCase(readerService)
	getReaderUseCase := appreader.NewGetReaderUseCase(readerService)
	listReadersUseCase := appreader.NewListReadersUseCase(readerService)
	updateReaderUseCase := appreader.NewUpdateReaderUseCase(readerService)
	deleteReaderUseCase := appreader.NewDeleteReaderUseCase(readerService)

	borrowBookUseCase := appborrow.NewBorrowBookUseCase(borrowRepo, bookRepo, readerRepo, txManager, publisher)
	returnBookUseCase := appborrow.NewReturnBookUseCase(borrowRepo, bookRepo, readerRepo, txManager, publisher)
	listRecordsUseCase := appborrow.NewListRecordsUseCase(borrowRepo)

	// Interface.
	librarianHandler := handler.NewLibrarianHandler(registerUseCase, loginUseCase, logoutUseCase)
	bookHandler := handler.NewBookHandler(addBookUseCase, getBookUseCase, listBooksUseCase, updateBookUseCase, deleteBookUseCase)
	readerHandler := handler.NewReaderHandler(registerReaderUseCase, getReaderUseCase, listReadersUseCase, updateReaderUseCase, deleteReaderUseCase)
	borrowHandler := handler.NewBorrowHandler(borrowBookUseCase, returnBookUseCase, listRecordsUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.Metrics())

	registerRoutes(r, librarianHandler, bookHandler, readerHandler, borrowHandler, authMiddleware)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zl.Info("server starting", zap.String("addr", srv.Addr), zap.String("mode", cfg.Server.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
	}
}

// newPublisher picks the real broker or the noop one based on config. The
// returned close function is a no-op for the noop publisher.
func newPublisher(cfg *config.Config) (mq.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return mq.NoopPublisher{}, func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, nil, err
	}
	return p, func() {
		if err := p.Close(); err != nil {
			logger.L().Warn("failed to close publisher", zap.Error(err))
		}
	}, nil
}

func registerRoutes(
	r *gin.Engine,
	librarianHandler *handler.LibrarianHandler,
	bookHandler *handler.BookHandler,
	readerHandler *handler.ReaderHandler,
	borrowHandler *handler.BorrowHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// Public account endpoints.
		librarians := v1.Group("/librarians")
		{
			librarians.POST("/register", librarianHandler.Register)
			librarians.POST("/login", librarianHandler.Login)
			librarians.POST("/logout", authMiddleware.RequireLibrarian(), librarianHandler.Logout)
		}

		// Everything else requires a librarian token.
		authorized := v1.Group("")
		authorized.Use(authMiddleware.RequireLibrarian())
		{
			books := authorized.Group("/books")
			{
				books.POST("", bookHandler.AddBook)
				books.GET("", bookHandler.ListBooks)
				books.GET("/:id", bookHandler.GetBook)
				books.PATCH("/:id", bookHandler.UpdateBook)
				books.DELETE("/:id", bookHandler.DeleteBook)
			}

			readers := authorized.Group("/readers")
			{
				readers.POST("", readerHandler.RegisterReader)
				readers.GET("", readerHandler.ListReaders)
				readers.GET("/:id", readerHandler.GetReader)
				readers.PATCH("/:id", readerHandler.UpdateReader)
				readers.DELETE("/:id", readerHandler.DeleteReader)
			}

			borrow := authorized.Group("/borrow")
			{
				borrow.POST("", borrowHandler.BorrowBook)
				borrow.POST("/return", borrowHandler.ReturnBook)
				borrow.GET("", borrowHandler.ListRecords)
			}
		}
	}
}
