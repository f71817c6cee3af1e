package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapterRepo "github.com/itsmardochee/Planit-sub003/internal/adapter/repository"
	"github.com/itsmardochee/Planit-sub003/internal/config"
	"github.com/itsmardochee/Planit-sub003/internal/domain/authz"
	"github.com/itsmardochee/Planit-sub003/internal/infrastructure/cache"
	"github.com/itsmardochee/Planit-sub003/internal/infrastructure/database"
	httpServer "github.com/itsmardochee/Planit-sub003/internal/infrastructure/http"
	"github.com/itsmardochee/Planit-sub003/internal/infrastructure/storage"
	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/itsmardochee/Planit-sub003/internal/utils"
	"github.com/itsmardochee/Planit-sub003/pkg/events"
	"github.com/itsmardochee/Planit-sub003/pkg/logger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.Service.Environment != "production",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, disconnect, err := database.NewMongoDatabase(cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := disconnect(ctx); err != nil {
			zapLogger.Error("Failed to disconnect from mongodb", zap.Error(err))
		}
	}()

	redisClient, err := cache.NewRedisClient(cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	s3Client, err := storage.NewS3Client(cfg.Storage, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to initialize s3 client", zap.Error(err))
	}

	workspaceRepo := adapterRepo.NewWorkspaceRepository(db, zapLogger)
	memberRepo := adapterRepo.NewMemberRepository(db, zapLogger)
	boardRepo := adapterRepo.NewBoardRepository(db, zapLogger)
	listRepo := adapterRepo.NewListRepository(db, zapLogger)
	cardRepo := adapterRepo.NewCardRepository(db, zapLogger)
	commentRepo := adapterRepo.NewCommentRepository(db, zapLogger)
	labelRepo := adapterRepo.NewLabelRepository(db, zapLogger)
	attachmentRepo := adapterRepo.NewAttachmentRepository(db, zapLogger)
	activityRepo := adapterRepo.NewActivityRepository(db, zapLogger)
	cacheRepo := adapterRepo.NewRedisCacheRepository(redisClient, zapLogger)
	fileRepo := adapterRepo.NewS3FileRepository(s3Client, cfg.Storage.Bucket, zapLogger)

	eventBroker := events.NewRedisBroker(redisClient)

	ids := utils.NewUniqueIDService()
	mailer := utils.NewEmailService(
		cfg.Email.Host, cfg.Email.Port,
		cfg.Email.Username, cfg.Email.Password, cfg.Email.FromName,
	)

	accessService := usecase.NewAccessService(memberRepo, authz.NewDefaultEvaluator(), zapLogger)
	activityService := usecase.NewActivityService(activityRepo, accessService, ids, eventBroker, zapLogger)
	workspaceService := usecase.NewWorkspaceService(
		workspaceRepo, memberRepo, boardRepo, listRepo, cardRepo,
		labelRepo, commentRepo, attachmentRepo, fileRepo,
		accessService, activityService, ids, zapLogger,
	)
	memberService := usecase.NewMemberService(
		memberRepo, workspaceRepo, accessService, activityService,
		mailer, ids, cfg.Email.From, cfg.Service.ClientURL, zapLogger,
	)
	boardService := usecase.NewBoardService(
		boardRepo, listRepo, cardRepo, labelRepo,
		commentRepo, attachmentRepo, fileRepo, cacheRepo,
		accessService, activityService, ids, cfg.Redis.SnapshotTTL, zapLogger,
	)
	listService := usecase.NewListService(
		listRepo, boardRepo, boardService,
		accessService, activityService, ids, zapLogger,
	)
	cardService := usecase.NewCardService(
		cardRepo, listRepo, boardRepo,
		commentRepo, attachmentRepo, fileRepo, boardService,
		accessService, activityService, ids, zapLogger,
	)
	commentService := usecase.NewCommentService(
		commentRepo, cardRepo, boardRepo,
		accessService, activityService, ids, zapLogger,
	)
	labelService := usecase.NewLabelService(
		labelRepo, boardRepo, boardService,
		accessService, activityService, ids, zapLogger,
	)
	attachmentService := usecase.NewAttachmentService(
		attachmentRepo, fileRepo, cardRepo, boardRepo,
		accessService, activityService, ids, zapLogger,
	)

	server := httpServer.NewServer(cfg, zapLogger, &httpServer.Services{
		Workspace:  workspaceService,
		Member:     memberService,
		Board:      boardService,
		List:       listService,
		Card:       cardService,
		Comment:    commentService,
		Label:      labelService,
		Attachment: attachmentService,
		Activity:   activityService,
	})

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start http server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zapLogger.Error("Failed to shutdown http server", zap.Error(err))
	}

	zapLogger.Info("Server shut down successfully")
}
