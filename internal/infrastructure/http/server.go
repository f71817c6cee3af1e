package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	handlers "github.com/itsmardochee/Planit-sub003/internal/adapter/handler/http"
	"github.com/itsmardochee/Planit-sub003/internal/config"
	"github.com/itsmardochee/Planit-sub003/internal/middleware/auth"
	"github.com/itsmardochee/Planit-sub003/internal/usecase"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Services bundles the usecase services the HTTP layer exposes.
type Services struct {
	Workspace  *usecase.WorkspaceService
	Member     *usecase.MemberService
	Board      *usecase.BoardService
	List       *usecase.ListService
	Card       *usecase.CardService
	Comment    *usecase.CommentService
	Label      *usecase.LabelService
	Attachment *usecase.AttachmentService
	Activity   *usecase.ActivityService
}

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	services *Services
}

// requestValidator adapts go-playground/validator to echo's Validator
// interface.
type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(cfg *config.Config, logger *zap.Logger, services *Services) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE},
	}))

	return &Server{
		config:   cfg,
		logger:   logger,
		echo:     e,
		services: services,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("starting http server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	workspaceHandler := handlers.NewWorkspaceHandler(s.logger, s.services.Workspace)
	memberHandler := handlers.NewMemberHandler(s.logger, s.services.Member)
	boardHandler := handlers.NewBoardHandler(s.logger, s.services.Board)
	listHandler := handlers.NewListHandler(s.logger, s.services.List)
	cardHandler := handlers.NewCardHandler(s.logger, s.services.Card)
	commentHandler := handlers.NewCommentHandler(s.logger, s.services.Comment)
	labelHandler := handlers.NewLabelHandler(s.logger, s.services.Label)
	attachmentHandler := handlers.NewAttachmentHandler(s.logger, s.services.Attachment)
	activityHandler := handlers.NewActivityHandler(s.logger, s.services.Activity)

	jwtConfig := auth.JWTConfig{
		Secret:    s.config.JWT.Secret,
		Logger:    s.logger,
		SkipPaths: []string{"/health"},
	}

	api := s.echo.Group("/api/v1", auth.JWTMiddleware(jwtConfig))

	workspaces := api.Group("/workspaces")
	workspaces.POST("", workspaceHandler.Create)
	workspaces.GET("", workspaceHandler.List)
	workspaces.GET("/:workspaceID", workspaceHandler.Get)
	workspaces.PATCH("/:workspaceID", workspaceHandler.Update)
	workspaces.DELETE("/:workspaceID", workspaceHandler.Delete)

	workspaces.GET("/:workspaceID/members", memberHandler.List)
	workspaces.POST("/:workspaceID/members", memberHandler.Invite)
	workspaces.POST("/:workspaceID/members/accept", memberHandler.AcceptInvite)
	workspaces.PATCH("/:workspaceID/members/:userID/role", memberHandler.ChangeRole)
	workspaces.DELETE("/:workspaceID/members/:userID", memberHandler.Remove)

	workspaces.GET("/:workspaceID/activity", activityHandler.WorkspaceFeed)
	workspaces.GET("/:workspaceID/boards/:boardID/activity", activityHandler.BoardFeed)

	workspaces.POST("/:workspaceID/boards", boardHandler.Create)
	workspaces.GET("/:workspaceID/boards", boardHandler.List)

	boards := api.Group("/boards")
	boards.GET("/:boardID", boardHandler.Get)
	boards.PATCH("/:boardID", boardHandler.Update)
	boards.DELETE("/:boardID", boardHandler.Delete)
	boards.POST("/:boardID/lists", listHandler.Create)
	boards.GET("/:boardID/labels", labelHandler.List)
	boards.POST("/:boardID/labels", labelHandler.Create)

	lists := api.Group("/lists")
	lists.PATCH("/:listID", listHandler.Rename)
	lists.PATCH("/:listID/archive", listHandler.Archive)
	lists.PATCH("/:listID/move", listHandler.Move)
	lists.POST("/:listID/cards", cardHandler.Create)

	cards := api.Group("/cards")
	cards.GET("/:cardID", cardHandler.Get)
	cards.PATCH("/:cardID", cardHandler.Update)
	cards.PATCH("/:cardID/move", cardHandler.Move)
	cards.DELETE("/:cardID", cardHandler.Delete)
	cards.GET("/:cardID/comments", commentHandler.List)
	cards.POST("/:cardID/comments", commentHandler.Add)
	cards.GET("/:cardID/attachments", attachmentHandler.List)
	cards.POST("/:cardID/attachments", attachmentHandler.Upload)

	comments := api.Group("/comments")
	comments.PATCH("/:commentID", commentHandler.Edit)
	comments.DELETE("/:commentID", commentHandler.Delete)

	labels := api.Group("/labels")
	labels.PATCH("/:labelID", labelHandler.Update)
	labels.DELETE("/:labelID", labelHandler.Delete)

	attachments := api.Group("/attachments")
	attachments.GET("/:attachmentID/download", attachmentHandler.Download)
	attachments.DELETE("/:attachmentID", attachmentHandler.Delete)
}
