package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"construction-dashboard-api/internal/cache"
	"construction-dashboard-api/internal/client"
	"construction-dashboard-api/internal/config"
	"construction-dashboard-api/internal/handler"
	"construction-dashboard-api/internal/metrics"
	"construction-dashboard-api/internal/middleware"
	"construction-dashboard-api/internal/repository"
	"construction-dashboard-api/internal/service"
)

// Setup wires the repositories, services and handlers into a gin engine
func Setup(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	s3Client client.S3ClientInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(m))

	// Repositories
	projectRepo := repository.NewProjectRepository(db)
	phaseRepo := repository.NewPhaseRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	milestoneRepo := repository.NewMilestoneRepository(db)
	eventRepo := repository.NewEventRepository(db)
	fileRepo := repository.NewFileRepository(db)
	dailyNoteRepo := repository.NewDailyNoteRepository(db)

	// Services
	dailyCache := cache.NewDailyCache(redisClient, logger, m)
	projectService := service.NewProjectService(projectRepo, m, logger)
	scheduleService := service.NewScheduleService(projectRepo, phaseRepo, activityRepo, logger)
	activityService := service.NewActivityService(activityRepo, projectRepo, phaseRepo, m, logger)
	dailyService := service.NewDailyService(activityRepo, dailyNoteRepo, projectRepo, activityService, dailyCache, logger)
	milestoneService := service.NewMilestoneService(milestoneRepo, projectRepo, logger)
	calendarService := service.NewCalendarService(eventRepo, logger)
	fileService := service.NewFileService(fileRepo, s3Client, m, logger)

	// Handlers
	projectHandler := handler.NewProjectHandler(projectService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	activityHandler := handler.NewActivityHandler(activityService, fileService)
	dailyHandler := handler.NewDailyHandler(dailyService)
	milestoneHandler := handler.NewMilestoneHandler(milestoneService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	fileHandler := handler.NewFileHandler(fileService)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Probes and metrics (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.Server.BasePath)
	api.Use(middleware.Auth(cfg.JWT.Secret))
	{
		// Read endpoints, available to every role. Client scoping happens in
		// the service layer.
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:projectId", projectHandler.GetProject)
		api.GET("/projects/:projectId/schedule", scheduleHandler.GetSchedule)
		api.GET("/projects/:projectId/schedule/grouped", scheduleHandler.GetGroupedSchedule)
		api.GET("/projects/:projectId/milestones", milestoneHandler.GetMilestones)
		api.GET("/site-schedule/daily", dailyHandler.GetDaily)
		api.GET("/calendar/events", calendarHandler.GetEvents)
		api.GET("/files", fileHandler.ListFiles)
		api.GET("/files/:fileId/download", fileHandler.DownloadFile)

		// Status is a single-field patch open to every authenticated role
		api.PATCH("/activities/:activityId/status", activityHandler.UpdateActivityStatus)

		// Write endpoints, admin and manager only
		editors := api.Group("")
		editors.Use(middleware.RequireEditor())
		{
			editors.POST("/projects", projectHandler.CreateProject)
			editors.PUT("/projects/:projectId", projectHandler.UpdateProject)
			editors.PATCH("/projects/:projectId/status", projectHandler.UpdateProjectStatus)
			editors.DELETE("/projects/:projectId", projectHandler.ArchiveProject)

			editors.POST("/projects/:projectId/schedule", scheduleHandler.CreatePhase)
			editors.PUT("/projects/:projectId/schedule/:phaseId", scheduleHandler.UpdatePhase)
			editors.DELETE("/projects/:projectId/schedule/:phaseId", scheduleHandler.DeletePhase)

			editors.GET("/site-schedule/activities", activityHandler.ListActivities)
			editors.POST("/projects/:projectId/activities", activityHandler.CreateActivity)
			editors.POST("/projects/:projectId/activities/images", activityHandler.UploadImages)
			editors.PUT("/activities/:activityId", activityHandler.UpdateActivity)
			editors.DELETE("/activities/:activityId", activityHandler.DeleteActivity)

			editors.POST("/site-schedule/daily", dailyHandler.AddActivity)
			editors.PUT("/site-schedule/daily", dailyHandler.UpdateActivity)
			editors.DELETE("/site-schedule/daily", dailyHandler.DeleteDaily)
			editors.PUT("/site-schedule/daily/note", dailyHandler.UpsertNote)

			editors.POST("/projects/:projectId/milestones", milestoneHandler.CreateMilestone)
			editors.PUT("/milestones/:milestoneId", milestoneHandler.UpdateMilestone)
			editors.DELETE("/milestones/:milestoneId", milestoneHandler.DeleteMilestone)

			editors.POST("/calendar/events", calendarHandler.CreateEvent)
			editors.PUT("/calendar/events/:eventId", calendarHandler.UpdateEvent)
			editors.DELETE("/calendar/events/:eventId", calendarHandler.DeleteEvent)

			editors.POST("/files", fileHandler.UploadFile)
			editors.PUT("/files/:fileId", fileHandler.UpdateFile)
			editors.DELETE("/files/:fileId", fileHandler.DeleteFile)
		}
	}

	return r
}
