package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/notewyze/backend/internal/apperror"
	"github.com/notewyze/backend/internal/dto"
	"github.com/notewyze/backend/internal/middleware"
	"github.com/notewyze/backend/internal/model"
	"github.com/notewyze/backend/internal/pagination"
	"github.com/notewyze/backend/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Controller struct {
	authSvc      service.AuthService
	userSvc      service.UserService
	recordingSvc service.RecordingService
	quizSvc      service.QuizService
	researchSvc  service.ResearchService
	studySvc     service.StudyService
	gemini       service.GeminiService
	db           *gorm.DB
}

func NewController(
	authSvc service.AuthService,
	userSvc service.UserService,
	recordingSvc service.RecordingService,
	quizSvc service.QuizService,
	researchSvc service.ResearchService,
	studySvc service.StudyService,
	gemini service.GeminiService,
	db *gorm.DB,
) *Controller {
	return &Controller{
		authSvc:      authSvc,
		userSvc:      userSvc,
		recordingSvc: recordingSvc,
		quizSvc:      quizSvc,
		researchSvc:  researchSvc,
		studySvc:     studySvc,
		gemini:       gemini,
		db:           db,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", ctrl.HealthHandler)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	auth := apiV1.Group("/auth")
	auth.POST("/signup", ctrl.SignupHandler)
	auth.POST("/login", ctrl.LoginHandler)

	authed := apiV1.Group("", middleware.RequireAuth(ctrl.authSvc, ctrl.userSvc))
	{
		authed.POST("/auth/test-token", ctrl.TestTokenHandler)

		users := authed.Group("/users")
		users.GET("/me", ctrl.GetMeHandler)
		users.PUT("/me", ctrl.UpdateMeHandler)
		users.DELETE("/me", ctrl.DeleteMeHandler)
		users.GET("/me/profile", ctrl.GetProfileHandler)
		users.PUT("/me/profile", ctrl.UpdateProfileHandler)

		recordings := authed.Group("/recordings")
		recordings.POST("", ctrl.CreateRecordingHandler)
		recordings.GET("", ctrl.ListRecordingsHandler)
		recordings.GET("/:id", ctrl.GetRecordingHandler)
		recordings.PUT("/:id", ctrl.UpdateRecordingHandler)
		recordings.DELETE("/:id", ctrl.DeleteRecordingHandler)

		quizzes := authed.Group("/quizzes")
		quizzes.GET("", ctrl.ListQuizzesHandler)
		quizzes.POST("/generate/:recording_id", ctrl.GenerateQuizHandler)
		quizzes.GET("/:id", ctrl.GetQuizHandler)
		quizzes.POST("/:id/submit", ctrl.SubmitQuizHandler)
		quizzes.DELETE("/:id", ctrl.DeleteQuizHandler)

		research := authed.Group("/research")
		research.GET("", ctrl.ListResearchHandler)
		research.POST("", ctrl.CreateResearchHandler)
		research.POST("/generate/:recording_id", ctrl.GenerateResearchHandler)
		research.GET("/papers", ctrl.ListSavedPapersHandler)
		research.POST("/papers", ctrl.SavePaperHandler)
		research.GET("/papers/:id", ctrl.GetSavedPaperHandler)
		research.PUT("/papers/:id", ctrl.UpdateSavedPaperHandler)
		research.DELETE("/papers/:id", ctrl.DeleteSavedPaperHandler)
		research.GET("/:id", ctrl.GetResearchHandler)
		research.PUT("/:id", ctrl.UpdateResearchHandler)
		research.DELETE("/:id", ctrl.DeleteResearchHandler)

		study := authed.Group("/study")
		study.POST("/sessions", ctrl.StartSessionHandler)
		study.GET("/sessions", ctrl.ListSessionsHandler)
		study.GET("/sessions/recording/:recording_id", ctrl.ListSessionsByRecordingHandler)
		study.GET("/sessions/:id", ctrl.GetSessionHandler)
		study.PUT("/sessions/:id", ctrl.UpdateSessionHandler)
		study.DELETE("/sessions/:id", ctrl.DeleteSessionHandler)
		study.GET("/stats/overall", ctrl.StudyStatsHandler)
		study.GET("/stats/recording/:recording_id", ctrl.RecordingStudyStatsHandler)
	}
}

// respond writes the success envelope.
func respond(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, dto.NewResponse(data, message))
}

// respondError maps an application error to its status code and envelope.
// Unexpected errors are logged with their cause and masked for the client.
func respondError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.JSON(status, dto.ErrorResponse{Detail: apperror.DetailOf(err), Code: apperror.CodeOf(err)})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: err.Error(), Code: "VALIDATION_ERROR"})
}

func currentUser(c *gin.Context) *model.User {
	return c.MustGet(middleware.UserKey).(*model.User)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "Invalid " + name + " format", Code: "VALIDATION_ERROR"})
		return 0, false
	}
	return uint(id), true
}

// recordingFilter reads the optional recording_id query parameter used by
// list endpoints. A malformed value gets a validation error, not a silent
// unfiltered listing.
func recordingFilter(c *gin.Context) (*uint, bool) {
	raw := c.Query("recording_id")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "Invalid recording_id format", Code: "VALIDATION_ERROR"})
		return nil, false
	}
	value := uint(id)
	return &value, true
}

func pageParams(c *gin.Context) pagination.Params {
	return pagination.FromQuery(c)
}
