package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/skillswap/skillswap-api/logmodule"
	"github.com/skillswap/skillswap-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Store
	mongoStore store.MongoStore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(mongoStore store.MongoStore, jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		mongoStore:    mongoStore,
		jwtPrivateKey: jwtKey,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
		accountRoute.GET("/me", s.recognizeAccountMiddleware(), s.accountDetail)
		accountRoute.PATCH("/me", s.recognizeAccountMiddleware(), s.accountUpdateSkills)
	}

	requestRoute := apiRoute.Group("/requests")
	requestRoute.Use(s.recognizeAccountMiddleware())
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("/sent", s.listSentRequests)
		requestRoute.GET("/received", s.listReceivedRequests)
		requestRoute.GET("/stats", s.requestStats)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PUT("/:requestID/accept", s.acceptRequest)
		requestRoute.PUT("/:requestID/reject", s.rejectRequest)
		requestRoute.PUT("/:requestID/cancel", s.cancelRequest)
		requestRoute.PUT("/:requestID/complete", s.completeRequest)
		requestRoute.DELETE("/:requestID", s.deleteRequest)
	}

	matchRoute := apiRoute.Group("/matches")
	matchRoute.Use(s.recognizeAccountMiddleware())
	{
		matchRoute.GET("", s.listMatches)
		matchRoute.GET("/active/count", s.activeMatchCount)
		matchRoute.GET("/:matchID", s.getMatch)
		matchRoute.GET("/:matchID/other-participant", s.otherParticipant)
		matchRoute.POST("/:matchID/sessions", s.addSession)
		matchRoute.PUT("/:matchID/sessions/:sessionID/complete", s.completeSession)
		matchRoute.PUT("/:matchID/complete", s.completeMatch)
		matchRoute.PUT("/:matchID/cancel", s.cancelMatch)
		matchRoute.PUT("/:matchID/pause", s.pauseMatch)
		matchRoute.PUT("/:matchID/resume", s.resumeMatch)
		matchRoute.PUT("/:matchID/rating", s.rateMatch)
	}

	ratingRoute := apiRoute.Group("/ratings")
	ratingRoute.Use(s.recognizeAccountMiddleware())
	{
		ratingRoute.POST("", s.submitRating)
		ratingRoute.GET("/given", s.listRatingsGiven)
		ratingRoute.GET("/user/:userID", s.listRatingsForUser)
		ratingRoute.GET("/request/:requestID", s.requestRatings)
		ratingRoute.PUT("/:ratingID", s.updateRating)
		ratingRoute.DELETE("/:ratingID", s.deleteRating)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

// abortWithDomainError translates store errors into HTTP responses.
// Unknown errors are treated as infrastructure failures.
func abortWithDomainError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *store.InvalidTransitionError:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidTransition(e), err)
		return
	case *store.ValidationError:
		abortWithEncoding(c, http.StatusBadRequest, errorValidation(e), err)
		return
	}

	switch err {
	case store.ErrRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
	case store.ErrMatchNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorMatchNotFound, err)
	case store.ErrRatingNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRatingNotFound, err)
	case store.ErrProfileNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound, err)
	case store.ErrSessionNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorSessionNotFound, err)
	case store.ErrForbidden:
		abortWithEncoding(c, http.StatusForbidden, errorForbidden, err)
	case store.ErrEditWindowExpired:
		abortWithEncoding(c, http.StatusForbidden, errorEditWindowExpired, err)
	case store.ErrConflictRace:
		abortWithEncoding(c, http.StatusConflict, errorConflictRace, err)
	case store.ErrRatingExists:
		abortWithEncoding(c, http.StatusConflict, errorRatingExists, err)
	case store.ErrMatchExists:
		abortWithEncoding(c, http.StatusConflict, errorMatchExists, err)
	case store.ErrFeedbackExists:
		abortWithEncoding(c, http.StatusConflict, errorFeedbackExists, err)
	case store.ErrMatchNotCompleted:
		abortWithEncoding(c, http.StatusBadRequest, errorMatchNotCompleted, err)
	case store.ErrProfileTaken:
		abortWithEncoding(c, http.StatusForbidden, errorProfileTaken, err)
	default:
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
