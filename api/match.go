package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/store"
)

// listMatches is the API for listing the actor's matches, most
// recently active first
func (s *Server) listMatches(c *gin.Context) {
	requester := c.GetString("requester")

	matches, err := s.mongoStore.ListMatches(requester, c.DefaultQuery("status", "all"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// activeMatchCount is the API for counting the actor's active matches
func (s *Server) activeMatchCount(c *gin.Context) {
	requester := c.GetString("requester")

	count, err := s.mongoStore.CountActiveMatches(requester)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// getMatch is the API for fetching one match; participants only
func (s *Server) getMatch(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "matchID")
	if !ok {
		return
	}

	match, err := s.mongoStore.GetMatch(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// otherParticipant is the API for fetching the counterparty entry of a
// match
func (s *Server) otherParticipant(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "matchID")
	if !ok {
		return
	}

	match, err := s.mongoStore.GetMatch(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"participant": match.OtherParticipant(requester)})
}

// addSession is the API for scheduling a new session within an active
// match
func (s *Server) addSession(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "matchID")
	if !ok {
		return
	}

	var params struct {
		Date     time.Time `json:"date"`
		Topic    string    `json:"topic"`
		Notes    string    `json:"notes"`
		Duration int       `json:"duration"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	match, err := s.mongoStore.AddSession(requester, id, store.SessionParams{
		Date:     params.Date,
		Topic:    params.Topic,
		Notes:    params.Notes,
		Duration: params.Duration,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// completeSession is the API for marking one session of an active
// match as completed
func (s *Server) completeSession(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "matchID")
	if !ok {
		return
	}

	match, err := s.mongoStore.CompleteSession(requester, id, c.Param("sessionID"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// completeMatch is the API for a participant to conclude an active
// match
func (s *Server) completeMatch(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "matchID")
	if !ok {
		return
	}

	match, err := s.mongoStore.MarkMatchComplete(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// cancelMatch is the API for cancelling an active or paused match
func (s *Server) cancelMatch(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "matchID")
	if !ok {
		return
	}

	match, err := s.mongoStore.CancelMatch(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// pauseMatch is the API for putting an active match on hold
func (s *Server) pauseMatch(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "matchID")
	if !ok {
		return
	}

	match, err := s.mongoStore.PauseMatch(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// resumeMatch is the API for reactivating a paused match
func (s *Server) resumeMatch(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "matchID")
	if !ok {
		return
	}

	match, err := s.mongoStore.ResumeMatch(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}

// rateMatch is the API for a participant's one-time feedback on a
// completed match
func (s *Server) rateMatch(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "matchID")
	if !ok {
		return
	}

	var params struct {
		Rating   int    `json:"rating"`
		Feedback string `json:"feedback"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	match, err := s.mongoStore.SetParticipantFeedback(requester, id, params.Rating, params.Feedback)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"match": match})
}
