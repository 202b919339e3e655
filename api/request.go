package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/skillswap/skillswap-api/store"
)

// objectIDParam parses an object id path parameter. It aborts the
// request when the id is malformed.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func pagination(c *gin.Context) (int64, int64) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

func paginationBody(page, limit, total int64) gin.H {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return gin.H{
		"current_page": page,
		"total_pages":  totalPages,
		"total":        total,
		"has_next":     page < totalPages,
		"has_prev":     page > 1,
	}
}

// createRequest is the API for sending a new skill-exchange request
func (s *Server) createRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Recipient        string `json:"recipient"`
		SkillOffered     string `json:"skill_offered"`
		SkillRequested   string `json:"skill_requested"`
		Message          string `json:"message"`
		ProposedDuration string `json:"proposed_duration"`
		ProposedSchedule string `json:"proposed_schedule"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.mongoStore.CreateRequest(requester, store.RequestParams{
		Recipient:        params.Recipient,
		SkillOffered:     params.SkillOffered,
		SkillRequested:   params.SkillRequested,
		Message:          params.Message,
		ProposedDuration: params.ProposedDuration,
		ProposedSchedule: params.ProposedSchedule,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// getRequest is the API for fetching one request; only its parties may
// see it
func (s *Server) getRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "requestID")
	if !ok {
		return
	}

	request, err := s.mongoStore.GetRequest(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// listSentRequests is the API for listing requests the actor created
func (s *Server) listSentRequests(c *gin.Context) {
	requester := c.GetString("requester")
	page, limit := pagination(c)

	requests, total, err := s.mongoStore.ListSentRequests(requester, c.Query("status"), page, limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests":   requests,
		"pagination": paginationBody(page, limit, total),
	})
}

// listReceivedRequests is the API for listing requests addressed to
// the actor
func (s *Server) listReceivedRequests(c *gin.Context) {
	requester := c.GetString("requester")
	page, limit := pagination(c)

	requests, total, err := s.mongoStore.ListReceivedRequests(requester, c.Query("status"), page, limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests":   requests,
		"pagination": paginationBody(page, limit, total),
	})
}

// requestStats is the API for the actor's request counts grouped by
// status
func (s *Server) requestStats(c *gin.Context) {
	requester := c.GetString("requester")

	counts, err := s.mongoStore.CountRequestsByStatus(requester)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"counts": counts})
}

// acceptRequest is the API for accepting a pending request. On success
// it also constructs the match realizing the accepted request.
func (s *Server) acceptRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "requestID")
	if !ok {
		return
	}

	request, err := s.mongoStore.AcceptRequest(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	match, err := s.mongoStore.CreateMatchFromRequest(request)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request": request,
		"match":   match,
	})
}

// rejectRequest is the API for rejecting a pending request
func (s *Server) rejectRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "requestID")
	if !ok {
		return
	}

	request, err := s.mongoStore.RejectRequest(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// cancelRequest is the API for the requester to withdraw a pending
// request
func (s *Server) cancelRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "requestID")
	if !ok {
		return
	}

	request, err := s.mongoStore.CancelRequest(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// completeRequest is the API for either party to mark an accepted
// request as completed
func (s *Server) completeRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "requestID")
	if !ok {
		return
	}

	request, err := s.mongoStore.CompleteRequest(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}

// deleteRequest is the API for the requester to remove a request that
// has not been accepted yet
func (s *Server) deleteRequest(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "requestID")
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteRequest(requester, id); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
