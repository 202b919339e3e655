package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectIDFromBody parses an object id carried in a request body. It
// aborts the request when the id is malformed.
func objectIDFromBody(c *gin.Context, hexID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return primitive.NilObjectID, err
	}
	return id, nil
}

// submitRating is the API for rating the counterparty of a completed
// request
func (s *Server) submitRating(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		RequestID string `json:"request_id"`
		Rating    int    `json:"rating"`
		Feedback  string `json:"feedback"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	requestID, err := objectIDFromBody(c, params.RequestID)
	if err != nil {
		return
	}

	rating, err := s.mongoStore.SubmitRating(requester, requestID, params.Rating, params.Feedback)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"rating": rating})
}

// updateRating is the API for the rater to amend a rating within the
// edit window
func (s *Server) updateRating(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "ratingID")
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

	rating, err := s.mongoStore.UpdateRating(requester, id, params.Rating, params.Feedback)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

// deleteRating is the API for the rater to withdraw a rating within
// the edit window
func (s *Server) deleteRating(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "ratingID")
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteRating(requester, id); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// listRatingsForUser is the API for a user's received ratings together
// with their aggregate reputation
func (s *Server) listRatingsForUser(c *gin.Context) {
	userID := c.Param("userID")
	page, limit := pagination(c)

	profile, err := s.mongoStore.GetProfile(userID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	ratings, total, err := s.mongoStore.ListRatingsForUser(userID, page, limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings":    ratings,
		"pagination": paginationBody(page, limit, total),
		"user_stats": gin.H{
			"average_rating": profile.AverageRating,
			"total_ratings":  profile.TotalRatings,
		},
	})
}

// listRatingsGiven is the API for ratings the actor has submitted
func (s *Server) listRatingsGiven(c *gin.Context) {
	requester := c.GetString("requester")
	page, limit := pagination(c)

	ratings, total, err := s.mongoStore.ListRatingsGiven(requester, page, limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings":    ratings,
		"pagination": paginationBody(page, limit, total),
	})
}

// requestRatings is the API for both parties' ratings of one request
func (s *Server) requestRatings(c *gin.Context) {
	requester := c.GetString("requester")

	id, ok := objectIDParam(c, "requestID")
	if !ok {
		return
	}

	ratings, err := s.mongoStore.GetRequestRatings(requester, id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}
