package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/schema"
)

// accountRegister is the API for registering a profile for the
// authenticated account
func (s *Server) accountRegister(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Name string `json:"name"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	profile, err := s.mongoStore.CreateProfile(requester, params.Name)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// accountDetail is the API for the authenticated account's profile
func (s *Server) accountDetail(c *gin.Context) {
	profile := c.MustGet("profile").(*schema.Profile)

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// accountUpdateSkills is the API for replacing the account's skill
// lists
func (s *Server) accountUpdateSkills(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		SkillsOffered []schema.Skill `json:"skills_offered"`
		SkillsWanted  []schema.Skill `json:"skills_wanted"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.mongoStore.UpdateProfileSkills(requester, params.SkillsOffered, params.SkillsWanted); err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
