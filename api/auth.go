package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"net/http"
	"strconv"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	jwtrequest "github.com/dgrijalva/jwt-go/request"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/skillswap/skillswap-api/store"
)

// requestJWT generates a JWT for a verified account. The caller proves
// control of the account by presenting an HMAC of the current timestamp
// keyed with the account's auth secret, handed out at registration by
// the identity collaborator.
func (s *Server) requestJWT(c *gin.Context) {
	var req struct {
		Timestamp string `json:"timestamp"`
		Signature string `json:"signature"`
		Requester string `json:"requester"`
	}

	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Message: err.Error(),
		}, err)
		return
	}

	sig, err := hex.DecodeString(req.Signature)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidParameters)
		return
	}

	mac := hmac.New(sha256.New, []byte(viper.GetString("auth.secret")))
	mac.Write([]byte(req.Requester + req.Timestamp))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidSignature)
		return
	}

	t, err := strconv.ParseInt(req.Timestamp, 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidParameters)
		return
	}

	created := time.Unix(0, t*1000000)
	now := time.Now()
	duration := now.Sub(created)
	if math.Abs(duration.Minutes()) > float64(5) {
		abortWithEncoding(c, http.StatusUnauthorized, errorRequestTimeTooSkewed)
		return
	}

	exp := now.Add(time.Duration(viper.GetInt("jwt.expire")) * time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.StandardClaims{
		Subject:   req.Requester,
		ExpiresAt: exp.Unix(),
		IssuedAt:  now.Unix(),
		Id:        uuid.New().String(),
		Audience:  "write",
	})

	tokenString, err := token.SignedString(s.jwtPrivateKey)
	if err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jwt_token":  tokenString,
		"expire_in":  exp.Unix() - now.Unix(),
		"token_type": "Bearer",
	})
}

// authMiddleware resolves the verified actor id from the bearer token
// and stores it under "requester" for every downstream handler. The
// engine itself never authenticates; it only authorizes the supplied
// id against stored party ids.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := jwtrequest.ParseFromRequest(
			c.Request,
			jwtrequest.OAuth2Extractor,
			func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return &s.jwtPrivateKey.PublicKey, nil
			},
			jwtrequest.WithClaims(&jwt.StandardClaims{}),
		)
		if err != nil {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
			return
		}

		claims, ok := token.Claims.(*jwt.StandardClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken)
			return
		}

		c.Set("requester", claims.Subject)
		c.Next()
	}
}

// recognizeAccountMiddleware is a middleware to make sure the API user
// has already registered a profile in our system. It attaches a
// "profile" key in gin's context.
func (s *Server) recognizeAccountMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requester := c.GetString("requester")

		profile, err := s.mongoStore.GetProfile(requester)
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusUnauthorized, errorProfileNotRegistered, err)
			return
		} else if shouldInterupt(err, c) {
			return
		}

		c.Set("profile", profile)
		c.Next()
	}
}
