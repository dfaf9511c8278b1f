package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"partymenu/internal/domain"
	usersvc "partymenu/internal/service/user"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email"`
}

type profileResponse struct {
	User       userResponse    `json:"user"`
	CartItems  int             `json:"cartItems"`
	CartAmount decimal.Decimal `json:"cartAmount"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Phone: u.Phone, Email: u.Email}
}

func registerHandler(svc UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.RegisterInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		u, err := svc.Register(c.Request.Context(), in)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toUserResponse(u))
	}
}

// loginHandler authenticates and, when the browser carried an anonymous
// cart session, folds that cart into the account before responding.
func loginHandler(users UserService, merges MergeService, sessions SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "email and password are required")
			return
		}
		u, access, refresh, err := users.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		if sessionID, cErr := c.Cookie(sessionCookie); cErr == nil && sessions.ValidSessionID(sessionID) {
			if err := merges.Merge(c.Request.Context(), sessionID, u.ID); err != nil {
				respondServiceError(c, err)
				return
			}
			// The anonymous cart is gone; drop the cookie.
			c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
		}

		c.JSON(http.StatusOK, loginResponse{
			User:         toUserResponse(u),
			AccessToken:  access,
			RefreshToken: refresh,
			ExpiresIn:    users.AccessTTLSeconds(),
		})
	}
}

func profileHandler(carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := userFromContext(c)
		if u == nil {
			respondError(c, http.StatusUnauthorized, "authorization required")
			return
		}
		count, amount, err := carts.Stats(c.Request.Context(), domain.AccountOwner(u.ID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profileResponse{
			User:       toUserResponse(u),
			CartItems:  count,
			CartAmount: amount,
		})
	}
}
