package handlers

import (
	"net/http"
	"strings"
	"time"

	"giraffecabs/internal/domain"
	"giraffecabs/internal/domain/models"
	"giraffecabs/internal/http/middleware"
	"giraffecabs/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler issues and consumes JWT sessions.
type AuthHandler struct {
	Users  repositories.UserRepository
	Secret []byte
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, hash, err := h.Users.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect", nil)
		return
	}

	token, err := h.signToken(user)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// POST /api/auth/register
func (h AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := h.Users.EmailExists(email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists {
		respondError(c, http.StatusConflict, "email_taken", "an account with this email already exists", nil)
		return
	}

	role := strings.TrimSpace(req.Role)
	switch role {
	case "", models.RoleCustomer:
		role = models.RoleCustomer
	case models.RoleProvider:
	default:
		respondError(c, http.StatusBadRequest, "invalid_role", "role must be customer or provider", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}

	user, err := h.Users.Create(strings.TrimSpace(req.Name), email, strings.TrimSpace(req.Phone), string(hash), role)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := h.signToken(user)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// GET /api/users/me
func (h AuthHandler) Me(c *gin.Context) {
	rc := middleware.GetSession(c)
	user, err := h.Users.GetByID(int64(rc.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h AuthHandler) signToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(h.Secret)
}
