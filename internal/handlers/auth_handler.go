package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/agendavivo/agenda-api/internal/auth"
	"github.com/agendavivo/agenda-api/internal/config"
	"github.com/agendavivo/agenda-api/internal/httperr"
	"github.com/agendavivo/agenda-api/internal/models"
	"github.com/agendavivo/agenda-api/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	db         *gorm.DB
	config     *config.Config
	revocation *auth.RevocationList
	logger     *slog.Logger
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	revocation *auth.RevocationList,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		db:         db,
		config:     cfg,
		revocation: revocation,
		logger:     logger,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	EstablishmentID string `json:"estabelecimento_id" binding:"required,uuid"`
	Name            string `json:"nome" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	Role            string `json:"role" binding:"omitempty,oneof=admin gerente atendente"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	establishmentID, err := uuid.Parse(req.EstablishmentID)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Estabelecimento inválido.")
		return
	}

	var establishment models.Establishment
	if err := h.db.First(&establishment, "id = ?", establishmentID).Error; err != nil {
		httperr.BadRequest(c, "estabelecimento_not_found", "Estabelecimento não encontrado.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Email já está em uso.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro interno do servidor.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleAtendente
	}

	user := models.User{
		EstablishmentID: establishmentID,
		Name:            req.Name,
		Email:           email,
		PasswordHash:    string(hashed),
		Role:            role,
		Active:          true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		h.logger.Error("user create failed", "email", email, "error", err)
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	user.Establishment = establishment

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro interno do servidor.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuário criado com sucesso",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Preload("Establishment").
		Where("email = ? AND ativo = ?", email, true).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
			return
		}
		h.logger.Error("login lookup failed", "email", email, "error", err)
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro interno do servidor.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login realizado com sucesso",
		"user":    user,
		"token":   token,
	})
}

// Logout revoga o token apresentado até sua expiração natural.
// Passa pelo AuthMiddleware, então o bearer já foi validado.
func (h *AuthHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		httperr.Unauthorized(c, "invalid_token", "Token inválido")
		return
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		return []byte(h.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		httperr.Unauthorized(c, "invalid_token", "Token inválido")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		httperr.Unauthorized(c, "invalid_token", "Token inválido")
		return
	}

	jti, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)

	if jti != "" && h.revocation != nil {
		until := time.Unix(int64(exp), 0)
		if err := h.revocation.Revoke(c, jti, until); err != nil {
			h.logger.Error("token revocation failed", "error", err)
			httperr.Internal(c, "failed_to_logout", "Erro ao encerrar sessão.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sessão encerrada com sucesso"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":               user.ID.String(),
		"estabelecimentoId": user.EstablishmentID.String(),
		"role":              user.Role,
		"email":             user.Email,
		"nome":              user.Name,
		"jti":               uuid.NewString(),
		"exp":               time.Now().Add(tokenTTL).Unix(),
		"iat":               time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
