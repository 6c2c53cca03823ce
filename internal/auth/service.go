package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"vehicle-maintenance-backend/internal/database/models"
	apperrors "vehicle-maintenance-backend/internal/errors"
	"vehicle-maintenance-backend/internal/logger"
	"vehicle-maintenance-backend/internal/notification"
	"vehicle-maintenance-backend/internal/repository"
	"vehicle-maintenance-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	stateTTL       = 10 * time.Minute
	defaultCountry = "Brasil"
	// gorm treats -1 as "no limit/offset"
	unbounded = -1
)

// AuthService provides authentication functionality
type AuthService struct {
	config       *AuthConfig
	users        repository.UserRepositoryInterface
	vehicles     repository.VehicleRepositoryInterface
	deviceTokens repository.DeviceTokenRepositoryInterface
	notifier     notification.Notifier
	validator    *validator.Validate
	ssoClients   map[string]*SSOClient
	states       map[string]oauthState
	stateMutex   sync.Mutex
	bcryptCost   int
	now          func() time.Time
}

type oauthState struct {
	provider  string
	expiresAt time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID       `json:"user_id" example:"6f1c1d2e-8d1a-4c41-9c1e-2f3a4b5c6d7e"`
	Email                string          `json:"email" example:"maria@example.com"`
	UserType             models.UserType `json:"user_type" example:"user"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Name                 string `json:"name" validate:"required,max=255" example:"Maria Souza"`
	Email                string `json:"email" validate:"required,email,max=255" example:"maria@example.com"`
	Password             string `json:"password" validate:"required,min=8" example:"segredo123"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password" example:"segredo123"`
	UserType             string `json:"user_type" validate:"omitempty,user_type" example:"user"`
	Phone                string `json:"phone" validate:"max=20" example:"11912345678"`
	CEP                  string `json:"cep" validate:"max=9" example:"01310-100"`
	Address              string `json:"address" validate:"max=255" example:"Av. Paulista"`
	Number               string `json:"number" validate:"max=20" example:"1000"`
	Complement           string `json:"complement" validate:"max=100"`
	Neighborhood         string `json:"neighborhood" validate:"max=100" example:"Bela Vista"`
	City                 string `json:"city" validate:"max=100" example:"São Paulo"`
	State                string `json:"state" validate:"omitempty,len=2" example:"SP"`
	Country              string `json:"country" validate:"max=100" example:"Brasil"`
}

// normalized returns a copy with surrounding blanks removed and the email lowercased.
// Passwords are left untouched.
func (r *RegisterRequest) normalized() *RegisterRequest {
	out := *r
	out.Name = strings.TrimSpace(r.Name)
	out.Email = normalizeEmail(r.Email)
	out.UserType = strings.TrimSpace(r.UserType)
	out.Phone = strings.TrimSpace(r.Phone)
	out.CEP = strings.TrimSpace(r.CEP)
	out.Address = strings.TrimSpace(r.Address)
	out.Number = strings.TrimSpace(r.Number)
	out.Complement = strings.TrimSpace(r.Complement)
	out.Neighborhood = strings.TrimSpace(r.Neighborhood)
	out.City = strings.TrimSpace(r.City)
	out.State = strings.TrimSpace(r.State)
	out.Country = strings.TrimSpace(r.Country)
	return &out
}

// LoginRequest represents the request body for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"maria@example.com"`
	Password string `json:"password" validate:"required" example:"segredo123"`
}

// AuthResponse is returned by register, login and the SSO callback
type AuthResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType string       `json:"token_type" example:"Bearer"`
	ExpiresIn int64        `json:"expires_in" example:"86400"`
}

// MeResponse is the authenticated user with the vehicles they currently own
type MeResponse struct {
	*models.User
	CurrentVehicles []models.Vehicle `json:"current_vehicles"`
}

// SSORedirectResponse carries the provider consent URL
type SSORedirectResponse struct {
	RedirectURL string `json:"redirect_url" example:"https://accounts.google.com/o/oauth2/auth?client_id=..."`
}

// NewAuthService creates a new authentication service
func NewAuthService(
	config *AuthConfig,
	users repository.UserRepositoryInterface,
	vehicles repository.VehicleRepositoryInterface,
	deviceTokens repository.DeviceTokenRepositoryInterface,
	notifier notification.Notifier,
	validator *validator.Validate,
) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	ssoClients := make(map[string]*SSOClient)
	for name := range config.Providers {
		providerConfig := config.Providers[name]
		ssoClients[name] = NewSSOClient(name, &providerConfig)
	}

	return &AuthService{
		config:       config,
		users:        users,
		vehicles:     vehicles,
		deviceTokens: deviceTokens,
		notifier:     notifier,
		validator:    validator,
		ssoClients:   ssoClients,
		states:       make(map[string]oauthState),
		bcryptCost:   bcrypt.DefaultCost,
		now:          time.Now,
	}, nil
}

// Register creates an account and signs the user in
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	req = req.normalized()
	if err := service.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	email := req.Email
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, apperrors.NewValidationError("email", "has already been taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewOperationError("creation", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewOperationError("creation", err)
	}

	userType := models.UserType(req.UserType)
	if userType == "" {
		userType = models.UserTypeUser
	}
	country := req.Country
	if country == "" {
		country = defaultCountry
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		Password:     string(hash),
		UserType:     userType,
		Phone:        req.Phone,
		CEP:          digitsOnly(req.CEP),
		Address:      req.Address,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        strings.ToUpper(req.State),
		Country:      country,
	}

	if err := s.users.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, apperrors.NewOperationError("creation", err)
	}

	logger.WithContext(ctx).WithField("user_id", user.ID).Info("User registered")
	s.notifyWelcome(ctx, user, true)

	return s.issue(user)
}

// Login verifies email and password and signs the user in
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	normalized := *req
	normalized.Email = normalizeEmail(req.Email)
	req = &normalized
	if err := service.ValidateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.notifyWelcome(ctx, user, false)

	return s.issue(user)
}

// Me returns the user behind the token with their current vehicles
func (s *AuthService) Me(userID uuid.UUID) (*MeResponse, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	vehicles, _, err := s.vehicles.GetByOwner(userID, unbounded, unbounded)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	return &MeResponse{User: user, CurrentVehicles: vehicles}, nil
}

// Logout handles user logout (stateless JWT tokens don't require server-side logout)
func (s *AuthService) Logout() error {
	return nil
}

// SSORedirect returns the consent URL of a configured provider
func (s *AuthService) SSORedirect(provider string) (*SSORedirectResponse, error) {
	client, ok := s.ssoClients[provider]
	if !ok {
		return nil, apperrors.ErrSSONotConfigured
	}

	state, err := s.GenerateState(provider)
	if err != nil {
		return nil, err
	}

	return &SSORedirectResponse{RedirectURL: client.AuthCodeURL(state)}, nil
}

// SSOCallback completes the authorization-code flow and signs the user in,
// binding the provider account to an existing user by email or creating one
func (s *AuthService) SSOCallback(ctx context.Context, provider, code, state string) (*AuthResponse, error) {
	client, ok := s.ssoClients[provider]
	if !ok {
		return nil, apperrors.ErrSSONotConfigured
	}
	if !s.consumeState(provider, state) {
		return nil, apperrors.ErrInvalidOAuthState
	}
	if code == "" {
		return nil, apperrors.NewValidationError("code", "is required")
	}

	profile, err := client.Exchange(ctx, code)
	if err != nil {
		logger.WithContext(ctx).WithField("provider", provider).Warnf("SSO exchange failed: %v", err)
		return nil, apperrors.NewAuthenticationError(fmt.Sprintf("error authenticating with %s", provider))
	}

	user, created, err := s.findOrCreateSSOUser(provider, profile)
	if err != nil {
		return nil, err
	}

	s.notifyWelcome(ctx, user, created)

	return s.issue(user)
}

func (s *AuthService) findOrCreateSSOUser(provider string, profile *UserProfile) (*models.User, bool, error) {
	user, err := s.users.GetByProvider(provider, profile.ID)
	if err == nil {
		if profile.AvatarURL != "" && user.Avatar != profile.AvatarURL {
			user.Avatar = profile.AvatarURL
			if err := s.users.Update(user); err != nil {
				return nil, false, apperrors.NewOperationError("update", err)
			}
		}
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to load user: %w", err)
	}

	user, err = s.users.GetByEmail(normalizeEmail(profile.Email))
	if err == nil {
		user.Provider = provider
		user.ProviderID = profile.ID
		if profile.AvatarURL != "" {
			user.Avatar = profile.AvatarURL
		}
		if err := s.users.Update(user); err != nil {
			return nil, false, apperrors.NewOperationError("update", err)
		}
		return user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to load user: %w", err)
	}

	password, err := generateRandomString(32)
	if err != nil {
		return nil, false, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, false, apperrors.NewOperationError("creation", err)
	}

	verifiedAt := s.now()
	user = &models.User{
		Name:            profile.Name,
		Email:           normalizeEmail(profile.Email),
		Password:        string(hash),
		UserType:        models.UserTypeUser,
		Country:         defaultCountry,
		Provider:        provider,
		ProviderID:      profile.ID,
		Avatar:          profile.AvatarURL,
		EmailVerifiedAt: &verifiedAt,
	}
	if err := s.users.Create(user); err != nil {
		return nil, false, apperrors.NewOperationError("creation", err)
	}

	return user, true, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   user.ID,
		Email:    user.Email,
		UserType: user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.JWTExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.UserID != uuid.Nil {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// GenerateState generates a random state parameter for OAuth2 and remembers it
func (s *AuthService) GenerateState(provider string) (string, error) {
	state, err := generateRandomString(32)
	if err != nil {
		return "", err
	}

	now := s.now()
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()
	for key, entry := range s.states {
		if now.After(entry.expiresAt) {
			delete(s.states, key)
		}
	}
	s.states[state] = oauthState{provider: provider, expiresAt: now.Add(stateTTL)}

	return state, nil
}

// consumeState accepts a state once, for the provider that issued it
func (s *AuthService) consumeState(provider, state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	entry, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)

	return entry.provider == provider && !s.now().After(entry.expiresAt)
}

func (s *AuthService) issue(user *models.User) (*AuthResponse, error) {
	token, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &AuthResponse{
		User:      user,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.config.JWTExpiry.Seconds()),
	}, nil
}

// notifyWelcome pushes a greeting to the user's devices; failures are only logged
func (s *AuthService) notifyWelcome(ctx context.Context, user *models.User, firstTime bool) {
	if s.notifier == nil || s.deviceTokens == nil {
		return
	}

	tokens, err := s.deviceTokens.GetByUserID(user.ID)
	if err != nil {
		logger.WithContext(ctx).Warnf("failed to load device tokens for welcome notification: %v", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	msg := notification.Message{
		Kind:   notification.KindWelcome,
		UserID: user.ID,
		Title:  "Bem-vindo de volta!",
		Body:   fmt.Sprintf("Olá %s! Você entrou no Vehicle Maintenance.", user.Name),
		Data:   map[string]string{"user_id": user.ID.String()},
	}
	if firstTime {
		msg.Title = "Bem-vindo ao Vehicle Maintenance!"
		msg.Body = fmt.Sprintf("Olá %s! Sua conta foi criada com sucesso. Comece a gerenciar suas manutenções!", user.Name)
	}
	for _, t := range tokens {
		msg.Tokens = append(msg.Tokens, t.Token)
	}

	s.notifier.Dispatch(ctx, msg)
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
