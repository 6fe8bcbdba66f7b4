package token

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/CT070144/HostingWebsite-FE-sub001/internal/models"
)

const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

type TokenService struct {
	DB            *gorm.DB
	JWTSecret     []byte
	RefreshSecret []byte
}

func (t *TokenService) SignAccessToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"exp":  time.Now().Add(AccessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.JWTSecret)
}

// SignRefreshToken issues a refresh token and records it so it can be
// revoked on logout or rotation.
func (t *TokenService) SignRefreshToken(userID uint, role string) (string, error) {
	exp := time.Now().Add(RefreshTTL)
	claims := jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"exp":  exp.Unix(),
		"typ":  "refresh",
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.RefreshSecret)
	if err != nil {
		return "", err
	}

	record := models.RefreshToken{
		Token:     raw,
		UserID:    userID,
		Role:      role,
		ExpiresAt: exp,
	}
	if err := t.DB.Create(&record).Error; err != nil {
		return "", err
	}
	return raw, nil
}

func (t *TokenService) parse(raw string, secret []byte) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(raw, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (t *TokenService) ParseAccess(raw string) (uint, string, error) {
	claims, err := t.parse(raw, t.JWTSecret)
	if err != nil {
		return 0, "", err
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, "", ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	return uint(sub), role, nil
}

// Rotate validates a refresh token against the store, revokes it and issues
// a fresh access/refresh pair.
func (t *TokenService) Rotate(raw string) (string, string, error) {
	claims, err := t.parse(raw, t.RefreshSecret)
	if err != nil {
		return "", "", err
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", "", ErrInvalidToken
	}

	var record models.RefreshToken
	if err := t.DB.Where("token = ?", raw).First(&record).Error; err != nil {
		return "", "", ErrInvalidToken
	}
	if record.Revoked || time.Now().After(record.ExpiresAt) {
		return "", "", ErrInvalidToken
	}

	if err := t.DB.Model(&models.RefreshToken{}).
		Where("token = ?", raw).
		Update("revoked", true).Error; err != nil {
		return "", "", err
	}

	access, err := t.SignAccessToken(record.UserID, record.Role)
	if err != nil {
		return "", "", err
	}
	refresh, err := t.SignRefreshToken(record.UserID, record.Role)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// SignResetToken issues the short-lived code mailed out by forgot-password.
func (t *TokenService) SignResetToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": float64(userID),
		"exp": time.Now().Add(30 * time.Minute).Unix(),
		"typ": "reset",
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.JWTSecret)
}

func (t *TokenService) ParseReset(raw string) (uint, error) {
	claims, err := t.parse(raw, t.JWTSecret)
	if err != nil {
		return 0, err
	}
	if typ, _ := claims["typ"].(string); typ != "reset" {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}
	return uint(sub), nil
}

func (t *TokenService) Revoke(raw string) error {
	return t.DB.Model(&models.RefreshToken{}).
		Where("token = ?", raw).
		Update("revoked", true).Error
}

// BearerToken pulls the raw token out of the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	raw := strings.TrimPrefix(header, "Bearer ")
	if raw == header || raw == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	return raw, nil
}

func (t *TokenService) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, err := BearerToken(c)
		if err != nil {
			return err
		}
		userID, role, err := t.ParseAccess(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		c.Set("userID", userID)
		c.Set("role", role)
		return next(c)
	}
}

func (t *TokenService) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return t.RequireAuth(func(c echo.Context) error {
		if role, _ := c.Get("role").(string); role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin only")
		}
		return next(c)
	})
}
