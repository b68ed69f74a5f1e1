package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDTO "github.com/sam002696/tuition-management-backend/internals/features/users/auth/dto"
	authModel "github.com/sam002696/tuition-management-backend/internals/features/users/auth/model"
	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
)

const resetTokenTTL = 60 * time.Minute

// ForgotPassword issues a one-time reset token when the email exists.
// It never reveals whether the account exists; the controller always
// answers with the same generic message.
func (s *AuthService) ForgotPassword(req authDTO.ForgotPasswordRequest) error {
	var user userModel.UserModel
	if err := s.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	row := authModel.PasswordResetTokenModel{
		UserID:    user.ID,
		TokenHash: hashResetToken(token),
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}
	if err := s.DB.Create(&row).Error; err != nil {
		return err
	}

	if err := s.Mailer.SendPasswordReset(user.Email, token); err != nil {
		// Mail transport is best effort; the token row stays valid.
		log.Printf("[ERROR] password reset mail for %s: %v", user.Email, err)
	}
	return nil
}

// ResetPassword consumes a valid, unexpired, unused token and replaces
// the password hash.
func (s *AuthService) ResetPassword(req authDTO.ResetPasswordRequest) error {
	var user userModel.UserModel
	if err := s.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "This password reset token is invalid.")
		}
		return err
	}

	var row authModel.PasswordResetTokenModel
	err := s.DB.
		Where("user_id = ? AND token_hash = ? AND used_at IS NULL", user.ID, hashResetToken(req.Token)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "This password reset token is invalid.")
		}
		return err
	}
	if time.Now().UTC().After(row.ExpiresAt) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "This password reset token is invalid.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("password", string(hash)).Error; err != nil {
			return err
		}
		now := time.Now().UTC()
		return tx.Model(&row).Update("used_at", now).Error
	})
}

// ChangePassword re-hashes after verifying the current password.
func (s *AuthService) ChangePassword(userID uuid.UUID, req authDTO.ChangePasswordRequest) error {
	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "The current password is incorrect.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.DB.Model(&user).Update("password", string(hash)).Error
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
