package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authDTO "github.com/sam002696/tuition-management-backend/internals/features/users/auth/dto"
	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

type AuthService struct {
	DB     *gorm.DB
	Mailer Mailer
}

func NewAuthService(db *gorm.DB, mailer Mailer) *AuthService {
	if mailer == nil {
		mailer = ConsoleMailer{}
	}
	return &AuthService{DB: db, Mailer: mailer}
}

// RegisterUser creates an account with a hashed password and the derived
// custom_id.
func (s *AuthService) RegisterUser(req authDTO.RegisterRequest) (*userModel.UserModel, error) {
	var count int64
	if err := s.DB.Model(&userModel.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The email has already been taken.")
	}
	if req.Phone != nil && *req.Phone != "" {
		if err := s.DB.Model(&userModel.UserModel{}).Where("phone = ?", *req.Phone).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The phone has already been taken.")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := userModel.UserModel{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: string(hash),
		Role:     req.Role,
		CustomID: userModel.DeriveCustomID(req.Role, req.Phone),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "The email has already been taken.")
		}
		return nil, err
	}
	return &user, nil
}

// LoginUser verifies credentials and issues the access token. A nil
// result with nil error means invalid credentials.
func (s *AuthService) LoginUser(req authDTO.LoginRequest) (*userModel.UserModel, string, error) {
	var user userModel.UserModel
	if err := s.DB.First(&user, "email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", nil
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, "", nil
	}

	token, err := helper.CreateAccessToken(user.ID, user.Role, user.Name)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
