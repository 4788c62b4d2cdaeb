package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/sngrmvj/WorkoutWatcher/apperrors"
	"github.com/sngrmvj/WorkoutWatcher/models"
	"github.com/sngrmvj/WorkoutWatcher/utils"
)

const pgUniqueViolation = "23505"

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register hashes the password and inserts the user. A unique-constraint
// violation on username or email maps to apperrors.ErrDuplicate.
func (s *UserService) Register(username, email, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}

	if err := s.db.Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperrors.ErrDuplicate
		}
		return err
	}
	return nil
}

// Authenticate looks the user up by email and compares the password against
// the stored hash. Unknown email and wrong password are indistinguishable to
// the caller; both return apperrors.ErrInvalidCredentials. No session state
// is created, so repeating the call has no side effects.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// FindByEmail resolves the email the client sends to the owning user row.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
