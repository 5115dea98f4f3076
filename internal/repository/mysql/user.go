package mysql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/syamsf/dicoding-forum-api/domain"
	"github.com/syamsf/dicoding-forum-api/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user domain.RegisterUser) (domain.AddedUser, error) {
	row := model.User{
		ID:       "user-" + uuid.NewString(),
		Username: user.Username,
		Password: user.Password,
		Fullname: user.Fullname,
	}
	err := r.DB.WithContext(ctx).Create(&row).Error
	if isDupEntry(err) {
		return domain.AddedUser{}, domain.ErrConflict
	}
	if err != nil {
		return domain.AddedUser{}, err
	}
	return domain.AddedUser{ID: row.ID, Username: row.Username, Fullname: row.Fullname}, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var row model.User
	err := r.DB.WithContext(ctx).
		Where("username = ?", username).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, fmt.Errorf("%w: user", domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, err
	}
	return toDomainUser(row), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var row model.User
	err := r.DB.WithContext(ctx).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, fmt.Errorf("%w: user", domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, err
	}
	return toDomainUser(row), nil
}

func toDomainUser(row model.User) domain.User {
	return domain.User{
		ID:        row.ID,
		Username:  row.Username,
		Password:  row.Password,
		Fullname:  row.Fullname,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
