package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdomain "mesto-backend/internal/auth/domain"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *authdomain.User) error {
	user.Email = authdomain.NormalizeEmail(user.Email)
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", authdomain.ErrValidation, err)
	}

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return authdomain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]authdomain.User, error) {
	var users []authdomain.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, authdomain.ErrInvalidID
	}
	return r.findOne(ctx, "id = ?", parsed.String())
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	return r.findOne(ctx, "email = ?", authdomain.NormalizeEmail(email))
}

func (r *userRepository) UpdateProfile(ctx context.Context, id, name, about string) (*authdomain.User, error) {
	err := validation.Errors{
		"name":  validation.Validate(name, authdomain.NameRules()...),
		"about": validation.Validate(about, authdomain.AboutRules()...),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", authdomain.ErrValidation, err)
	}

	return r.update(ctx, id, map[string]interface{}{"name": name, "about": about})
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*authdomain.User, error) {
	err := validation.Errors{
		"avatar": validation.Validate(avatar, authdomain.AvatarRules()...),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", authdomain.ErrValidation, err)
	}

	return r.update(ctx, id, map[string]interface{}{"avatar": avatar})
}

// update writes fields in a single statement; concurrent updates of the same
// user resolve as last write wins.
func (r *userRepository) update(ctx context.Context, id string, fields map[string]interface{}) (*authdomain.User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, authdomain.ErrInvalidID
	}

	fields["updated_at"] = time.Now()
	res := r.db.WithContext(ctx).Model(&authdomain.User{}).Where("id = ?", parsed.String()).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, authdomain.ErrNotFound
	}

	return r.findOne(ctx, "id = ?", parsed.String())
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...interface{}) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authdomain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
