package repository

import (
	"context"
	"errors"

	"doctorsportal/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (u *DefaultUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var rows []*userRow
	err := u.db.WithContext(ctx).Order("rowid").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(rows))
	for i, row := range rows {
		users[i] = toUser(row)
	}
	return users, nil
}

// FindByEmail returns nil, nil when no user has that email.
func (u *DefaultUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row userRow
	err := u.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toUser(&row), nil
}

// Replace overwrites the profile of the record keyed by user.Email, creating
// the record when absent. A stored role is never overwritten: user.Role is
// applied only to a record that has no role yet, so a concurrent SetRole
// cannot be undone by a replace.
func (u *DefaultUserRepository) Replace(ctx context.Context, user *entity.User) (*entity.UpdateResult, error) {
	result := &entity.UpdateResult{Acknowledged: true}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&userRow{}).
			Where("email = ?", user.Email).
			Select("profile").
			Updates(&userRow{Profile: user.Profile.Clone()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			result.MatchedCount = res.RowsAffected
			result.ModifiedCount = res.RowsAffected
			if user.Role == "" {
				return nil
			}
			return tx.Model(&userRow{}).
				Where("email = ? AND role = ''", user.Email).
				Update("role", user.Role).Error
		}

		row := &userRow{ID: newID(), Email: user.Email, Role: user.Role, Profile: user.Profile.Clone()}
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		result.UpsertedCount = 1
		result.UpsertedID = &row.ID
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (u *DefaultUserRepository) SetRole(ctx context.Context, email, role string) (*entity.UpdateResult, error) {
	res := u.db.WithContext(ctx).
		Model(&userRow{}).
		Where("email = ?", email).
		Update("role", role)
	if res.Error != nil {
		return nil, res.Error
	}
	return &entity.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.RowsAffected,
		ModifiedCount: res.RowsAffected,
	}, nil
}

func (u *DefaultUserRepository) DeleteByEmail(ctx context.Context, email string) (*entity.DeleteResult, error) {
	res := u.db.WithContext(ctx).Where("email = ?", email).Delete(&userRow{})
	if res.Error != nil {
		return nil, res.Error
	}
	return &entity.DeleteResult{Acknowledged: true, DeletedCount: res.RowsAffected}, nil
}

func toUser(row *userRow) *entity.User {
	return &entity.User{
		ID:      row.ID,
		Email:   row.Email,
		Role:    row.Role,
		Profile: row.Profile,
	}
}
