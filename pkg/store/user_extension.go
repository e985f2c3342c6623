package store

import (
	"context"
	"errors"

	"github.com/codelieche/lessons/pkg/core"
	"gorm.io/gorm"
)

// NewUserExtensionStore 创建UserExtensionStore实例
func NewUserExtensionStore(db *gorm.DB) core.UserExtensionStore {
	return &UserExtensionStore{
		db: db,
	}
}

// UserExtensionStore 用户扩展信息存储实现
type UserExtensionStore struct {
	db *gorm.DB
}

// FindByUserID 获取用户当前的扩展信息
func (s *UserExtensionStore) FindByUserID(ctx context.Context, userID uint) (*core.UserExtension, error) {
	var extension = &core.UserExtension{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(extension).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return extension, nil
}

// Replace 设置用户的扩展信息
// 旧记录保留但user_id置空，和ORM里给一对一属性重新赋值的效果一致
func (s *UserExtensionStore) Replace(ctx context.Context, user *core.User, obj *core.UserExtension) (*core.UserExtension, error) {
	if user == nil || user.ID <= 0 {
		return nil, core.ErrBadRequest
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&core.UserExtension{}).
			Where("user_id = ?", user.ID).
			Update("user_id", nil).Error; err != nil {
			return err
		}

		obj.ID = 0
		obj.UserID = &user.ID
		obj.User = nil
		return tx.Create(obj).Error
	})
	if err != nil {
		return nil, err
	}

	user.Extension = obj
	return obj, nil
}
