package store

import (
	"context"
	"errors"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/filters"
	"gorm.io/gorm"
)

// NewUserStore 创建UserStore实例
func NewUserStore(db *gorm.DB) core.UserStore {
	return &UserStore{
		db: db,
	}
}

// UserStore 用户存储实现
type UserStore struct {
	db *gorm.DB
}

// FindByID 根据ID获取用户
func (s *UserStore) FindByID(ctx context.Context, id uint) (*core.User, error) {
	var user = &core.User{}
	if err := s.db.WithContext(ctx).
		Preload("Department").Preload("Extension").
		Where("id = ?", id).First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// FindByUsername 根据用户名获取用户
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*core.User, error) {
	var user = &core.User{}
	if err := s.db.WithContext(ctx).
		Preload("Department").
		Where("username = ?", username).Order("id").First(user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create 创建用户
func (s *UserStore) Create(ctx context.Context, obj *core.User) (*core.User, error) {
	// 在事务中执行
	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(obj).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return obj, nil
}

// CreateMany 批量创建用户，全部成功或全部失败
func (s *UserStore) CreateMany(ctx context.Context, objs []*core.User) ([]*core.User, error) {
	if len(objs) == 0 {
		return objs, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&objs).Error
	})
	if err != nil {
		return nil, err
	}
	return objs, nil
}

// Save 保存用户的所有字段
func (s *UserStore) Save(ctx context.Context, obj *core.User) (*core.User, error) {
	if obj.ID <= 0 {
		return nil, core.ErrBadRequest
	}

	if err := s.db.WithContext(ctx).Omit("Department", "Extension").Save(obj).Error; err != nil {
		return nil, err
	}
	return obj, nil
}

// UpdateByID 直接执行UPDATE语句，不会先查询
func (s *UserStore) UpdateByID(ctx context.Context, id uint, values map[string]interface{}) (int64, error) {
	if len(values) == 0 {
		return 0, core.ErrBadRequest
	}

	result := s.db.WithContext(ctx).Model(&core.User{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete 删除已加载的用户
func (s *UserStore) Delete(ctx context.Context, obj *core.User) error {
	if obj.ID <= 0 {
		return core.ErrNotFound
	}

	// 在事务中执行
	tx := s.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 扩展信息只解除关联，不删除
	if err := tx.Model(&core.UserExtension{}).Where("user_id = ?", obj.ID).
		Update("user_id", nil).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Delete(obj).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// DeleteByID 直接执行DELETE语句，不会先查询
func (s *UserStore) DeleteByID(ctx context.Context, id uint) (int64, error) {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&core.User{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// List 获取用户列表
func (s *UserStore) List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) (users []*core.User, err error) {
	query := s.db.WithContext(ctx).Model(&core.User{}).Offset(offset).Limit(limit)

	// 应用过滤条件
	for _, action := range filterActions {
		if action == nil {
			continue
		}
		query = action.Filter(query)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Count 统计用户数量
func (s *UserStore) Count(ctx context.Context, filterActions ...filters.Filter) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&core.User{})

	for _, action := range filterActions {
		if action == nil {
			continue
		}
		query = action.Filter(query)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
