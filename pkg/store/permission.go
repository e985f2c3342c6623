package store

import (
	"context"
	"errors"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/filters"
	"gorm.io/gorm"
)

// NewPermissionStore 创建PermissionStore实例
func NewPermissionStore(db *gorm.DB) core.PermissionStore {
	return &PermissionStore{
		db: db,
	}
}

// PermissionStore 权限存储实现
type PermissionStore struct {
	db *gorm.DB
}

// FindByID 根据ID获取权限
func (s *PermissionStore) FindByID(ctx context.Context, id uint) (*core.Permission, error) {
	var permission = &core.Permission{}
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(permission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return permission, nil
}

// FindByName 根据名称获取权限
func (s *PermissionStore) FindByName(ctx context.Context, name string) (*core.Permission, error) {
	var permission = &core.Permission{}
	if err := s.db.WithContext(ctx).Where("name = ?", name).Order("id").First(permission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return permission, nil
}

// Create 创建权限
func (s *PermissionStore) Create(ctx context.Context, obj *core.Permission) (*core.Permission, error) {
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

// List 获取权限列表
func (s *PermissionStore) List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) (permissions []*core.Permission, err error) {
	query := s.db.WithContext(ctx).Model(&core.Permission{}).Offset(offset).Limit(limit)

	for _, action := range filterActions {
		if action == nil {
			continue
		}
		query = action.Filter(query)
	}

	if err := query.Find(&permissions).Error; err != nil {
		return nil, err
	}
	return permissions, nil
}

// Count 统计权限数量
func (s *PermissionStore) Count(ctx context.Context, filterActions ...filters.Filter) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&core.Permission{})

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

// FindDepartments 获取拥有该权限的部门，按ID升序
func (s *PermissionStore) FindDepartments(ctx context.Context, obj *core.Permission) ([]*core.Department, error) {
	var departments []*core.Department
	if err := s.db.WithContext(ctx).Model(obj).Order("id").Association("Departments").Find(&departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// AppendDepartments 从权限一侧添加部门，未保存的部门会被创建
func (s *PermissionStore) AppendDepartments(ctx context.Context, obj *core.Permission, departments ...*core.Department) error {
	if len(departments) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(obj).Association("Departments").Append(departments)
	})
}
