package store

import (
	"context"
	"errors"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/filters"
	"gorm.io/gorm"
)

// NewDepartmentStore 创建DepartmentStore实例
func NewDepartmentStore(db *gorm.DB) core.DepartmentStore {
	return &DepartmentStore{
		db: db,
	}
}

// DepartmentStore 部门存储实现
type DepartmentStore struct {
	db *gorm.DB
}

// FindByID 根据ID获取部门
func (s *DepartmentStore) FindByID(ctx context.Context, id uint) (*core.Department, error) {
	var department = &core.Department{}
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(department).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return department, nil
}

// FindByName 根据名称获取部门
func (s *DepartmentStore) FindByName(ctx context.Context, name string) (*core.Department, error) {
	var department = &core.Department{}
	if err := s.db.WithContext(ctx).Where("name = ?", name).Order("id").First(department).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return department, nil
}

// Create 创建部门
func (s *DepartmentStore) Create(ctx context.Context, obj *core.Department) (*core.Department, error) {
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

// List 获取部门列表
func (s *DepartmentStore) List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) (departments []*core.Department, err error) {
	query := s.db.WithContext(ctx).Model(&core.Department{}).Offset(offset).Limit(limit)

	for _, action := range filterActions {
		if action == nil {
			continue
		}
		query = action.Filter(query)
	}

	if err := query.Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// Count 统计部门数量
func (s *DepartmentStore) Count(ctx context.Context, filterActions ...filters.Filter) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).Model(&core.Department{})

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

// FindUsers 获取部门下的用户，按ID升序
func (s *DepartmentStore) FindUsers(ctx context.Context, obj *core.Department) ([]*core.User, error) {
	var users []*core.User
	if err := s.db.WithContext(ctx).Model(obj).Order("id").Association("Users").Find(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// AppendUsers 从部门一侧添加用户
// 新用户会被插入，已存在的用户只更新department_id
func (s *DepartmentStore) AppendUsers(ctx context.Context, obj *core.Department, users ...*core.User) error {
	if len(users) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(obj).Association("Users").Append(users)
	})
}

// FindPermissions 获取部门拥有的权限，按ID升序
func (s *DepartmentStore) FindPermissions(ctx context.Context, obj *core.Department) ([]*core.Permission, error) {
	var permissions []*core.Permission
	if err := s.db.WithContext(ctx).Model(obj).Order("id").Association("Permissions").Find(&permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

// AppendPermissions 给部门添加权限
// 中间表以(department_id, permission_id)为主键，重复的关联会被忽略
func (s *DepartmentStore) AppendPermissions(ctx context.Context, obj *core.Department, permissions ...*core.Permission) error {
	if len(permissions) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(obj).Association("Permissions").Append(permissions)
	})
}

// RemovePermissions 移除部门的权限，只删除中间表中的记录
func (s *DepartmentStore) RemovePermissions(ctx context.Context, obj *core.Department, permissions ...*core.Permission) error {
	if len(permissions) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(obj).Association("Permissions").Delete(permissions)
}
