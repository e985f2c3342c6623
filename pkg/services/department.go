package services

import (
	"context"
	"strings"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/filters"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"go.uber.org/zap"
)

// NewDepartmentService 创建DepartmentService实例
func NewDepartmentService(store core.DepartmentStore, permissionStore core.PermissionStore) core.DepartmentService {
	return &DepartmentService{
		store:           store,
		permissionStore: permissionStore,
	}
}

// DepartmentService 部门服务实现
type DepartmentService struct {
	store           core.DepartmentStore
	permissionStore core.PermissionStore
}

// FindByID 根据ID获取部门
func (s *DepartmentService) FindByID(ctx context.Context, id uint) (*core.Department, error) {
	department, err := s.store.FindByID(ctx, id)
	if err != nil && err != core.ErrNotFound {
		logger.Error("find department by id error", zap.Error(err), zap.Uint("id", id))
	}
	return department, err
}

// FindByName 根据名称获取部门
func (s *DepartmentService) FindByName(ctx context.Context, name string) (*core.Department, error) {
	department, err := s.store.FindByName(ctx, name)
	if err != nil && err != core.ErrNotFound {
		logger.Error("find department by name error", zap.Error(err), zap.String("name", name))
	}
	return department, err
}

// Create 创建部门
func (s *DepartmentService) Create(ctx context.Context, obj *core.Department) (*core.Department, error) {
	if strings.TrimSpace(obj.Name) == "" {
		logger.Error("department name is required")
		return nil, core.ErrBadRequest
	}

	result, err := s.store.Create(ctx, obj)
	if err != nil {
		logger.Error("create department error", zap.Error(err), zap.String("name", obj.Name))
	}
	return result, err
}

// List 获取部门列表
func (s *DepartmentService) List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) ([]*core.Department, error) {
	departments, err := s.store.List(ctx, offset, limit, filterActions...)
	if err != nil {
		logger.Error("list departments error", zap.Error(err))
	}
	return departments, err
}

// Count 统计部门数量
func (s *DepartmentService) Count(ctx context.Context, filterActions ...filters.Filter) (int64, error) {
	count, err := s.store.Count(ctx, filterActions...)
	if err != nil {
		logger.Error("count departments error", zap.Error(err))
	}
	return count, err
}

// Users 获取部门下的用户
func (s *DepartmentService) Users(ctx context.Context, departmentID uint) ([]*core.User, error) {
	department, err := s.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	users, err := s.store.FindUsers(ctx, department)
	if err != nil {
		logger.Error("find department users error", zap.Error(err), zap.Uint("department_id", departmentID))
	}
	return users, err
}

// AddUsers 从部门一侧添加用户
func (s *DepartmentService) AddUsers(ctx context.Context, departmentID uint, users ...*core.User) (*core.Department, error) {
	department, err := s.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendUsers(ctx, department, users...); err != nil {
		logger.Error("append department users error", zap.Error(err), zap.Uint("department_id", departmentID))
		return nil, err
	}
	return department, nil
}

// Permissions 获取部门拥有的权限
func (s *DepartmentService) Permissions(ctx context.Context, departmentID uint) ([]*core.Permission, error) {
	department, err := s.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	permissions, err := s.store.FindPermissions(ctx, department)
	if err != nil {
		logger.Error("find department permissions error", zap.Error(err), zap.Uint("department_id", departmentID))
	}
	return permissions, err
}

// GrantPermissions 给部门添加权限
func (s *DepartmentService) GrantPermissions(ctx context.Context, departmentID uint, permissions ...*core.Permission) (*core.Department, error) {
	department, err := s.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendPermissions(ctx, department, permissions...); err != nil {
		logger.Error("append department permissions error", zap.Error(err), zap.Uint("department_id", departmentID))
		return nil, err
	}
	return department, nil
}

// RevokePermission 移除部门的某个权限
// 部门或权限不存在时返回ErrNotFound；两者存在但未关联时不做任何事
func (s *DepartmentService) RevokePermission(ctx context.Context, departmentID uint, permissionID uint) error {
	department, err := s.FindByID(ctx, departmentID)
	if err != nil {
		return err
	}

	permission, err := s.permissionStore.FindByID(ctx, permissionID)
	if err != nil {
		if err != core.ErrNotFound {
			logger.Error("find permission by id error", zap.Error(err), zap.Uint("id", permissionID))
		}
		return err
	}

	if err := s.store.RemovePermissions(ctx, department, permission); err != nil {
		logger.Error("remove department permission error", zap.Error(err),
			zap.Uint("department_id", departmentID), zap.Uint("permission_id", permissionID))
		return err
	}
	return nil
}
