package services

import (
	"context"
	"strings"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/filters"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"go.uber.org/zap"
)

// NewPermissionService 创建PermissionService实例
func NewPermissionService(store core.PermissionStore) core.PermissionService {
	return &PermissionService{
		store: store,
	}
}

// PermissionService 权限服务实现
type PermissionService struct {
	store core.PermissionStore
}

// FindByID 根据ID获取权限
func (s *PermissionService) FindByID(ctx context.Context, id uint) (*core.Permission, error) {
	permission, err := s.store.FindByID(ctx, id)
	if err != nil && err != core.ErrNotFound {
		logger.Error("find permission by id error", zap.Error(err), zap.Uint("id", id))
	}
	return permission, err
}

// FindByName 根据名称获取权限
func (s *PermissionService) FindByName(ctx context.Context, name string) (*core.Permission, error) {
	permission, err := s.store.FindByName(ctx, name)
	if err != nil && err != core.ErrNotFound {
		logger.Error("find permission by name error", zap.Error(err), zap.String("name", name))
	}
	return permission, err
}

// Create 创建权限
func (s *PermissionService) Create(ctx context.Context, obj *core.Permission) (*core.Permission, error) {
	if strings.TrimSpace(obj.Name) == "" {
		logger.Error("permission name is required")
		return nil, core.ErrBadRequest
	}

	result, err := s.store.Create(ctx, obj)
	if err != nil {
		logger.Error("create permission error", zap.Error(err), zap.String("name", obj.Name))
	}
	return result, err
}

// List 获取权限列表
func (s *PermissionService) List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) ([]*core.Permission, error) {
	permissions, err := s.store.List(ctx, offset, limit, filterActions...)
	if err != nil {
		logger.Error("list permissions error", zap.Error(err))
	}
	return permissions, err
}

// Count 统计权限数量
func (s *PermissionService) Count(ctx context.Context, filterActions ...filters.Filter) (int64, error) {
	count, err := s.store.Count(ctx, filterActions...)
	if err != nil {
		logger.Error("count permissions error", zap.Error(err))
	}
	return count, err
}

// Departments 根据权限名称获取拥有该权限的部门
func (s *PermissionService) Departments(ctx context.Context, name string) ([]*core.Department, error) {
	permission, err := s.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	departments, err := s.store.FindDepartments(ctx, permission)
	if err != nil {
		logger.Error("find permission departments error", zap.Error(err), zap.String("name", name))
	}
	return departments, err
}

// AddDepartments 从权限一侧添加部门
func (s *PermissionService) AddDepartments(ctx context.Context, permissionID uint, departments ...*core.Department) (*core.Permission, error) {
	permission, err := s.FindByID(ctx, permissionID)
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendDepartments(ctx, permission, departments...); err != nil {
		logger.Error("append permission departments error", zap.Error(err), zap.Uint("permission_id", permissionID))
		return nil, err
	}
	return permission, nil
}
