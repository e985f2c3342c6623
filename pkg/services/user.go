package services

import (
	"context"
	"strings"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/filters"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"go.uber.org/zap"
)

// NewUserService 创建UserService实例
func NewUserService(store core.UserStore) core.UserService {
	return &UserService{
		store: store,
	}
}

// UserService 用户服务实现
type UserService struct {
	store core.UserStore
}

// FindByID 根据ID获取用户
func (s *UserService) FindByID(ctx context.Context, id uint) (*core.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil && err != core.ErrNotFound {
		logger.Error("find user by id error", zap.Error(err), zap.Uint("id", id))
	}
	return user, err
}

// FindByUsername 根据用户名获取用户
func (s *UserService) FindByUsername(ctx context.Context, username string) (*core.User, error) {
	user, err := s.store.FindByUsername(ctx, username)
	if err != nil && err != core.ErrNotFound {
		logger.Error("find user by username error", zap.Error(err), zap.String("username", username))
	}
	return user, err
}

// Create 创建用户
func (s *UserService) Create(ctx context.Context, obj *core.User) (*core.User, error) {
	if strings.TrimSpace(obj.Username) == "" {
		logger.Error("username is required")
		return nil, core.ErrBadRequest
	}

	result, err := s.store.Create(ctx, obj)
	if err != nil {
		logger.Error("create user error", zap.Error(err), zap.String("username", obj.Username))
	}
	return result, err
}

// CreateMany 批量创建用户
func (s *UserService) CreateMany(ctx context.Context, objs []*core.User) ([]*core.User, error) {
	for _, obj := range objs {
		if strings.TrimSpace(obj.Username) == "" {
			logger.Error("username is required")
			return nil, core.ErrBadRequest
		}
	}

	result, err := s.store.CreateMany(ctx, objs)
	if err != nil {
		logger.Error("create users error", zap.Error(err), zap.Int("count", len(objs)))
	}
	return result, err
}

// Rename 先查询用户，修改后再保存
func (s *UserService) Rename(ctx context.Context, id uint, username string) (*core.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, core.ErrBadRequest
	}

	user, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = username
	result, err := s.store.Save(ctx, user)
	if err != nil {
		logger.Error("save user error", zap.Error(err), zap.Uint("id", id))
	}
	return result, err
}

// RenameByStatement 直接执行一条UPDATE语句
// 没有匹配的行时不报错，只记录警告
func (s *UserService) RenameByStatement(ctx context.Context, id uint, username string) (int64, error) {
	if strings.TrimSpace(username) == "" {
		return 0, core.ErrBadRequest
	}

	affected, err := s.store.UpdateByID(ctx, id, map[string]interface{}{"username": username})
	if err != nil {
		logger.Error("update user error", zap.Error(err), zap.Uint("id", id))
		return 0, err
	}
	if affected == 0 {
		logger.Warn("update user matched no rows", zap.Uint("id", id))
	}
	return affected, nil
}

// Delete 先查询用户再删除
func (s *UserService) Delete(ctx context.Context, id uint) error {
	user, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, user); err != nil {
		logger.Error("delete user error", zap.Error(err), zap.Uint("id", id))
		return err
	}
	return nil
}

// DeleteByStatement 直接执行一条DELETE语句
func (s *UserService) DeleteByStatement(ctx context.Context, id uint) (int64, error) {
	affected, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		logger.Error("delete user error", zap.Error(err), zap.Uint("id", id))
		return 0, err
	}
	if affected == 0 {
		logger.Warn("delete user matched no rows", zap.Uint("id", id))
	}
	return affected, nil
}

// List 获取用户列表
func (s *UserService) List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) ([]*core.User, error) {
	users, err := s.store.List(ctx, offset, limit, filterActions...)
	if err != nil {
		logger.Error("list users error", zap.Error(err))
	}
	return users, err
}

// Count 统计用户数量
func (s *UserService) Count(ctx context.Context, filterActions ...filters.Filter) (int64, error) {
	count, err := s.store.Count(ctx, filterActions...)
	if err != nil {
		logger.Error("count users error", zap.Error(err))
	}
	return count, err
}
