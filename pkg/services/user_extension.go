package services

import (
	"context"
	"strings"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"go.uber.org/zap"
)

// NewUserExtensionService 创建UserExtensionService实例
func NewUserExtensionService(store core.UserExtensionStore, userStore core.UserStore) core.UserExtensionService {
	return &UserExtensionService{
		store:     store,
		userStore: userStore,
	}
}

// UserExtensionService 用户扩展信息服务实现
type UserExtensionService struct {
	store     core.UserExtensionStore
	userStore core.UserStore
}

// FindByUserID 获取用户当前的扩展信息
func (s *UserExtensionService) FindByUserID(ctx context.Context, userID uint) (*core.UserExtension, error) {
	extension, err := s.store.FindByUserID(ctx, userID)
	if err != nil && err != core.ErrNotFound {
		logger.Error("find user extension error", zap.Error(err), zap.Uint("user_id", userID))
	}
	return extension, err
}

// SetForUser 给用户设置扩展信息，替换掉原有的
func (s *UserExtensionService) SetForUser(ctx context.Context, userID uint, obj *core.UserExtension) (*core.UserExtension, error) {
	if strings.TrimSpace(obj.University) == "" {
		logger.Error("university is required")
		return nil, core.ErrBadRequest
	}

	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil {
		if err != core.ErrNotFound {
			logger.Error("find user by id error", zap.Error(err), zap.Uint("id", userID))
		}
		return nil, err
	}

	result, err := s.store.Replace(ctx, user, obj)
	if err != nil {
		logger.Error("replace user extension error", zap.Error(err), zap.Uint("user_id", userID))
	}
	return result, err
}
