package core

import (
	"context"
)

// UserExtension 用户扩展信息
// 存放不常用的用户数据，user_id唯一，保证一个用户最多只有一条扩展信息
type UserExtension struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	University string `gorm:"size:50;not null" json:"university"`
	UserID     *uint  `gorm:"unique" json:"user_id"`
	User       *User  `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 用户扩展表名
func (UserExtension) TableName() string {
	return "user_extension"
}

// UserExtensionStore 用户扩展信息存储接口
type UserExtensionStore interface {
	// FindByUserID 获取用户当前的扩展信息
	FindByUserID(ctx context.Context, userID uint) (*UserExtension, error)

	// Replace 设置用户的扩展信息
	// 原有的扩展信息会与用户解除关联（user_id置空），然后写入新的扩展信息
	Replace(ctx context.Context, user *User, obj *UserExtension) (*UserExtension, error)
}

// UserExtensionService 用户扩展信息服务接口
type UserExtensionService interface {
	FindByUserID(ctx context.Context, userID uint) (*UserExtension, error)

	// SetForUser 给用户设置扩展信息，用户不存在时返回ErrNotFound
	SetForUser(ctx context.Context, userID uint, obj *UserExtension) (*UserExtension, error)
}
