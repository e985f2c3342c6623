package core

import (
	"context"

	"github.com/codelieche/lessons/pkg/utils/filters"
)

// User 用户
// 一个用户最多属于一个部门（多对一），最多有一条扩展信息（一对一）
type User struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string         `gorm:"size:50" json:"username"`
	Password     string         `gorm:"size:200" json:"-"`
	Email        string         `gorm:"size:200" json:"email,omitempty"`
	Age          *int           `json:"age,omitempty"`
	DepartmentID *uint          `gorm:"index" json:"department_id,omitempty"`
	Department   *Department    `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Extension    *UserExtension `gorm:"foreignKey:UserID" json:"extension,omitempty"`
}

// TableName 用户表名
func (User) TableName() string {
	return "user"
}

// UserStore 用户存储接口
type UserStore interface {
	// FindByID 根据ID获取用户，同时加载部门和扩展信息
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByUsername 根据用户名获取用户，同名时返回ID最小的
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Create 创建用户，关联的新部门会一并创建
	Create(ctx context.Context, obj *User) (*User, error)

	// CreateMany 在一个事务中批量创建用户
	CreateMany(ctx context.Context, objs []*User) ([]*User, error)

	// Save 保存已加载的用户（先查后改）
	Save(ctx context.Context, obj *User) (*User, error)

	// UpdateByID 单条UPDATE语句更新用户，返回受影响行数
	UpdateByID(ctx context.Context, id uint, values map[string]interface{}) (int64, error)

	// Delete 删除已加载的用户（先查后删）
	Delete(ctx context.Context, obj *User) error

	// DeleteByID 单条DELETE语句删除用户，返回受影响行数
	DeleteByID(ctx context.Context, id uint) (int64, error)

	// List 获取用户列表
	List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) ([]*User, error)

	// Count 统计用户数量
	Count(ctx context.Context, filterActions ...filters.Filter) (int64, error)
}

// UserService 用户服务接口
type UserService interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, obj *User) (*User, error)
	CreateMany(ctx context.Context, objs []*User) ([]*User, error)

	// Rename 先加载用户再修改用户名（两次SQL）
	Rename(ctx context.Context, id uint, username string) (*User, error)

	// RenameByStatement 一条UPDATE语句修改用户名
	RenameByStatement(ctx context.Context, id uint, username string) (int64, error)

	// Delete 先加载用户再删除（两次SQL）
	Delete(ctx context.Context, id uint) error

	// DeleteByStatement 一条DELETE语句删除用户
	DeleteByStatement(ctx context.Context, id uint) (int64, error)

	List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) ([]*User, error)
	Count(ctx context.Context, filterActions ...filters.Filter) (int64, error)
}
