package core

import (
	"context"

	"github.com/codelieche/lessons/pkg/utils/filters"
)

// Department 部门
// 一个部门有多个用户（一对多），部门和权限通过department_permission多对多关联
type Department struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string        `gorm:"size:50;not null" json:"name"`
	Users       []*User       `gorm:"foreignKey:DepartmentID" json:"users,omitempty"`
	Permissions []*Permission `gorm:"many2many:department_permission" json:"permissions,omitempty"`
}

// TableName 部门表名
func (Department) TableName() string {
	return "department"
}

// DepartmentStore 部门存储接口
type DepartmentStore interface {
	FindByID(ctx context.Context, id uint) (*Department, error)

	// FindByName 根据名称获取部门，同名时返回ID最小的
	FindByName(ctx context.Context, name string) (*Department, error)

	// Create 创建部门，Users和Permissions中的新记录会一并创建
	Create(ctx context.Context, obj *Department) (*Department, error)

	List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) ([]*Department, error)
	Count(ctx context.Context, filterActions ...filters.Filter) (int64, error)

	// FindUsers 获取部门下的所有用户
	FindUsers(ctx context.Context, obj *Department) ([]*User, error)

	// AppendUsers 从部门一侧添加用户，未保存的用户会被创建
	AppendUsers(ctx context.Context, obj *Department, users ...*User) error

	// FindPermissions 获取部门拥有的权限
	FindPermissions(ctx context.Context, obj *Department) ([]*Permission, error)

	// AppendPermissions 给部门添加权限，未保存的权限会被创建
	AppendPermissions(ctx context.Context, obj *Department, permissions ...*Permission) error

	// RemovePermissions 移除部门和权限的关联，只删除中间表记录
	RemovePermissions(ctx context.Context, obj *Department, permissions ...*Permission) error
}

// DepartmentService 部门服务接口
type DepartmentService interface {
	FindByID(ctx context.Context, id uint) (*Department, error)
	FindByName(ctx context.Context, name string) (*Department, error)
	Create(ctx context.Context, obj *Department) (*Department, error)
	List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) ([]*Department, error)
	Count(ctx context.Context, filterActions ...filters.Filter) (int64, error)

	// Users 获取部门下的用户
	Users(ctx context.Context, departmentID uint) ([]*User, error)

	// AddUsers 从部门一侧添加用户
	AddUsers(ctx context.Context, departmentID uint, users ...*User) (*Department, error)

	// Permissions 获取部门拥有的权限
	Permissions(ctx context.Context, departmentID uint) ([]*Permission, error)

	// GrantPermissions 给部门添加权限
	GrantPermissions(ctx context.Context, departmentID uint, permissions ...*Permission) (*Department, error)

	// RevokePermission 移除部门的某个权限
	RevokePermission(ctx context.Context, departmentID uint, permissionID uint) error
}
