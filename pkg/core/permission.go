package core

import (
	"context"

	"github.com/codelieche/lessons/pkg/utils/filters"
)

// Permission 权限
type Permission struct {
	ID          uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string        `gorm:"size:50;not null" json:"name"`
	Departments []*Department `gorm:"many2many:department_permission" json:"departments,omitempty"`
}

// TableName 权限表名
func (Permission) TableName() string {
	return "permission"
}

// DepartmentPermission 部门和权限的中间表
// department_id和permission_id组成复合主键，同一组合只会存在一条记录
type DepartmentPermission struct {
	DepartmentID uint `gorm:"primaryKey"`
	PermissionID uint `gorm:"primaryKey"`

	Department *Department `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
	Permission *Permission `gorm:"foreignKey:PermissionID;constraint:OnDelete:CASCADE"`
}

// TableName 中间表表名
func (DepartmentPermission) TableName() string {
	return "department_permission"
}

// PermissionStore 权限存储接口
type PermissionStore interface {
	FindByID(ctx context.Context, id uint) (*Permission, error)

	// FindByName 根据名称获取权限，同名时返回ID最小的
	FindByName(ctx context.Context, name string) (*Permission, error)

	// Create 创建权限，Departments中的新部门会一并创建
	Create(ctx context.Context, obj *Permission) (*Permission, error)

	List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) ([]*Permission, error)
	Count(ctx context.Context, filterActions ...filters.Filter) (int64, error)

	// FindDepartments 获取拥有该权限的部门
	FindDepartments(ctx context.Context, obj *Permission) ([]*Department, error)

	// AppendDepartments 从权限一侧添加部门
	AppendDepartments(ctx context.Context, obj *Permission, departments ...*Department) error
}

// PermissionService 权限服务接口
type PermissionService interface {
	FindByID(ctx context.Context, id uint) (*Permission, error)
	FindByName(ctx context.Context, name string) (*Permission, error)
	Create(ctx context.Context, obj *Permission) (*Permission, error)
	List(ctx context.Context, offset int, limit int, filterActions ...filters.Filter) ([]*Permission, error)
	Count(ctx context.Context, filterActions ...filters.Filter) (int64, error)

	// Departments 根据权限名称获取拥有该权限的部门
	Departments(ctx context.Context, name string) ([]*Department, error)

	// AddDepartments 从权限一侧添加部门
	AddDepartments(ctx context.Context, permissionID uint, departments ...*Department) (*Permission, error)
}
