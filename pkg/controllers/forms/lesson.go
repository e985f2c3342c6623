package forms

import (
	"fmt"

	"github.com/codelieche/lessons/pkg/core"
)

// ActionForm 课程接口通用的action参数
// 每个接口用action选择要演示的写法，为空时使用默认写法
type ActionForm struct {
	Action string `form:"action" json:"action"`
}

// Validate 校验action是否在允许的列表中
func (form *ActionForm) Validate(defaultAction string, actions ...string) error {
	if form.Action == "" {
		form.Action = defaultAction
		return nil
	}
	for _, action := range actions {
		if form.Action == action {
			return nil
		}
	}
	return fmt.Errorf("%w: 不支持的action %q", core.ErrBadRequest, form.Action)
}

// UserActionForm 用户增删改查的参数
type UserActionForm struct {
	ActionForm
	ID       uint   `form:"id" json:"id"`
	Username string `form:"username" json:"username"`
}

// SetDefault 未传的参数使用默认值
func (form *UserActionForm) SetDefault(id uint, username string) {
	if form.ID == 0 {
		form.ID = id
	}
	if form.Username == "" {
		form.Username = username
	}
}

// RelationActionForm 关系演示接口的参数
type RelationActionForm struct {
	ActionForm
	DepartmentID uint `form:"department_id" json:"department_id"`
	PermissionID uint `form:"permission_id" json:"permission_id"`
	UserID       uint `form:"user_id" json:"user_id"`
}

// SetDefault 未传的ID默认都是1
func (form *RelationActionForm) SetDefault() {
	if form.DepartmentID == 0 {
		form.DepartmentID = 1
	}
	if form.PermissionID == 0 {
		form.PermissionID = 1
	}
	if form.UserID == 0 {
		form.UserID = 1
	}
}
