package controllers

import (
	"net/http"

	"github.com/codelieche/lessons/pkg/controllers/forms"
	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/controllers"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Many2ManyController 部门和权限的多对多关系
type Many2ManyController struct {
	controllers.BaseController
	departmentService core.DepartmentService
	permissionService core.PermissionService
}

// NewMany2ManyController 创建Many2ManyController实例
func NewMany2ManyController(departmentService core.DepartmentService, permissionService core.PermissionService) *Many2ManyController {
	return &Many2ManyController{
		departmentService: departmentService,
		permissionService: permissionService,
	}
}

// Many2Many 多对多操作
//   - extend：通过部门添加权限，部门1新增访问首页、访问用户
//   - create：通过权限添加部门，新建登录页以及综管部、财务部
//   - departments（默认）：获取拥有登录页权限的部门并打印
//   - remove：部门1移除权限1
func (controller *Many2ManyController) Many2Many(c *gin.Context) {
	var form forms.RelationActionForm
	if err := c.ShouldBindQuery(&form); err != nil {
		controller.HandleError(c, err, http.StatusBadRequest)
		return
	}
	if err := form.Validate("departments", "extend", "create", "departments", "remove"); err != nil {
		controller.HandleError(c, err, 0)
		return
	}
	form.SetDefault()

	ctx := c.Request.Context()
	switch form.Action {
	case "extend":
		permissions := []*core.Permission{
			{Name: "访问首页"},
			{Name: "访问用户"},
		}
		if _, err := controller.departmentService.GrantPermissions(ctx, form.DepartmentID, permissions...); err != nil {
			controller.HandleError(c, err, 0)
			return
		}

	case "create":
		permission := &core.Permission{
			Name: "登录页",
			Departments: []*core.Department{
				{Name: "综管部"},
				{Name: "财务部"},
			},
		}
		if _, err := controller.permissionService.Create(ctx, permission); err != nil {
			controller.HandleError(c, err, 0)
			return
		}

	case "remove":
		if err := controller.departmentService.RevokePermission(ctx, form.DepartmentID, form.PermissionID); err != nil {
			controller.HandleError(c, err, 0)
			return
		}

	default:
		departments, err := controller.permissionService.Departments(ctx, "登录页")
		if err != nil {
			controller.HandleError(c, err, 0)
			return
		}
		for _, department := range departments {
			logger.Info("权限所属部门", zap.String("permission", "登录页"), zap.String("department", department.Name))
		}
	}

	controller.HandleText(c, "多对多操作成功！")
}
