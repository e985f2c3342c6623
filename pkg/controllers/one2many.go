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

// One2ManyController 部门和用户的一对多关系
type One2ManyController struct {
	controllers.BaseController
	userService       core.UserService
	departmentService core.DepartmentService
}

// NewOne2ManyController 创建One2ManyController实例
func NewOne2ManyController(userService core.UserService, departmentService core.DepartmentService) *One2ManyController {
	return &One2ManyController{
		userService:       userService,
		departmentService: departmentService,
	}
}

// One2Many 一对多操作
//   - create：通过用户添加部门，新建技术部和张三
//   - append：通过部门添加用户，给部门1添加李四
//   - department：通过用户访问部门，打印李四的部门名称
//   - users（默认）：通过部门获取所有用户并打印
func (controller *One2ManyController) One2Many(c *gin.Context) {
	var form forms.RelationActionForm
	if err := c.ShouldBindQuery(&form); err != nil {
		controller.HandleError(c, err, http.StatusBadRequest)
		return
	}
	if err := form.Validate("users", "create", "append", "department", "users"); err != nil {
		controller.HandleError(c, err, 0)
		return
	}
	form.SetDefault()

	ctx := c.Request.Context()
	switch form.Action {
	case "create":
		user := &core.User{
			Username:   "张三",
			Department: &core.Department{Name: "技术部"},
		}
		if _, err := controller.userService.Create(ctx, user); err != nil {
			controller.HandleError(c, err, 0)
			return
		}

	case "append":
		if _, err := controller.departmentService.AddUsers(ctx, form.DepartmentID, &core.User{Username: "李四"}); err != nil {
			controller.HandleError(c, err, 0)
			return
		}

	case "department":
		user, err := controller.userService.FindByUsername(ctx, "李四")
		if err != nil {
			controller.HandleError(c, err, 0)
			return
		}
		if user.Department != nil {
			logger.Info("用户所属部门", zap.String("username", user.Username), zap.String("department", user.Department.Name))
		} else {
			logger.Info("用户没有部门", zap.String("username", user.Username))
		}

	default:
		users, err := controller.departmentService.Users(ctx, form.DepartmentID)
		if err != nil {
			controller.HandleError(c, err, 0)
			return
		}
		for _, user := range users {
			logger.Info("部门用户", zap.Uint("department_id", form.DepartmentID), zap.String("username", user.Username))
		}
	}

	controller.HandleText(c, "数据添加成功")
}
