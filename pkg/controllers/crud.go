package controllers

import (
	"net/http"

	"github.com/codelieche/lessons/pkg/controllers/forms"
	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/controllers"
	"github.com/codelieche/lessons/pkg/utils/filters"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultPassword = "asledfgo"

// CrudController 用户的增删改查
type CrudController struct {
	controllers.BaseController
	service core.UserService
}

// NewCrudController 创建CrudController实例
func NewCrudController(service core.UserService) *CrudController {
	return &CrudController{
		service: service,
	}
}

// Create 添加数据
//   - batch（默认）：一个事务中添加小王、小张
//   - one：添加一条记录lili
func (controller *CrudController) Create(c *gin.Context) {
	var form forms.ActionForm
	if err := c.ShouldBindQuery(&form); err != nil {
		controller.HandleError(c, err, http.StatusBadRequest)
		return
	}
	if err := form.Validate("batch", "batch", "one"); err != nil {
		controller.HandleError(c, err, 0)
		return
	}

	ctx := c.Request.Context()
	var err error
	switch form.Action {
	case "one":
		_, err = controller.service.Create(ctx, &core.User{Username: "lili", Password: defaultPassword})
	default:
		_, err = controller.service.CreateMany(ctx, []*core.User{
			{Username: "小王", Password: defaultPassword},
			{Username: "小张", Password: defaultPassword},
		})
	}
	if err != nil {
		controller.HandleError(c, err, 0)
		return
	}

	controller.HandleText(c, "数据添加成功")
}

// Read 读取数据
//   - list（默认）：按id倒序读取全部用户并打印，支持过滤、搜索、排序，传了page或page_size时分页
//   - one：根据id读取一条记录
func (controller *CrudController) Read(c *gin.Context) {
	var form forms.UserActionForm
	if err := c.ShouldBindQuery(&form); err != nil {
		controller.HandleError(c, err, http.StatusBadRequest)
		return
	}
	if err := form.Validate("list", "list", "one"); err != nil {
		controller.HandleError(c, err, 0)
		return
	}

	ctx := c.Request.Context()
	if form.Action == "one" {
		if form.ID == 0 {
			controller.HandleError400(c, core.ErrBadRequest)
			return
		}
		// 相等筛选
		users, err := controller.service.List(ctx, 0, 1, &filters.FilterOption{
			Column: "id",
			Value:  form.ID,
			Op:     filters.FILTER_EQ,
		})
		if err != nil {
			controller.HandleError(c, err, 0)
			return
		}
		if len(users) == 0 {
			controller.Handle404(c, core.ErrNotFound)
			return
		}
		logger.Info("读取用户", zap.Uint("id", users[0].ID), zap.String("username", users[0].Username))
		controller.HandleText(c, "数据读取成功")
		return
	}

	// 没有传分页参数时读取全部用户
	offset, limit := 0, -1
	if c.Query("page") != "" || c.Query("page_size") != "" {
		pagination := controller.ParsePagination(c)
		offset, limit = pagination.Offset(), pagination.PageSize
	}

	filterOptions := []*filters.FilterOption{
		{QueryKey: "username", Column: "username", Op: filters.FILTER_EQ},
		{QueryKey: "username__contains", Column: "username", Op: filters.FILTER_CONTAINS},
		{QueryKey: "email", Column: "email", Op: filters.FILTER_EQ},
	}
	searchFields := []string{"username", "email"}
	orderingFields := []string{"id", "username", "age"}
	filterActions := controller.FilterAction(c, filterOptions, searchFields, orderingFields, "-id")

	users, err := controller.service.List(ctx, offset, limit, filterActions...)
	if err != nil {
		controller.HandleError(c, err, 0)
		return
	}
	for _, user := range users {
		logger.Info("读取用户", zap.Uint("id", user.ID), zap.String("username", user.Username))
	}

	controller.HandleText(c, "数据读取成功")
}

// Update 更新数据
//   - statement（默认）：一条UPDATE语句把id=1的用户名改为王五
//   - load：先查询id=1的用户，改名为历史后保存
func (controller *CrudController) Update(c *gin.Context) {
	var form forms.UserActionForm
	if err := c.ShouldBindQuery(&form); err != nil {
		controller.HandleError(c, err, http.StatusBadRequest)
		return
	}
	if err := form.Validate("statement", "statement", "load"); err != nil {
		controller.HandleError(c, err, 0)
		return
	}

	ctx := c.Request.Context()
	if form.Action == "load" {
		form.SetDefault(1, "历史")
		if _, err := controller.service.Rename(ctx, form.ID, form.Username); err != nil {
			controller.HandleError(c, err, 0)
			return
		}
	} else {
		form.SetDefault(1, "王五")
		if _, err := controller.service.RenameByStatement(ctx, form.ID, form.Username); err != nil {
			controller.HandleError(c, err, 0)
			return
		}
	}

	controller.HandleText(c, "更新成功")
}

// Delete 删除数据
//   - statement（默认）：一条DELETE语句删除id=2的用户
//   - load：先查询id=1的用户再删除
func (controller *CrudController) Delete(c *gin.Context) {
	var form forms.UserActionForm
	if err := c.ShouldBindQuery(&form); err != nil {
		controller.HandleError(c, err, http.StatusBadRequest)
		return
	}
	if err := form.Validate("statement", "statement", "load"); err != nil {
		controller.HandleError(c, err, 0)
		return
	}

	ctx := c.Request.Context()
	if form.Action == "load" {
		form.SetDefault(1, "")
		if err := controller.service.Delete(ctx, form.ID); err != nil {
			controller.HandleError(c, err, 0)
			return
		}
	} else {
		form.SetDefault(2, "")
		if _, err := controller.service.DeleteByStatement(ctx, form.ID); err != nil {
			controller.HandleError(c, err, 0)
			return
		}
	}

	controller.HandleText(c, "删除成功")
}
