package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/filters"
	"github.com/codelieche/lessons/pkg/utils/types"
	"github.com/gin-gonic/gin"
)

// BaseController Web控制器基础结构体
// 提供统一的响应处理、错误处理、分页解析和过滤器组合
type BaseController struct {
}

// HandleOK 处理成功响应（200 OK），code为0表示成功
func (controller *BaseController) HandleOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, types.Response{
		Code:    0,
		Data:    data,
		Message: "ok",
	})
}

// HandleText 返回纯文本
// 课程示例的接口都只返回一句确认信息
func (controller *BaseController) HandleText(c *gin.Context, text string) {
	c.String(http.StatusOK, text)
}

// HandleError 处理错误响应
// code传0时根据错误类型选择状态码
func (controller *BaseController) HandleError(c *gin.Context, err error, code int) {
	if code == 0 {
		code = StatusCode(err)
	}
	if code == http.StatusNotFound {
		controller.Handle404(c, err)
		return
	}

	c.JSON(code, types.Response{
		Code:    code,
		Message: err.Error(),
	})
}

// HandleError400 处理400错误响应（请求参数错误）
func (controller *BaseController) HandleError400(c *gin.Context, err error) {
	controller.HandleError(c, err, http.StatusBadRequest)
}

// Handle404 处理404错误响应（资源不存在）
func (controller *BaseController) Handle404(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, types.Response{
		Code:    http.StatusNotFound,
		Message: err.Error(),
	})
}

// HandleError500 处理500错误响应（内部服务器错误）
func (controller *BaseController) HandleError500(c *gin.Context, err error) {
	controller.HandleError(c, err, http.StatusInternalServerError)
}

// StatusCode 错误对应的HTTP状态码
func StatusCode(err error) int {
	switch {
	case errors.Is(err, core.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, core.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ParsePagination 解析分页参数，非法值回退到默认值
func (controller *BaseController) ParsePagination(c *gin.Context) *types.Pagination {
	page, err := strconv.Atoi(c.DefaultQuery(pageConfig.PageQueryParam, "1"))
	if err != nil || page < 1 {
		page = 1
	}
	// 限制最大页码，防止恶意请求
	if pageConfig.MaxPage > 0 && page > pageConfig.MaxPage {
		page = pageConfig.MaxPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery(pageConfig.PageSizeQueryParam, "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}
	if pageConfig.MaxPageSize > 0 && pageSize > pageConfig.MaxPageSize {
		pageSize = pageConfig.MaxPageSize
	}

	return &types.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// FilterAction 组合过滤、搜索、排序三种动作
//   - filterOptions: 可用的过滤字段和操作符
//   - searchFields: 模糊搜索的字段
//   - orderingFields: 允许排序的字段
//   - defaultOrdering: 未传ordering参数时使用的排序
func (controller *BaseController) FilterAction(
	c *gin.Context, filterOptions []*filters.FilterOption,
	searchFields []string, orderingFields []string, defaultOrdering string) (filterActions []filters.Filter) {

	if filterAction := filters.FromQueryGetFilterAction(c, filterOptions); filterAction != nil {
		filterActions = append(filterActions, filterAction)
	}

	if searchAction := filters.FromQueryGetSearchAction(c, searchFields); searchAction != nil {
		filterActions = append(filterActions, searchAction)
	}

	if orderingAction := filters.FromQueryGetOrderingActionWithDefault(c, orderingFields, defaultOrdering); orderingAction != nil {
		filterActions = append(filterActions, orderingAction)
	}

	return filterActions
}
