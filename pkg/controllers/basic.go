package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/codelieche/lessons/pkg/utils/controllers"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BasicController 路由传参和请求方法
type BasicController struct {
	controllers.BaseController
}

// NewBasicController 创建BasicController实例
func NewBasicController() *BasicController {
	return &BasicController{}
}

// Hello 首页
func (controller *BasicController) Hello(c *gin.Context) {
	controller.HandleText(c, "Hello World!")
}

// BlogByPath 通过路径传参：/blog/:blog_id
// blog_id只能由数字组成，带符号或者其它字符都返回404
func (controller *BasicController) BlogByPath(c *gin.Context) {
	value := c.Param("blog_id")
	if !isDigits(value) {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	blogID, err := strconv.Atoi(value)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	controller.HandleText(c, fmt.Sprintf("Blog %d", blogID))
}

// BlogByQuery 通过查询参数传参：/blog?blog_id=1
// 缺失或不是整数时默认为1
func (controller *BasicController) BlogByQuery(c *gin.Context) {
	blogID, err := strconv.Atoi(c.Query("blog_id"))
	if err != nil {
		blogID = 1
	}
	controller.HandleText(c, fmt.Sprintf("Blog %d", blogID))
}

// Login 登录页
func (controller *BasicController) Login(c *gin.Context) {
	controller.HandleText(c, "login page!")
}

// Profile 个人页，没有name参数时重定向到登录页
// 有效的name会记录到会话中
func (controller *BasicController) Profile(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session := sessions.Default(c)
	session.Set(config.SessionLastNameKey, name)
	if err := session.Save(); err != nil {
		logger.Error("保存会话失败", zap.Error(err))
	}

	controller.HandleText(c, fmt.Sprintf("name %s", name))
}

// isDigits 非空且全部是ASCII数字
func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
