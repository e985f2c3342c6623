package controllers

import (
	"net/http"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/codelieche/lessons/pkg/utils/controllers"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// PageUser 模板中使用的用户对象
type PageUser struct {
	Name string
	Age  int
}

// PageController 模板页面
type PageController struct {
	controllers.BaseController
}

// NewPageController 创建PageController实例
func NewPageController() *PageController {
	return &PageController{}
}

// Control 模板控制语句：if判断和range循环
func (controller *PageController) Control(c *gin.Context) {
	data := gin.H{
		"hobby": "游戏",
		"person": map[string]string{
			"name": "zhangsan",
		},
		"user":  PageUser{Name: "华三", Age: 18},
		"books": []string{"三国演义", "水浒传", "西游记", "红楼梦"},
	}

	session := sessions.Default(c)
	if lastName, ok := session.Get(config.SessionLastNameKey).(string); ok && lastName != "" {
		data["last_name"] = lastName
	}

	c.HTML(http.StatusOK, "control.html", data)
}

// Extend 模板继承
func (controller *PageController) Extend(c *gin.Context) {
	c.HTML(http.StatusOK, "extend.html", nil)
}
