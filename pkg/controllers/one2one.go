package controllers

import (
	"net/http"

	"github.com/codelieche/lessons/pkg/controllers/forms"
	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/controllers"
	"github.com/gin-gonic/gin"
)

// One2OneController 用户和扩展信息的一对一关系
type One2OneController struct {
	controllers.BaseController
	service core.UserExtensionService
}

// NewOne2OneController 创建One2OneController实例
func NewOne2OneController(service core.UserExtensionService) *One2OneController {
	return &One2OneController{
		service: service,
	}
}

// One2One 给用户设置扩展信息：北京大学
func (controller *One2OneController) One2One(c *gin.Context) {
	var form forms.RelationActionForm
	if err := c.ShouldBindQuery(&form); err != nil {
		controller.HandleError(c, err, http.StatusBadRequest)
		return
	}
	form.SetDefault()

	extension := &core.UserExtension{University: "北京大学"}
	if _, err := controller.service.SetForUser(c.Request.Context(), form.UserID, extension); err != nil {
		controller.HandleError(c, err, 0)
		return
	}

	controller.HandleText(c, "success")
}
