package controllers

import (
	"github.com/codelieche/lessons/pkg/utils/controllers"
	"github.com/gin-gonic/gin"
)

// LessonRoute 课程中的一个路由
type LessonRoute struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// LessonInfo 已挂载课程的说明
type LessonInfo struct {
	Name   string        `json:"name"`
	Title  string        `json:"title"`
	Routes []LessonRoute `json:"routes"`
}

// LessonController 列出当前挂载的课程
type LessonController struct {
	controllers.BaseController
	lessons []LessonInfo
}

// NewLessonController 创建LessonController实例
func NewLessonController(lessons []LessonInfo) *LessonController {
	return &LessonController{
		lessons: lessons,
	}
}

// List 课程列表
func (controller *LessonController) List(c *gin.Context) {
	controller.HandleOK(c, controller.lessons)
}
