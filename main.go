// Package main Web课程示例：gin路由、模板与gorm关系映射
//
// 每节课程是一组路由，演示一个知识点：
// 1. 路由传参 (path, query)
// 2. 请求方法与重定向 (method)
// 3. 模板控制语句与模板继承 (control, extend)
// 4. ORM增删改查与一对多、多对多、一对一关系 (crud, one2many, many2many, one2one)
//
// 通过环境变量LESSON选择挂载的课程，默认all挂载全部课程
package main

import (
	"github.com/codelieche/lessons/pkg/app"
	"github.com/codelieche/lessons/pkg/utils/logger"
)

func main() {
	logger.Info("Lessons 启动中...")
	app.Run()
	logger.Info("Lessons 已停止")
}
