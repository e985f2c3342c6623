package app

import (
	"fmt"
	"net/http"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/codelieche/lessons/pkg/controllers"
	"github.com/gin-gonic/gin"
)

// route 课程中的一个路由
// 所有课程一起挂载时，AllPath不为空则改用AllPath，避免和其它课程的首页冲突
type route struct {
	Method  string
	Path    string
	AllPath string
	Handler gin.HandlerFunc
}

// lesson 一节课程：一组演示某个知识点的路由
type lesson struct {
	Name   string
	Title  string
	Routes []route
}

// handlers 课程用到的全部控制器
type handlers struct {
	basic     *controllers.BasicController
	page      *controllers.PageController
	crud      *controllers.CrudController
	one2many  *controllers.One2ManyController
	many2many *controllers.Many2ManyController
	one2one   *controllers.One2OneController
}

// buildLessons 按课程顺序返回所有课程
func buildLessons(h *handlers) []lesson {
	hello := route{Method: http.MethodGet, Path: "/", Handler: h.basic.Hello}
	login := route{Method: http.MethodGet, Path: "/login", Handler: h.basic.Login}
	profile := route{Method: http.MethodGet, Path: "/profile", Handler: h.basic.Profile}

	return []lesson{
		{
			Name:  "path",
			Title: "path传参",
			Routes: []route{
				hello,
				{Method: http.MethodGet, Path: "/blog/:blog_id", Handler: h.basic.BlogByPath},
			},
		},
		{
			Name:  "query",
			Title: "query传参",
			Routes: []route{
				hello,
				{Method: http.MethodGet, Path: "/blog", Handler: h.basic.BlogByQuery},
			},
		},
		{
			Name:   "method",
			Title:  "请求方法",
			Routes: []route{login, profile},
		},
		{
			Name:  "control",
			Title: "模板控制语句",
			Routes: []route{
				{Method: http.MethodGet, Path: "/", AllPath: "/control", Handler: h.page.Control},
				profile,
			},
		},
		{
			Name:  "extend",
			Title: "模板继承",
			Routes: []route{
				{Method: http.MethodGet, Path: "/", AllPath: "/extend", Handler: h.page.Extend},
			},
		},
		{
			Name:  "crud",
			Title: "数据库增删改查",
			Routes: []route{
				hello,
				{Method: http.MethodGet, Path: "/create", Handler: h.crud.Create},
				{Method: http.MethodGet, Path: "/read", Handler: h.crud.Read},
				{Method: http.MethodGet, Path: "/update", Handler: h.crud.Update},
				{Method: http.MethodGet, Path: "/delete", Handler: h.crud.Delete},
			},
		},
		{
			Name:  "one2many",
			Title: "一对多关系",
			Routes: []route{
				{Method: http.MethodGet, Path: "/one2many", Handler: h.one2many.One2Many},
			},
		},
		{
			Name:  "many2many",
			Title: "多对多关系",
			Routes: []route{
				hello,
				{Method: http.MethodGet, Path: "/many2many", Handler: h.many2many.Many2Many},
			},
		},
		{
			Name:  "one2one",
			Title: "一对一关系",
			Routes: []route{
				{Method: http.MethodGet, Path: "/one2one", Handler: h.one2one.One2One},
			},
		},
	}
}

// mountLessons 挂载课程
// name为all时挂载全部课程，同一个路由只注册一次
func mountLessons(r gin.IRoutes, lessons []lesson, name string) ([]controllers.LessonInfo, error) {
	var selected []lesson
	if name == config.LessonAll {
		selected = lessons
	} else {
		for _, l := range lessons {
			if l.Name == name {
				selected = append(selected, l)
				break
			}
		}
		if len(selected) == 0 {
			return nil, fmt.Errorf("未知的课程: %s", name)
		}
	}

	registered := map[string]bool{}
	infos := make([]controllers.LessonInfo, 0, len(selected))
	for _, l := range selected {
		info := controllers.LessonInfo{Name: l.Name, Title: l.Title}
		for _, rt := range l.Routes {
			path := rt.Path
			if name == config.LessonAll && rt.AllPath != "" {
				path = rt.AllPath
			}

			key := rt.Method + " " + path
			if !registered[key] {
				r.Handle(rt.Method, path, rt.Handler)
				registered[key] = true
			}
			info.Routes = append(info.Routes, controllers.LessonRoute{Method: rt.Method, Path: path})
		}
		infos = append(infos, info)
	}
	return infos, nil
}
