package config

import "strings"

// LessonAll 挂载全部课程
const LessonAll = "all"

// lesson 课程配置
type lesson struct {
	Name string // 要挂载的课程：all, path, query, method, control, extend, crud, one2many, many2many, one2one
}

var Lesson *lesson

func parseLesson() {
	Lesson = &lesson{
		Name: strings.ToLower(strings.TrimSpace(GetDefaultEnv("LESSON", LessonAll))),
	}
}

func init() {
	parseLesson()
}
