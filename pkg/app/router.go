package app

import (
	"net/http"
	"strconv"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/codelieche/lessons/pkg/controllers"
	"github.com/codelieche/lessons/pkg/middleware"
	"github.com/codelieche/lessons/pkg/monitoring"
	"github.com/codelieche/lessons/pkg/services"
	"github.com/codelieche/lessons/pkg/store"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/codelieche/lessons/pkg/views"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	sessionsredis "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newSessionStore 根据配置创建会话存储：cookie（默认）或redis
func newSessionStore() (sessions.Store, error) {
	secret := []byte(config.Web.SessionSecretKey)

	var store sessions.Store
	if config.Web.SessionStore == "redis" {
		redisStore, err := sessionsredis.NewStoreWithDB(
			config.Redis.PoolSize, "tcp", config.Redis.GetAddr(),
			"", config.Redis.Password, strconv.Itoa(config.Redis.DB), secret)
		if err != nil {
			return nil, err
		}
		store = redisStore
	} else {
		store = cookie.NewStore(secret)
	}

	store.Options(sessions.Options{
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   3600 * 24 * 7, // 7天过期
	})
	return store, nil
}

// initRouter 初始化所有路由
//
// 1. 会话、请求日志、监控中间件
// 2. 按config.Lesson挂载课程路由
// 3. 健康检查、监控指标、课程列表
//
// 返回业务指标采集器，未开启监控时为nil
func initRouter(app *gin.Engine, db *gorm.DB) (*monitoring.Collector, error) {
	renderer, err := views.NewRenderer(views.FS(), nil)
	if err != nil {
		return nil, err
	}
	app.HTMLRender = renderer

	sessionStore, err := newSessionStore()
	if err != nil {
		return nil, err
	}
	app.Use(sessions.Sessions(config.Web.SessionIDName, sessionStore))
	app.Use(middleware.LoggingMiddleware())
	if config.Metrics.Enabled {
		app.Use(middleware.PrometheusMiddleware())
	}

	// 存储层和服务层
	userStore := store.NewUserStore(db)
	departmentStore := store.NewDepartmentStore(db)
	permissionStore := store.NewPermissionStore(db)
	userExtensionStore := store.NewUserExtensionStore(db)

	userService := services.NewUserService(userStore)
	departmentService := services.NewDepartmentService(departmentStore, permissionStore)
	permissionService := services.NewPermissionService(permissionStore)
	userExtensionService := services.NewUserExtensionService(userExtensionStore, userStore)

	// ========== 课程路由 ==========
	h := &handlers{
		basic:     controllers.NewBasicController(),
		page:      controllers.NewPageController(),
		crud:      controllers.NewCrudController(userService),
		one2many:  controllers.NewOne2ManyController(userService, departmentService),
		many2many: controllers.NewMany2ManyController(departmentService, permissionService),
		one2one:   controllers.NewOne2OneController(userExtensionService),
	}
	infos, err := mountLessons(app, buildLessons(h), config.Lesson.Name)
	if err != nil {
		return nil, err
	}
	logger.Info("课程路由已挂载", zap.String("lesson", config.Lesson.Name), zap.Int("count", len(infos)))

	// ========== 运维接口 ==========
	healthController := controllers.NewHealthController(db)
	app.GET("/health", healthController.Health)
	app.GET("/liveness", healthController.Liveness)
	app.GET("/readiness", healthController.Readiness)
	app.GET("/lessons", controllers.NewLessonController(infos).List)

	if !config.Metrics.Enabled {
		return nil, nil
	}
	app.GET("/metrics", controllers.NewMetricsController().Metrics)

	collector := monitoring.NewCollector(config.Metrics.CollectSpec, db, userService, departmentService, permissionService)
	return collector, nil
}
