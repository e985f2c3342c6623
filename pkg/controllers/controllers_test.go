package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codelieche/lessons/pkg/services"
	"github.com/codelieche/lessons/pkg/store"
	"github.com/codelieche/lessons/pkg/utils/testdb"
	"github.com/codelieche/lessons/pkg/views"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter 挂载全部课程路由，使用内存数据库
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testdb.New(t)

	userStore := store.NewUserStore(db)
	departmentStore := store.NewDepartmentStore(db)
	permissionStore := store.NewPermissionStore(db)
	userService := services.NewUserService(userStore)
	departmentService := services.NewDepartmentService(departmentStore, permissionStore)
	permissionService := services.NewPermissionService(permissionStore)
	extensionService := services.NewUserExtensionService(store.NewUserExtensionStore(db), userStore)

	renderer, err := views.NewRenderer(views.FS(), nil)
	require.NoError(t, err)

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(sessions.Sessions("lessons_sessionid", cookie.NewStore([]byte("test-secret"))))

	basic := NewBasicController()
	r.GET("/", basic.Hello)
	r.GET("/blog/:blog_id", basic.BlogByPath)
	r.GET("/blog", basic.BlogByQuery)
	r.GET("/login", basic.Login)
	r.GET("/profile", basic.Profile)

	page := NewPageController()
	r.GET("/control", page.Control)
	r.GET("/extend", page.Extend)

	crud := NewCrudController(userService)
	r.GET("/create", crud.Create)
	r.GET("/read", crud.Read)
	r.GET("/update", crud.Update)
	r.GET("/delete", crud.Delete)

	r.GET("/one2many", NewOne2ManyController(userService, departmentService).One2Many)
	r.GET("/many2many", NewMany2ManyController(departmentService, permissionService).Many2Many)
	r.GET("/one2one", NewOne2OneController(extensionService).One2One)

	health := NewHealthController(db)
	r.GET("/health", health.Health)
	r.GET("/liveness", health.Liveness)
	r.GET("/readiness", health.Readiness)
	r.GET("/metrics", NewMetricsController().Metrics)

	return r, db
}

func doGet(r http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	return w
}
