package monitoring

import (
	"context"
	"testing"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/services"
	"github.com/codelieche/lessons/pkg/store"
	"github.com/codelieche/lessons/pkg/utils/testdb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Collect(t *testing.T) {
	db := testdb.New(t)
	userStore := store.NewUserStore(db)
	permissionStore := store.NewPermissionStore(db)
	users := services.NewUserService(userStore)
	departments := services.NewDepartmentService(store.NewDepartmentStore(db), permissionStore)
	permissions := services.NewPermissionService(permissionStore)

	ctx := context.Background()
	_, err := users.CreateMany(ctx, []*core.User{{Username: "小王"}, {Username: "小张"}})
	require.NoError(t, err)
	_, err = permissions.Create(ctx, &core.Permission{
		Name:        "登录页",
		Departments: []*core.Department{{Name: "综管部"}, {Name: "财务部"}},
	})
	require.NoError(t, err)

	collector := NewCollector("@every 30s", db, users, departments, permissions)
	require.NoError(t, collector.Collect(ctx))

	assert.Equal(t, float64(2), testutil.ToFloat64(GlobalMetrics.UsersTotal))
	assert.Equal(t, float64(2), testutil.ToFloat64(GlobalMetrics.DepartmentsTotal))
	assert.Equal(t, float64(1), testutil.ToFloat64(GlobalMetrics.PermissionsTotal))
}

func TestCollector_InvalidSpec(t *testing.T) {
	db := testdb.New(t)
	userStore := store.NewUserStore(db)
	permissionStore := store.NewPermissionStore(db)

	collector := NewCollector("not a spec", db,
		services.NewUserService(userStore),
		services.NewDepartmentService(store.NewDepartmentStore(db), permissionStore),
		services.NewPermissionService(permissionStore))
	assert.Error(t, collector.Start())
}
