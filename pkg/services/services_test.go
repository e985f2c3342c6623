package services

import (
	"context"
	"testing"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/store"
	"github.com/codelieche/lessons/pkg/utils/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServices struct {
	db          *gorm.DB
	users       core.UserService
	departments core.DepartmentService
	permissions core.PermissionService
	extensions  core.UserExtensionService
}

func newTestServices(t *testing.T) *testServices {
	db := testdb.New(t)
	userStore := store.NewUserStore(db)
	permissionStore := store.NewPermissionStore(db)
	return &testServices{
		db:          db,
		users:       NewUserService(userStore),
		departments: NewDepartmentService(store.NewDepartmentStore(db), permissionStore),
		permissions: NewPermissionService(permissionStore),
		extensions:  NewUserExtensionService(store.NewUserExtensionStore(db), userStore),
	}
}

func TestUserService_RenameAndDelete(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.users.CreateMany(ctx, []*core.User{{Username: "小王"}, {Username: "小张"}})
	require.NoError(t, err)

	user, err := s.users.Rename(ctx, 1, "王五")
	require.NoError(t, err)
	assert.Equal(t, "王五", user.Username)

	affected, err := s.users.RenameByStatement(ctx, 2, "赵六")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// 不存在的记录：语句方式不报错，加载方式返回ErrNotFound
	affected, err = s.users.RenameByStatement(ctx, 99, "赵六")
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	_, err = s.users.Rename(ctx, 99, "赵六")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = s.users.Rename(ctx, 1, " ")
	assert.ErrorIs(t, err, core.ErrBadRequest)

	affected, err = s.users.DeleteByStatement(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	require.NoError(t, s.users.Delete(ctx, 1))
	assert.ErrorIs(t, s.users.Delete(ctx, 1), core.ErrNotFound)

	count, err := s.users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUserService_CreateValidation(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.users.Create(ctx, &core.User{})
	assert.ErrorIs(t, err, core.ErrBadRequest)

	_, err = s.users.CreateMany(ctx, []*core.User{{Username: "小王"}, {Username: ""}})
	assert.ErrorIs(t, err, core.ErrBadRequest)

	count, err := s.users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDepartmentService_UsersAndPermissions(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	department, err := s.departments.Create(ctx, &core.Department{Name: "技术部"})
	require.NoError(t, err)

	_, err = s.departments.AddUsers(ctx, department.ID, &core.User{Username: "李四"})
	require.NoError(t, err)
	users, err := s.departments.Users(ctx, department.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "李四", users[0].Username)

	_, err = s.departments.GrantPermissions(ctx, department.ID,
		&core.Permission{Name: "访问首页"}, &core.Permission{Name: "访问用户"})
	require.NoError(t, err)

	require.NoError(t, s.departments.RevokePermission(ctx, department.ID, 1))
	// 已经移除的关联再次移除不报错
	require.NoError(t, s.departments.RevokePermission(ctx, department.ID, 1))

	permissions, err := s.departments.Permissions(ctx, department.ID)
	require.NoError(t, err)
	require.Len(t, permissions, 1)
	assert.Equal(t, "访问用户", permissions[0].Name)

	assert.ErrorIs(t, s.departments.RevokePermission(ctx, department.ID, 99), core.ErrNotFound)
	_, err = s.departments.Users(ctx, 99)
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = s.departments.Create(ctx, &core.Department{})
	assert.ErrorIs(t, err, core.ErrBadRequest)
}

func TestPermissionService_Departments(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	permission, err := s.permissions.Create(ctx, &core.Permission{
		Name:        "登录页",
		Departments: []*core.Department{{Name: "综管部"}, {Name: "财务部"}},
	})
	require.NoError(t, err)

	departments, err := s.permissions.Departments(ctx, "登录页")
	require.NoError(t, err)
	require.Len(t, departments, 2)

	_, err = s.permissions.AddDepartments(ctx, permission.ID, &core.Department{Name: "技术部"})
	require.NoError(t, err)
	departments, err = s.permissions.Departments(ctx, "登录页")
	require.NoError(t, err)
	assert.Len(t, departments, 3)

	_, err = s.permissions.Departments(ctx, "不存在")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUserExtensionService_SetForUser(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	_, err := s.extensions.SetForUser(ctx, 1, &core.UserExtension{University: "北京大学"})
	assert.ErrorIs(t, err, core.ErrNotFound)

	user, err := s.users.Create(ctx, &core.User{Username: "小王"})
	require.NoError(t, err)

	_, err = s.extensions.SetForUser(ctx, user.ID, &core.UserExtension{University: "北京大学"})
	require.NoError(t, err)
	_, err = s.extensions.SetForUser(ctx, user.ID, &core.UserExtension{University: "北京大学"})
	require.NoError(t, err)

	extension, err := s.extensions.FindByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "北京大学", extension.University)

	var linked int64
	require.NoError(t, s.db.Model(&core.UserExtension{}).Where("user_id = ?", user.ID).Count(&linked).Error)
	assert.Equal(t, int64(1), linked)

	_, err = s.extensions.SetForUser(ctx, user.ID, &core.UserExtension{})
	assert.ErrorIs(t, err, core.ErrBadRequest)
}
