package store

import (
	"context"
	"testing"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionStore_CreateWithDepartments(t *testing.T) {
	db := testdb.New(t)
	permissions := NewPermissionStore(db)
	ctx := context.Background()

	permission, err := permissions.Create(ctx, &core.Permission{
		Name: "登录页",
		Departments: []*core.Department{
			{Name: "综管部"},
			{Name: "财务部"},
		},
	})
	require.NoError(t, err)

	found, err := permissions.FindByName(ctx, "登录页")
	require.NoError(t, err)
	assert.Equal(t, permission.ID, found.ID)

	departments, err := permissions.FindDepartments(ctx, found)
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "综管部", departments[0].Name)
	assert.Equal(t, "财务部", departments[1].Name)

	require.NoError(t, permissions.AppendDepartments(ctx, found, &core.Department{Name: "技术部"}))
	departments, err = permissions.FindDepartments(ctx, found)
	require.NoError(t, err)
	assert.Len(t, departments, 3)

	count, err := permissions.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
