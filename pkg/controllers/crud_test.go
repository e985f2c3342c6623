package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/codelieche/lessons/pkg/core"
	"github.com/codelieche/lessons/pkg/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCrudController_Sequence(t *testing.T) {
	r, db := newTestRouter(t)

	w := doGet(r, "/create")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "数据添加成功", w.Body.String())

	w = doGet(r, "/create?action=one")
	assert.Equal(t, http.StatusOK, w.Code)

	var users []core.User
	require.NoError(t, db.Order("id").Find(&users).Error)
	require.Len(t, users, 3)
	assert.Equal(t, "小王", users[0].Username)
	assert.Equal(t, "小张", users[1].Username)
	assert.Equal(t, "lili", users[2].Username)
	assert.Equal(t, "asledfgo", users[0].Password)

	w = doGet(r, "/read")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "数据读取成功", w.Body.String())

	w = doGet(r, "/read?username__contains="+url.QueryEscape("小")+"&ordering=id&page=1&page_size=1")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, "/read?action=one&id=3")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doGet(r, "/read?action=one&id=30")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doGet(r, "/update")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "更新成功", w.Body.String())
	var first core.User
	require.NoError(t, db.First(&first, 1).Error)
	assert.Equal(t, "王五", first.Username)

	w = doGet(r, "/update?action=load&id=3&username="+url.QueryEscape("赵六"))
	assert.Equal(t, http.StatusOK, w.Code)
	var third core.User
	require.NoError(t, db.First(&third, 3).Error)
	assert.Equal(t, "赵六", third.Username)

	w = doGet(r, "/delete")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "删除成功", w.Body.String())

	// 语句方式删除不存在的记录不报错
	w = doGet(r, "/delete")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, "/delete?action=load&id=3")
	assert.Equal(t, http.StatusOK, w.Code)
	w = doGet(r, "/delete?action=load&id=3")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var remaining []core.User
	require.NoError(t, db.Order("id").Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, uint(1), remaining[0].ID)
}

func TestCrudController_ReadAll(t *testing.T) {
	r, db := newTestRouter(t)

	users := make([]*core.User, 0, 15)
	for i := 1; i <= 15; i++ {
		users = append(users, &core.User{Username: fmt.Sprintf("user%02d", i), Password: "asledfgo"})
	}
	require.NoError(t, db.Create(&users).Error)

	readUsers := func(target string) []string {
		observed, logs := observer.New(zapcore.InfoLevel)
		restore := logger.ReplaceLogger(zap.New(observed))
		defer restore()

		w := doGet(r, target)
		require.Equal(t, http.StatusOK, w.Code, target)
		var names []string
		for _, entry := range logs.FilterMessage("读取用户").All() {
			names = append(names, entry.ContextMap()["username"].(string))
		}
		return names
	}

	// 不分页时读取全部，按id倒序
	names := readUsers("/read")
	require.Len(t, names, 15)
	assert.Equal(t, "user15", names[0])
	assert.Equal(t, "user01", names[14])

	names = readUsers("/read?page=2&page_size=10")
	require.Len(t, names, 5)
	assert.Equal(t, "user05", names[0])

	assert.Len(t, readUsers("/read?page_size=4"), 4)
}

func TestCrudController_BadRequest(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, doGet(r, "/create?action=drop").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(r, "/update?id=abc").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(r, "/read?action=one").Code)
	assert.Equal(t, http.StatusNotFound, doGet(r, "/update?action=load").Code)
}
