package app

import (
	"net/http"
	"testing"

	"github.com/codelieche/lessons/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountLessons_Dedup(t *testing.T) {
	handler := func(c *gin.Context) {}
	lessons := []lesson{
		{Name: "a", Routes: []route{{Method: http.MethodGet, Path: "/", Handler: handler}}},
		{Name: "b", Routes: []route{
			{Method: http.MethodGet, Path: "/", Handler: handler},
			{Method: http.MethodGet, Path: "/", AllPath: "/b", Handler: handler},
		}},
	}

	// 重复注册同一路由gin会panic
	r := gin.New()
	infos, err := mountLessons(r, lessons, config.LessonAll)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "/b", infos[1].Routes[1].Path)
	assert.Len(t, r.Routes(), 2)

	r = gin.New()
	infos, err = mountLessons(r, lessons, "b")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Len(t, r.Routes(), 1)
}
