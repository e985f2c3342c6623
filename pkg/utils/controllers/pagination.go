package controllers

import (
	"github.com/codelieche/lessons/pkg/utils/types"
)

var pageConfig *types.PaginationConfig

func SetPaginationConfig(config *types.PaginationConfig) {
	pageConfig = config
}

func init() {
	SetPaginationConfig(&types.PaginationConfig{
		MaxPage:            1000,
		PageQueryParam:     "page",
		MaxPageSize:        100,
		PageSizeQueryParam: "page_size",
	})
}
