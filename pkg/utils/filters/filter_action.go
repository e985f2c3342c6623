package filters

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FilterAction 多个过滤选项组成的过滤动作
type FilterAction struct {
	Options []*FilterOption
}

// Filter 实现Filter接口
func (f *FilterAction) Filter(db *gorm.DB) *gorm.DB {
	if len(f.Options) < 1 {
		return db
	}

	conds := []clause.Expression{}
	for _, opt := range f.Options {
		if c := opt.ParseExpression(); c != nil {
			conds = append(conds, c)
		}
	}

	if len(conds) > 0 {
		db = db.Clauses(conds...)
	}
	return db
}

// FromQueryGetFilterAction 根据查询参数生成过滤动作，没有任何有效条件时返回nil
func FromQueryGetFilterAction(q Query, opts []*FilterOption) Filter {
	var options []*FilterOption

	for _, opt := range opts {
		opt.SetValueByQuery(q)
		if opt.Value != nil && opt.Value != "" {
			options = append(options, opt)
		}
	}

	if len(options) < 1 {
		return nil
	}
	return &FilterAction{
		Options: options,
	}
}
