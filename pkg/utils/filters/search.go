package filters

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const SearchParam string = "search"

// SearchAction 多字段模糊搜索，字段之间为OR关系
type SearchAction struct {
	Fields []string
	Value  interface{}
}

func NewSearchAction(fields []string, value interface{}) Filter {
	return &SearchAction{Fields: fields, Value: value}
}

// Filter 实现Filter接口
func (s *SearchAction) Filter(db *gorm.DB) *gorm.DB {
	if s.Value == nil || s.Value == "" || len(s.Fields) < 1 {
		return db
	}

	exprs := make([]clause.Expression, 0, len(s.Fields))
	for _, field := range s.Fields {
		exprs = append(exprs, clause.Like{
			Column: clause.Column{Name: field},
			Value:  fmt.Sprintf("%%%v%%", s.Value),
		})
	}
	return db.Where(clause.Or(exprs...))
}

func FromQueryGetSearchAction(q Query, fields []string) *SearchAction {
	search := q.Query(SearchParam)
	if search == "" {
		return nil
	}
	return &SearchAction{
		Fields: fields,
		Value:  search,
	}
}
