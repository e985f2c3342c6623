package filters

import (
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	FILTER_EQ = iota
	FILTER_NEQ
	FILTER_CONTAINS
	FILTER_GT
	FILTER_GTE
	FILTER_LT
	FILTER_LTE
	FILTER_IN
)

// Filter 可以作用到gorm查询上的过滤动作
type Filter interface {
	Filter(db *gorm.DB) *gorm.DB
}

type NewClauseExpressionFunc = func(column string, value interface{}) clause.Expression

var ClauseExpressionMap = map[int]NewClauseExpressionFunc{
	FILTER_EQ: func(column string, value interface{}) clause.Expression {
		return clause.Eq{Column: clause.Column{Name: column}, Value: value}
	},
	FILTER_NEQ: func(column string, value interface{}) clause.Expression {
		return clause.Neq{Column: clause.Column{Name: column}, Value: value}
	},
	FILTER_CONTAINS: func(column string, value interface{}) clause.Expression {
		return Contains{Column: clause.Column{Name: column}, Value: value}
	},
	FILTER_GT: func(column string, value interface{}) clause.Expression {
		return clause.Gt{Column: clause.Column{Name: column}, Value: value}
	},
	FILTER_GTE: func(column string, value interface{}) clause.Expression {
		return clause.Gte{Column: clause.Column{Name: column}, Value: value}
	},
	FILTER_LT: func(column string, value interface{}) clause.Expression {
		return clause.Lt{Column: clause.Column{Name: column}, Value: value}
	},
	FILTER_LTE: func(column string, value interface{}) clause.Expression {
		return clause.Lte{Column: clause.Column{Name: column}, Value: value}
	},
	FILTER_IN: func(column string, value interface{}) clause.Expression {
		var values []interface{}
		reflectValue := reflect.ValueOf(value)
		if reflectValue.Kind() != reflect.Slice {
			values = append(values, value)
		} else {
			for i := 0; i < reflectValue.Len(); i++ {
				values = append(values, reflectValue.Index(i).Interface())
			}
		}
		return clause.IN{Column: clause.Column{Name: column}, Values: values}
	},
}

// Query 查询参数来源，*gin.Context满足此接口
type Query interface {
	Query(key string) string
}

// FilterOption 单个字段的过滤选项
type FilterOption struct {
	QueryKey string
	Column   string
	Value    interface{}
	Op       int
}

// SetValueByQuery 从查询参数中读取值
func (o *FilterOption) SetValueByQuery(q Query) {
	queryKey := o.QueryKey
	if queryKey == "" {
		queryKey = o.Column
	}

	if value := q.Query(queryKey); value != "" {
		o.Value = value
	}
}

// ParseExpression 把选项转换为gorm表达式，值为空时返回nil
func (o *FilterOption) ParseExpression() clause.Expression {
	if o.Value == nil || o.Value == "" || o.Column == "" {
		return nil
	}
	if newClauseExpressionFunc, exist := ClauseExpressionMap[o.Op]; exist {
		return newClauseExpressionFunc(o.Column, o.Value)
	}
	return nil
}

// Filter 实现Filter接口
func (o *FilterOption) Filter(db *gorm.DB) *gorm.DB {
	if c := o.ParseExpression(); c != nil {
		db = db.Clauses(c)
	}
	return db
}
