package filters

import (
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderingParam 排序参数的查询参数名常量
const OrderingParam string = "ordering"

// orderingRegMatch 可选的"-"前缀 + 字段名
var orderingRegMatch = regexp.MustCompile(`^(-)?([A-Za-z_][\w]*)$`)

// Ordering 多字段排序，"-"前缀表示降序
// Value格式如："username" 或 "-id" 或 "username,-id"
type Ordering struct {
	Fields []string // 允许排序的字段列表
	Value  string
}

func NewOrdering(fields []string, value string) Filter {
	return &Ordering{Fields: fields, Value: value}
}

// inFields 检查字段是否在允许排序的字段列表中
func (o *Ordering) inFields(field string) bool {
	for _, item := range o.Fields {
		if item == field {
			return true
		}
	}
	return false
}

// Columns 解析出有效的排序列，不在允许列表中的字段会被忽略
func (o *Ordering) Columns() []clause.OrderByColumn {
	var columns []clause.OrderByColumn
	for _, part := range strings.Split(o.Value, ",") {
		items := orderingRegMatch.FindStringSubmatch(strings.TrimSpace(part))
		if len(items) != 3 || !o.inFields(items[2]) {
			continue
		}
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Name: items[2]},
			Desc:   items[1] == "-",
		})
	}
	return columns
}

// Filter 实现Filter接口
func (o *Ordering) Filter(db *gorm.DB) *gorm.DB {
	for _, column := range o.Columns() {
		db = db.Order(column)
	}
	return db
}

// FromQueryGetOrderingActionWithDefault 从查询参数中创建排序动作
// 如果查询参数中没有排序信息，则使用提供的默认排序值
func FromQueryGetOrderingActionWithDefault(q Query, fields []string, value string) *Ordering {
	ordering := q.Query(OrderingParam)
	if ordering == "" {
		ordering = value
	}
	if ordering == "" {
		return nil
	}
	return &Ordering{
		Fields: fields,
		Value:  ordering,
	}
}
