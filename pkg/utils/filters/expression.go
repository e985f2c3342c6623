package filters

import (
	"fmt"

	"gorm.io/gorm/clause"
)

// Contains 包含查询类型（区分大小写）
type Contains clause.Like

// Build 构建SQL：column LIKE '%value%'
func (c Contains) Build(builder clause.Builder) {
	builder.WriteQuoted(c.Column)
	builder.WriteString(" LIKE ")
	builder.AddVar(builder, fmt.Sprintf("%%%s%%", c.Value))
}
