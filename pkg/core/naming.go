package core

import (
	"fmt"

	"gorm.io/gorm/schema"
)

// ConventionNamer 约束命名约定
// 让迁移生成的约束名固定可预期，而不是由数据库随机生成：
//
//	ix: ix_<table>_<column>
//	uq: uq_<table>_<column>
//	ck: ck_<table>_<name>
//	fk: fk_<table>_<column>_<referred_table>
type ConventionNamer struct {
	schema.NamingStrategy
}

// NewConventionNamer 创建命名约定
func NewConventionNamer() ConventionNamer {
	return ConventionNamer{
		NamingStrategy: schema.NamingStrategy{
			IdentifierMaxLength: 64,
		},
	}
}

// IndexName 索引名：ix_<table>_<column>
func (n ConventionNamer) IndexName(table, column string) string {
	return fmt.Sprintf("ix_%s_%s", table, n.ColumnName(table, column))
}

// UniqueName 唯一约束名：uq_<table>_<column>
func (n ConventionNamer) UniqueName(table, column string) string {
	return fmt.Sprintf("uq_%s_%s", table, n.ColumnName(table, column))
}

// CheckerName 检查约束名：ck_<table>_<name>
func (n ConventionNamer) CheckerName(table, column string) string {
	return fmt.Sprintf("ck_%s_%s", table, n.ColumnName(table, column))
}

// RelationshipFKName 外键名：fk_<外键所在表>_<外键列>_<被引用表>
func (n ConventionNamer) RelationshipFKName(rel schema.Relationship) string {
	for _, ref := range rel.References {
		if ref.PrimaryKey == nil || ref.ForeignKey == nil {
			continue
		}
		if rel.JoinTable != nil && !ref.OwnPrimaryKey {
			continue
		}
		if ref.ForeignKey.Schema == nil || ref.PrimaryKey.Schema == nil {
			continue
		}
		return fmt.Sprintf("fk_%s_%s_%s",
			ref.ForeignKey.Schema.Table, ref.ForeignKey.DBName, ref.PrimaryKey.Schema.Table)
	}
	return n.NamingStrategy.RelationshipFKName(rel)
}
