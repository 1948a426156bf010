package model

import (
	"strconv"
	"strings"
)

// AttributeBinding 是工具的核心输出结构：一次属性读取所推导出的 (节点引用, 类型, 必填性) 三元组
type AttributeBinding struct {
	// SourceNodeExpression: 被读取的文档节点/节点集合的表达式文本 (变量名或嵌套访问链)
	SourceNodeExpression string `json:"sourceNodeExpression" yaml:"sourceNodeExpression" msgpack:"sourceNodeExpression"`

	// ValueType: 外层声明的返回类型文本，不做进一步解释
	ValueType string `json:"type" yaml:"type" msgpack:"type"`

	// Required: 包装调用名不以可选后缀结尾时为 true
	Required bool `json:"required" yaml:"required" msgpack:"required"`

	// Method: 包装调用所在的声明名
	Method string `json:"method,omitempty" yaml:"method,omitempty" msgpack:"method,omitempty"`

	// Callee: 包装调用的函数名 (e.g., parseStringRequired)
	Callee string `json:"callee,omitempty" yaml:"callee,omitempty" msgpack:"callee,omitempty"`

	// Location: 包装调用在源码中的位置
	Location *Location `json:"location,omitempty" yaml:"location,omitempty" msgpack:"location,omitempty"`
}

// String 输出参考文本格式:
// AttributeBinding[sourceNodeExpression='<expr>', type='<type>', required=<bool>]
func (b *AttributeBinding) String() string {
	var sb strings.Builder
	sb.WriteString("AttributeBinding[")
	sb.WriteString("sourceNodeExpression='")
	sb.WriteString(b.SourceNodeExpression)
	sb.WriteString("', type='")
	sb.WriteString(b.ValueType)
	sb.WriteString("', required=")
	sb.WriteString(strconv.FormatBool(b.Required))
	sb.WriteString("]")
	return sb.String()
}
