package core

import (
	"errors"
	"fmt"

	"github.com/CodMac/attr-lens/model"
)

// ErrInputUnavailable 编译单元无法读取或无法解析
var ErrInputUnavailable = errors.New("input unavailable")

// ViolationKind 结构性假设被破坏的类别
type ViolationKind string

const (
	MissingPrefix          ViolationKind = "missing-prefix"           // 匹配到的调用名不以约定前缀开头
	NoTerminalArgument     ViolationKind = "no-terminal-argument"     // 节点引用递归到了无实参的调用
	NoEnclosingDeclaration ViolationKind = "no-enclosing-declaration" // 调用不在任何方法类声明内
	MissingReturnType      ViolationKind = "missing-return-type"      // 外层声明没有返回类型
)

// StructuralAssumptionViolation 文本匹配启发式在该输入上误判，整个分析运行随之失败
type StructuralAssumptionViolation struct {
	Kind     ViolationKind
	Callee   string
	CallText string
	FilePath string
	Location *model.Location
}

func (e *StructuralAssumptionViolation) Error() string {
	where := e.FilePath
	if e.Location != nil {
		where = fmt.Sprintf("%s:%d:%d", e.Location.FilePath, e.Location.StartLine, e.Location.StartColumn+1)
	}

	var msg string
	switch e.Kind {
	case MissingPrefix:
		msg = fmt.Sprintf("%s is not a wrapper call", e.Callee)
	case NoTerminalArgument:
		msg = fmt.Sprintf("%s has no argument to resolve a node reference from", e.Callee)
	case NoEnclosingDeclaration:
		msg = fmt.Sprintf("%s is not inside a method declaration", e.Callee)
	case MissingReturnType:
		msg = fmt.Sprintf("declaration enclosing %s has no return type", e.Callee)
	default:
		msg = fmt.Sprintf("%s violates %s", e.Callee, e.Kind)
	}

	if where != "" {
		msg = where + ": " + msg
	}
	if e.CallText != "" {
		msg += " (in `" + e.CallText + "`)"
	}
	return "structural assumption violated: " + msg
}

// AsViolation errors.As 的便捷封装
func AsViolation(err error) (*StructuralAssumptionViolation, bool) {
	var v *StructuralAssumptionViolation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
