package core

import "github.com/CodMac/attr-lens/model"

// --- 推导引擎所需的源码模型查询面 ---

// Expr 表达式节点
type Expr interface {
	// Text 表达式的文本渲染
	Text() string
	// AsCall 若表达式本身是调用表达式，返回其 Call 视图
	AsCall() (Call, bool)
}

// Call 调用表达式
type Call interface {
	Expr
	// Name 被调函数名
	Name() string
	// Arguments 有序实参列表
	Arguments() []Expr
	// Enclosing 最近的外层方法类声明
	Enclosing() (Declaration, bool)
	Location() *model.Location
}

// Declaration 方法类声明
type Declaration interface {
	Name() string
	// ReturnType 声明的返回类型文本
	ReturnType() (string, bool)
	// Calls 声明体内全部调用表达式 (任意深度，深度优先先序)
	Calls() []Call
	Location() *model.Location
}

// SourceModel 一个编译单元的可导航视图
type SourceModel interface {
	FilePath() string
	// Declarations 按遍历顺序枚举全部方法类声明
	Declarations() ([]Declaration, error)
}
