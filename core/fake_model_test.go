package core

import (
	"strings"

	"github.com/CodMac/attr-lens/model"
)

// --- 内存版 SourceModel，仅供测试引擎逻辑 ---

type fakeExpr struct{ text string }

func (e *fakeExpr) Text() string         { return e.text }
func (e *fakeExpr) AsCall() (Call, bool) { return nil, false }

type fakeCall struct {
	name string
	text string
	args []Expr
	decl *fakeDecl
	line int
}

func (c *fakeCall) Text() string         { return c.text }
func (c *fakeCall) AsCall() (Call, bool) { return c, true }
func (c *fakeCall) Name() string         { return c.name }
func (c *fakeCall) Arguments() []Expr    { return c.args }
func (c *fakeCall) Location() *model.Location {
	return &model.Location{FilePath: "Fake.java", StartLine: c.line, EndLine: c.line}
}
func (c *fakeCall) Enclosing() (Declaration, bool) {
	if c.decl == nil {
		return nil, false
	}
	return c.decl, true
}

type fakeDecl struct {
	name       string
	returnType string
	calls      []Call
}

func (d *fakeDecl) Name() string               { return d.name }
func (d *fakeDecl) Calls() []Call              { return d.calls }
func (d *fakeDecl) Location() *model.Location  { return nil }
func (d *fakeDecl) ReturnType() (string, bool) { return d.returnType, d.returnType != "" }

type fakeModel struct {
	decls []Declaration
}

func (m *fakeModel) FilePath() string                     { return "Fake.java" }
func (m *fakeModel) Declarations() ([]Declaration, error) { return m.decls, nil }

// ident 非调用表达式
func ident(text string) Expr { return &fakeExpr{text: text} }

// call 构造调用，文本按 name(arg0, arg1, ...) 渲染
func call(name string, args ...Expr) *fakeCall {
	texts := make([]string, 0, len(args))
	for _, a := range args {
		texts = append(texts, a.Text())
	}
	return &fakeCall{name: name, text: name + "(" + strings.Join(texts, ", ") + ")", args: args}
}

// receiverCall 带接收者的调用，例如 list.item(idx)
func receiverCall(receiver, name string, args ...Expr) *fakeCall {
	c := call(name, args...)
	c.text = receiver + "." + c.text
	return c
}

// method 构造声明，并以先序 (父调用在前) 展开 body 中的全部调用
func method(returnType, name string, body ...*fakeCall) *fakeDecl {
	d := &fakeDecl{name: name, returnType: returnType}
	var visit func(c *fakeCall)
	visit = func(c *fakeCall) {
		c.decl = d
		d.calls = append(d.calls, c)
		for _, a := range c.args {
			if inner, ok := a.(*fakeCall); ok {
				visit(inner)
			}
		}
	}
	for _, c := range body {
		visit(c)
	}
	return d
}

func unit(decls ...*fakeDecl) *fakeModel {
	m := &fakeModel{}
	for _, d := range decls {
		m.decls = append(m.decls, d)
	}
	return m
}

// wrapper 约定形态: W(getAttributeValue(node, ATTR), ATTR)
func wrapper(name string, node Expr, attr string) *fakeCall {
	return call(name, call(model.DefaultAccessor, node, ident(attr)), ident(attr))
}
