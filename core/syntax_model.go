package core

import (
	"fmt"
	"regexp"

	"github.com/CodMac/attr-lens/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// DeclarationCapture Grammar.DeclarationQuery 中约定的捕获名
const DeclarationCapture = "declaration"

// SyntaxModel 基于 Tree-sitter 语法树与语言 Grammar 实现 SourceModel
type SyntaxModel struct {
	unit    *CompilationUnit
	grammar Grammar
}

func NewSyntaxModel(unit *CompilationUnit, grammar Grammar) *SyntaxModel {
	return &SyntaxModel{unit: unit, grammar: grammar}
}

func (m *SyntaxModel) FilePath() string { return m.unit.FilePath }

// Declarations 通过 Grammar 的查询语句枚举方法类声明，顺序即 Tree-sitter 的匹配顺序 (先序)
func (m *SyntaxModel) Declarations() ([]Declaration, error) {
	q, qErr := sitter.NewQuery(m.grammar.Language(), m.grammar.DeclarationQuery())
	if qErr != nil {
		return nil, fmt.Errorf("declaration query init error: %w", qErr)
	}
	defer q.Close()

	idx, ok := q.CaptureIndexForName(DeclarationCapture)
	if !ok {
		return nil, fmt.Errorf("declaration query for %s has no @%s capture", m.unit.Language, DeclarationCapture)
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()

	decls := make([]Declaration, 0)
	matches := qc.Matches(q, m.unit.RootNode, m.src())
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		for _, n := range match.NodesForCaptureIndex(idx) {
			node := n
			decls = append(decls, &syntaxDecl{m: m, node: &node})
		}
	}
	return decls, nil
}

func (m *SyntaxModel) src() []byte { return *m.unit.SourceBytes }

func (m *SyntaxModel) wrap(n *sitter.Node) Expr {
	e := syntaxExpr{m: m, node: n}
	if m.grammar.IsCall(n) {
		return &syntaxCall{syntaxExpr: e}
	}
	return &e
}

func (m *SyntaxModel) location(n *sitter.Node) *model.Location {
	return &model.Location{
		FilePath:    m.unit.FilePath,
		StartLine:   int(n.StartPosition().Row) + 1,
		EndLine:     int(n.EndPosition().Row) + 1,
		StartColumn: int(n.StartPosition().Column),
		EndColumn:   int(n.EndPosition().Column),
	}
}

// ==========================================
// 表达式 / 调用 / 声明 视图
// ==========================================

type syntaxExpr struct {
	m    *SyntaxModel
	node *sitter.Node
}

func (e *syntaxExpr) Text() string { return renderText(e.node.Utf8Text(e.m.src())) }

func (e *syntaxExpr) AsCall() (Call, bool) {
	if !e.m.grammar.IsCall(e.node) {
		return nil, false
	}
	return &syntaxCall{syntaxExpr: *e}, true
}

type syntaxCall struct {
	syntaxExpr
}

func (c *syntaxCall) Name() string { return c.m.grammar.CalleeName(c.node, c.m.src()) }

func (c *syntaxCall) Arguments() []Expr {
	nodes := c.m.grammar.Arguments(c.node)
	args := make([]Expr, 0, len(nodes))
	for _, n := range nodes {
		args = append(args, c.m.wrap(n))
	}
	return args
}

// Enclosing 向上遍历语法树寻找最近的声明容器
func (c *syntaxCall) Enclosing() (Declaration, bool) {
	for curr := c.node.Parent(); curr != nil; curr = curr.Parent() {
		if c.m.grammar.IsDeclaration(curr) {
			return &syntaxDecl{m: c.m, node: curr}, true
		}
	}
	return nil, false
}

func (c *syntaxCall) Location() *model.Location { return c.m.location(c.node) }

type syntaxDecl struct {
	m    *SyntaxModel
	node *sitter.Node
}

func (d *syntaxDecl) Name() string { return d.m.grammar.DeclarationName(d.node, d.m.src()) }

func (d *syntaxDecl) ReturnType() (string, bool) {
	rt, ok := d.m.grammar.ReturnType(d.node, d.m.src())
	if !ok {
		return "", false
	}
	return renderText(rt), true
}

// Calls 深度优先先序收集声明子树中的全部调用表达式，父调用先于其内部调用
func (d *syntaxDecl) Calls() []Call {
	calls := make([]Call, 0)
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if d.m.grammar.IsCall(n) {
			calls = append(calls, &syntaxCall{syntaxExpr: syntaxExpr{m: d.m, node: n}})
		}
		for i := uint(0); i < uint(n.ChildCount()); i++ {
			if child := n.Child(i); child != nil {
				walk(child)
			}
		}
	}
	walk(d.node)
	return calls
}

func (d *syntaxDecl) Location() *model.Location { return d.m.location(d.node) }

// 跨行表达式折叠为单行，行内空白保持原样
var lineBreakRun = regexp.MustCompile(`[ \t\r]*\n\s*`)

func renderText(s string) string {
	return lineBreakRun.ReplaceAllString(s, " ")
}
