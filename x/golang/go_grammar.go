package golang

import (
	"github.com/CodMac/attr-lens/core"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

// Grammar Go 的声明/调用形态。
// 方法类声明 = function_declaration / method_declaration，调用表达式 = call_expression。
type Grammar struct {
	language *sitter.Language
}

func NewGoGrammar() *Grammar {
	return &Grammar{language: sitter.NewLanguage(tree_sitter_go.Language())}
}

func (g *Grammar) Language() *sitter.Language { return g.language }

func (g *Grammar) DeclarationQuery() string { return GoDeclarationQuery }

func (g *Grammar) IsDeclaration(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	k := n.Kind()
	return k == KindFunctionDeclaration || k == KindMethodDeclaration
}

func (g *Grammar) IsCall(n *sitter.Node) bool {
	return n != nil && n.Kind() == KindCallExpression
}

// CalleeName f(...) 取 f；x.f(...) 取 f；其余形态 (如 (fn)(...)) 取整个 function 原文
func (g *Grammar) CalleeName(call *sitter.Node, src []byte) string {
	fn := call.ChildByFieldName(FieldFunction)
	if fn == nil {
		return ""
	}
	switch fn.Kind() {
	case KindIdentifier:
		return g.getNodeContent(fn, src)
	case KindSelectorExpression:
		return g.getNodeContent(fn.ChildByFieldName(FieldField), src)
	default:
		return g.getNodeContent(fn, src)
	}
}

func (g *Grammar) Arguments(call *sitter.Node) []*sitter.Node {
	argList := call.ChildByFieldName(FieldArguments)
	if argList == nil {
		return nil
	}

	var args []*sitter.Node
	for i := uint(0); i < uint(argList.NamedChildCount()); i++ {
		child := argList.NamedChild(i)
		if child == nil || child.Kind() == KindComment {
			continue
		}
		args = append(args, child)
	}
	return args
}

func (g *Grammar) DeclarationName(decl *sitter.Node, src []byte) string {
	return g.getNodeContent(decl.ChildByFieldName(FieldName), src)
}

// ReturnType 单返回值取其类型原文；(T, error) 等多返回值取第一个结果的类型；无返回值视为缺失
func (g *Grammar) ReturnType(decl *sitter.Node, src []byte) (string, bool) {
	result := decl.ChildByFieldName(FieldResult)
	if result == nil {
		return "", false
	}
	if result.Kind() != KindParameterList {
		return g.getNodeContent(result, src), true
	}

	for i := uint(0); i < uint(result.NamedChildCount()); i++ {
		child := result.NamedChild(i)
		if child == nil || child.Kind() != KindParameterDeclaration {
			continue
		}
		if tNode := child.ChildByFieldName(FieldType); tNode != nil {
			return g.getNodeContent(tNode, src), true
		}
	}
	return "", false
}

func (g *Grammar) getNodeContent(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(src)
}

var _ core.Grammar = (*Grammar)(nil)
