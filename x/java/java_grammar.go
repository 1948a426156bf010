package java

import (
	"github.com/CodMac/attr-lens/core"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
)

// Grammar Java 的方法声明/调用形态。
// 方法类声明 = method_declaration，调用表达式 = method_invocation (不含 new 表达式)。
type Grammar struct {
	language *sitter.Language
}

func NewJavaGrammar() *Grammar {
	return &Grammar{language: sitter.NewLanguage(tree_sitter_java.Language())}
}

func (g *Grammar) Language() *sitter.Language { return g.language }

func (g *Grammar) DeclarationQuery() string { return JavaDeclarationQuery }

func (g *Grammar) IsDeclaration(n *sitter.Node) bool {
	return n != nil && n.Kind() == KindMethodDeclaration
}

func (g *Grammar) IsCall(n *sitter.Node) bool {
	return n != nil && n.Kind() == KindMethodInvocation
}

// CalleeName obj.name(...) 与 name(...) 都只取 name
func (g *Grammar) CalleeName(call *sitter.Node, src []byte) string {
	return g.getNodeContent(call.ChildByFieldName(FieldName), src)
}

// Arguments argument_list 中的具名子节点，跳过夹在实参之间的注释
func (g *Grammar) Arguments(call *sitter.Node) []*sitter.Node {
	argList := call.ChildByFieldName(FieldArguments)
	if argList == nil {
		return nil
	}

	var args []*sitter.Node
	for i := uint(0); i < uint(argList.NamedChildCount()); i++ {
		child := argList.NamedChild(i)
		if child == nil || g.isComment(child) {
			continue
		}
		args = append(args, child)
	}
	return args
}

func (g *Grammar) DeclarationName(decl *sitter.Node, src []byte) string {
	return g.getNodeContent(decl.ChildByFieldName(FieldName), src)
}

// ReturnType method_declaration 的 type 字段原文 (含泛型、数组、void)
func (g *Grammar) ReturnType(decl *sitter.Node, src []byte) (string, bool) {
	tNode := decl.ChildByFieldName(FieldType)
	if tNode == nil {
		return "", false
	}
	return g.getNodeContent(tNode, src), true
}

// ==========================================
// 原子辅助函数 (Atomic Helpers)
// ==========================================

func (g *Grammar) isComment(n *sitter.Node) bool {
	k := n.Kind()
	return k == KindLineComment || k == KindBlockComment
}

func (g *Grammar) getNodeContent(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(src)
}

var _ core.Grammar = (*Grammar)(nil)
