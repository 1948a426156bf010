package core

import (
	"fmt"
	"sort"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Grammar 描述某种语言在 Tree-sitter 语法树上的"方法声明/调用表达式"形态，
// SyntaxModel 借助它把语法树暴露为与语言无关的 SourceModel。
type Grammar interface {
	// Language 返回 Tree-sitter 语言定义
	Language() *sitter.Language

	// DeclarationQuery 枚举方法类声明的查询语句，约定捕获名为 @declaration
	DeclarationQuery() string

	// IsDeclaration 判断节点是否为方法类声明 (用于向上查找外层声明)
	IsDeclaration(n *sitter.Node) bool

	// IsCall 判断节点是否为调用表达式
	IsCall(n *sitter.Node) bool

	// CalleeName 调用表达式的被调函数名 (不含接收者)
	CalleeName(call *sitter.Node, src []byte) string

	// Arguments 调用表达式的有序实参 (不含注释)
	Arguments(call *sitter.Node) []*sitter.Node

	// DeclarationName 声明的名称
	DeclarationName(decl *sitter.Node, src []byte) string

	// ReturnType 声明的返回类型文本，没有返回类型时 ok 为 false
	ReturnType(decl *sitter.Node, src []byte) (string, bool)
}

var (
	grammarMu  sync.RWMutex
	grammarMap = make(map[Language]Grammar)
)

// RegisterGrammar 注册一个语言与其对应的 Grammar
func RegisterGrammar(lang Language, grammar Grammar) {
	grammarMu.Lock()
	defer grammarMu.Unlock()
	grammarMap[lang] = grammar
}

// GetGrammar 根据语言类型获取对应的 Grammar 实例。
func GetGrammar(lang Language) (Grammar, error) {
	grammarMu.RLock()
	defer grammarMu.RUnlock()
	grammar, ok := grammarMap[lang]
	if !ok {
		return nil, fmt.Errorf("no grammar registered for language: %s", lang)
	}
	return grammar, nil
}

// Languages 已注册的语言列表 (按名称排序)
func Languages() []Language {
	grammarMu.RLock()
	defer grammarMu.RUnlock()
	langs := make([]Language, 0, len(grammarMap))
	for l := range grammarMap {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}
