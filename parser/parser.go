package parser

import (
	"fmt"
	"os"

	"github.com/CodMac/attr-lens/core"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// TreeSitterParser 将源码解析为 CompilationUnit。非并发安全，每个 goroutine 持有自己的实例。
type TreeSitterParser struct {
	lang   core.Language
	parser *sitter.Parser
}

// NewParser 使用已注册的 Grammar 创建解析器
func NewParser(lang core.Language) (*TreeSitterParser, error) {
	grammar, err := core.GetGrammar(lang)
	if err != nil {
		return nil, err
	}

	p := sitter.NewParser()
	if err := p.SetLanguage(grammar.Language()); err != nil {
		p.Close()
		return nil, fmt.Errorf("set language %s: %w", lang, err)
	}
	return &TreeSitterParser{lang: lang, parser: p}, nil
}

// ParseFile 读取并解析文件
func (p *TreeSitterParser) ParseFile(filePath string) (*core.CompilationUnit, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInputUnavailable, err)
	}
	return p.ParseBytes(filePath, src)
}

// ParseBytes 解析内存中的源码。存在语法错误时返回 ErrInputUnavailable。
func (p *TreeSitterParser) ParseBytes(filePath string, src []byte) (*core.CompilationUnit, error) {
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: %s: failed to parse tree", core.ErrInputUnavailable, filePath)
	}

	root := tree.RootNode()
	if root.HasError() {
		pos := "unknown position"
		if bad := firstErrorNode(root); bad != nil {
			pos = fmt.Sprintf("%d:%d", bad.StartPosition().Row+1, bad.StartPosition().Column+1)
		}
		tree.Close()
		return nil, fmt.Errorf("%w: %s: syntax error at %s", core.ErrInputUnavailable, filePath, pos)
	}

	return core.NewCompilationUnit(filePath, p.lang, tree, &src), nil
}

func (p *TreeSitterParser) Language() core.Language { return p.lang }

func (p *TreeSitterParser) Close() {
	if p.parser != nil {
		p.parser.Close()
		p.parser = nil
	}
}

// firstErrorNode 深度优先查找第一个 ERROR / MISSING 节点
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := uint(0); i < uint(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil {
			if bad := firstErrorNode(child); bad != nil {
				return bad
			}
		}
	}
	return nil
}
