package core

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// CompilationUnit 单个已解析源文件：语法树、源码及其语言
type CompilationUnit struct {
	FilePath    string
	Language    Language
	RootNode    *sitter.Node
	SourceBytes *[]byte
	tree        *sitter.Tree
}

func NewCompilationUnit(filePath string, lang Language, tree *sitter.Tree, sourceBytes *[]byte) *CompilationUnit {
	return &CompilationUnit{
		FilePath:    filePath,
		Language:    lang,
		RootNode:    tree.RootNode(),
		SourceBytes: sourceBytes,
		tree:        tree,
	}
}

// Close 释放语法树，之后 RootNode 及其派生节点均不可再用
func (cu *CompilationUnit) Close() {
	if cu.tree != nil {
		cu.tree.Close()
		cu.tree = nil
	}
}
