package java

// Tree-sitter Java 语法节点类型与字段名，保持统一
const (
	KindMethodDeclaration = "method_declaration"
	KindMethodInvocation  = "method_invocation"
	KindLineComment       = "line_comment"
	KindBlockComment      = "block_comment"

	FieldName      = "name"
	FieldType      = "type"
	FieldArguments = "arguments"
)
