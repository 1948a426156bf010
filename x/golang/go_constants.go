package golang

// Tree-sitter Go 语法节点类型与字段名
const (
	KindFunctionDeclaration  = "function_declaration"
	KindMethodDeclaration    = "method_declaration"
	KindCallExpression       = "call_expression"
	KindIdentifier           = "identifier"
	KindSelectorExpression   = "selector_expression"
	KindParameterList        = "parameter_list"
	KindParameterDeclaration = "parameter_declaration"
	KindComment              = "comment"

	FieldName      = "name"
	FieldType      = "type"
	FieldResult    = "result"
	FieldFunction  = "function"
	FieldField     = "field"
	FieldArguments = "arguments"
)
