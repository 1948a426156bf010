package golang

// GoDeclarationQuery 函数与方法都是方法类声明，func 字面量不是
const GoDeclarationQuery = `
[
  (function_declaration)
  (method_declaration)
] @declaration
`
