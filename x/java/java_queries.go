package java

// JavaDeclarationQuery 枚举方法类声明。
// 约定：捕获名 @declaration 对应 core.DeclarationCapture。
// 构造函数 (constructor_declaration) 没有返回类型，不属于方法类声明。
const JavaDeclarationQuery = `
(method_declaration) @declaration
`
