package core

// InferValueType 取最近外层声明的返回类型文本作为值的语义类型，原样返回。
// 与具体使用哪个转换包装 (Required/Optional/...) 无关。
func InferValueType(c Call) (string, error) {
	decl, ok := c.Enclosing()
	if !ok {
		return "", &StructuralAssumptionViolation{
			Kind:     NoEnclosingDeclaration,
			Callee:   c.Name(),
			CallText: c.Text(),
			Location: c.Location(),
		}
	}

	rt, ok := decl.ReturnType()
	if !ok || rt == "" {
		return "", &StructuralAssumptionViolation{
			Kind:     MissingReturnType,
			Callee:   c.Name(),
			CallText: c.Text(),
			Location: c.Location(),
		}
	}
	return rt, nil
}
