package core

// ResolveNodeExpression 还原包装调用最终读取的文档节点表达式。
// 约定形态为 parseXxx(ACCESSOR(nodeRef, attr), attr)：沿第一个实参逐层下钻，
// 直到第一个实参不再是调用表达式，返回它的文本。递归深度不设上限。
func ResolveNodeExpression(c Call) (string, error) {
	current := c
	for {
		args := current.Arguments()
		if len(args) == 0 {
			return "", &StructuralAssumptionViolation{
				Kind:     NoTerminalArgument,
				Callee:   current.Name(),
				CallText: current.Text(),
				Location: current.Location(),
			}
		}

		inner, ok := args[0].AsCall()
		if !ok {
			return args[0].Text(), nil
		}
		current = inner
	}
}
