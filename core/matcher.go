package core

import "strings"

// CallMatcher 从声明体内的全部调用中挑出"属性包装调用"。
// 纯文本启发式：渲染文本包含 accessor 且不以 accessor 开头。
// 因此既可能误报 (名字巧合)，也可能漏报 (别名/间接调用)。
type CallMatcher struct {
	accessor string
}

func NewCallMatcher(accessor string) *CallMatcher {
	return &CallMatcher{accessor: accessor}
}

// IsWrapperCall (a) 文本中出现 accessor; (b) 文本不以 accessor 开头 (排除 accessor 调用本身)
func (m *CallMatcher) IsWrapperCall(c Call) bool {
	text := c.Text()
	return strings.Contains(text, m.accessor) && !strings.HasPrefix(text, m.accessor)
}

// Match 按发现顺序返回 decl 中的全部包装调用 (任意嵌套深度)
func (m *CallMatcher) Match(decl Declaration) []Call {
	var matched []Call
	for _, c := range decl.Calls() {
		if m.IsWrapperCall(c) {
			matched = append(matched, c)
		}
	}
	return matched
}
