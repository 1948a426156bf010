package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/CodMac/attr-lens/model"
)

// idAllocator 源码表达式可能包含任意字符，统一映射为顺序编号的节点 ID
type idAllocator map[string]string

func (a idAllocator) id(key string) string {
	if id, ok := a[key]; ok {
		return id
	}
	id := fmt.Sprintf("n%d", len(a))
	a[key] = id
	return id
}

func escapeLabel(s string) string {
	r := strings.NewReplacer(`"`, "#quot;", "<", "#lt;", ">", "#gt;")
	return r.Replace(s)
}

// ExportMermaidHTML 声明 -> 节点引用 的关系图，边标注值类型；可选属性用虚线
func ExportMermaidHTML(w io.Writer, report *model.Report) (int, error) {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html><head><meta charset="UTF-8"><script src="https://cdn.jsdelivr.net/npm/mermaid/dist/mermaid.min.js"></script></head>
<body><div class="mermaid">graph LR
`)

	ids := make(idAllocator)
	count := 0
	for _, unit := range report.Units {
		fmt.Fprintf(&sb, "  subgraph %s [📄 %s]\n", ids.id("file:"+unit.FilePath), escapeLabel(unit.FilePath))
		for _, b := range unit.Bindings {
			methodID := ids.id("method:" + unit.FilePath + "#" + b.Method)
			nodeID := ids.id("node:" + unit.FilePath + "#" + b.SourceNodeExpression)
			fmt.Fprintf(&sb, "    %s[/\"%s\"/]\n", methodID, escapeLabel(b.Method))
			fmt.Fprintf(&sb, "    %s([\"%s\"])\n", nodeID, escapeLabel(b.SourceNodeExpression))

			arrow := "-->"
			if !b.Required {
				arrow = "-.->"
			}
			fmt.Fprintf(&sb, "    %s %s|\"%s\"| %s\n", methodID, arrow, escapeLabel(b.ValueType), nodeID)
			count++
		}
		sb.WriteString("  end\n")
	}

	sb.WriteString(`</div><script>mermaid.initialize({startOnLoad:true, maxTextSize:1000000});</script></body></html>
`)

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return 0, err
	}
	return count, nil
}
