package output

import (
	"io"
	"os"

	"github.com/CodMac/attr-lens/model"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// textPalette 每次导出单独构造，着色与否只取决于实际写入目标
type textPalette struct {
	file     *color.Color
	required *color.Color
	optional *color.Color
}

func newTextPalette(colored bool) *textPalette {
	p := &textPalette{
		file:     color.New(color.Bold, color.FgCyan),
		required: color.New(color.FgGreen),
		optional: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.file, p.required, p.optional} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// isTerminal 仅当 w 是终端文件时为 true；文件、管道、缓冲区都不着色
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ExportText 每条绑定一行参考文本，按文件分组；写入终端时必填绿色、可选黄色
func ExportText(w io.Writer, report *model.Report) (int, error) {
	palette := newTextPalette(!color.NoColor && isTerminal(w))

	count := 0
	for _, unit := range report.Units {
		if _, err := palette.file.Fprintf(w, "# %s\n", unit.FilePath); err != nil {
			return count, err
		}
		for _, b := range unit.Bindings {
			c := palette.required
			if !b.Required {
				c = palette.optional
			}
			if _, err := c.Fprintln(w, b.String()); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
