package output

import (
	"fmt"
	"io"

	"github.com/CodMac/attr-lens/model"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type OutType string

const (
	Text    OutType = "text"
	JsonL   OutType = "jsonl"
	Yaml    OutType = "yaml"
	MsgPack OutType = "msgpack"
	Mermaid OutType = "mermaid"
)

// OutTypes 全部受支持的输出格式
var OutTypes = []OutType{Text, JsonL, Yaml, MsgPack, Mermaid}

func ParseOutType(s string) (OutType, error) {
	for _, t := range OutTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %s", s)
}

// FileName 写入输出目录时使用的默认文件名
func (t OutType) FileName() string {
	switch t {
	case Text:
		return "bindings.txt"
	case Mermaid:
		return "bindings.html"
	default:
		return "bindings." + string(t)
	}
}

type Exporter struct {
	w          io.Writer
	outputType OutType
}

func NewExporter(w io.Writer, outputType OutType) *Exporter {
	return &Exporter{w: w, outputType: outputType}
}

// Export 按格式写出报告，返回写出的绑定数
func (p *Exporter) Export(report *model.Report) (int, error) {
	switch p.outputType {
	case Text:
		return ExportText(p.w, report)
	case JsonL:
		return ExportJsonL(p.w, report)
	case Yaml:
		return p.exportDocument(report, func(v interface{}) error {
			enc := yaml.NewEncoder(p.w)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		})
	case MsgPack:
		return p.exportDocument(report, msgpack.NewEncoder(p.w).Encode)
	case Mermaid:
		return ExportMermaidHTML(p.w, report)
	default:
		return 0, fmt.Errorf("unsupported output format: %s", p.outputType)
	}
}

// exportDocument 整个 Report 作为单个文档编码
func (p *Exporter) exportDocument(report *model.Report, encode func(interface{}) error) (int, error) {
	if err := encode(report); err != nil {
		return 0, fmt.Errorf("encode %s report: %w", p.outputType, err)
	}
	return report.Total(), nil
}
