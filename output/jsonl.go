package output

import (
	"encoding/json"
	"io"

	"github.com/CodMac/attr-lens/model"
)

type JSONLWriter struct {
	encoder *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{encoder: json.NewEncoder(w)}
}

func (w *JSONLWriter) Write(v interface{}) error { return w.encoder.Encode(v) }

// BindingRecord jsonl 中的一行：绑定本身附带运行与文件信息
type BindingRecord struct {
	RunID string `json:"run_id"`
	File  string `json:"file"`
	*model.AttributeBinding
}

func ExportJsonL(w io.Writer, report *model.Report) (int, error) {
	writer := NewJSONLWriter(w)
	count := 0
	for _, unit := range report.Units {
		for _, b := range unit.Bindings {
			if err := writer.Write(BindingRecord{RunID: report.RunID, File: unit.FilePath, AttributeBinding: b}); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}
