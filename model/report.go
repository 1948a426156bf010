package model

// UnitReport 单个编译单元 (源文件) 的分析结果
type UnitReport struct {
	FilePath string              `json:"filePath" yaml:"filePath" msgpack:"filePath"`
	Bindings []*AttributeBinding `json:"bindings" yaml:"bindings" msgpack:"bindings"`
}

// Report 一次完整分析运行的结果，交给外部 Reporter 输出
type Report struct {
	RunID      string        `json:"runId" yaml:"runId" msgpack:"runId"`
	Language   string        `json:"language" yaml:"language" msgpack:"language"`
	Convention Convention    `json:"convention" yaml:"convention" msgpack:"convention"`
	Units      []*UnitReport `json:"units" yaml:"units" msgpack:"units"`
}

// Total 所有单元的绑定总数 (不去重)
func (r *Report) Total() int {
	n := 0
	for _, u := range r.Units {
		n += len(u.Bindings)
	}
	return n
}

// RequiredCount 必填绑定的数量
func (r *Report) RequiredCount() int {
	n := 0
	for _, u := range r.Units {
		for _, b := range u.Bindings {
			if b.Required {
				n++
			}
		}
	}
	return n
}
