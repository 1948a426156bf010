package model

// Location 描述了绑定或调用点在源码中的位置
type Location struct {
	FilePath    string `json:"FilePath" yaml:"filePath" msgpack:"filePath"`
	StartLine   int    `json:"StartLine" yaml:"startLine" msgpack:"startLine"`
	EndLine     int    `json:"EndLine" yaml:"endLine" msgpack:"endLine"`
	StartColumn int    `json:"StartColumn" yaml:"startColumn" msgpack:"startColumn"`
	EndColumn   int    `json:"EndColumn" yaml:"endColumn" msgpack:"endColumn"`
}
