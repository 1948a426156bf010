package core

import "strings"

// RequirednessClassifier 根据包装调用名判断属性是否必填
type RequirednessClassifier struct {
	prefix         string
	optionalSuffix string
}

func NewRequirednessClassifier(prefix, optionalSuffix string) *RequirednessClassifier {
	return &RequirednessClassifier{prefix: prefix, optionalSuffix: optionalSuffix}
}

// Classify name 必须以前缀开头 (否则说明 CallMatcher 误报)，以可选后缀结尾时为非必填
func (rc *RequirednessClassifier) Classify(name string) (bool, error) {
	if !rc.HasPrefix(name) {
		return false, &StructuralAssumptionViolation{Kind: MissingPrefix, Callee: name}
	}
	return !strings.HasSuffix(name, rc.optionalSuffix), nil
}

func (rc *RequirednessClassifier) HasPrefix(name string) bool {
	return strings.HasPrefix(name, rc.prefix)
}
