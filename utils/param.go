package utils

import (
	"strconv"
	"strings"

	"github.com/zooyer/fab/elements"
)

// GetParams 合并实例参数和类型参数，实例优先
func GetParams(e *elements.Element, t *elements.TypeDef) map[string]string {
	var params = make(map[string]string)
	if t != nil {
		for k, v := range t.Params {
			params[k] = v
		}
	}
	for k, v := range e.Params {
		params[k] = v
	}

	return params
}

// GetParam 读取命名参数：先查实例，未设置时回退到类型定义
// 两级都没有视为缺失，返回 false，不是错误
func GetParam(e *elements.Element, t *elements.TypeDef, name string) (string, bool) {
	if v, ok := e.Params[name]; ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	if t != nil {
		if v, ok := t.Params[name]; ok && strings.TrimSpace(v) != "" {
			return v, true
		}
	}

	return "", false
}

// GetParamFloat 以浮点数读取命名参数，缺失或非法数字返回 false
func GetParamFloat(e *elements.Element, t *elements.TypeDef, name string) (float64, bool) {
	v, ok := GetParam(e, t, name)
	if !ok {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}

	return f, true
}
