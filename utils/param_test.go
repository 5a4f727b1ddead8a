package utils

import (
	"testing"

	"github.com/zooyer/fab/elements"
)

func newElement(params map[string]string) *elements.Element {
	if params == nil {
		params = map[string]string{}
	}
	return &elements.Element{Params: params}
}

func TestGetParam_Fallback(t *testing.T) {
	var (
		elem = newElement(map[string]string{"Length": "10.0", "Weight": ""})
		typ  = &elements.TypeDef{Params: map[string]string{"CP_Weight": "15.5", "Weight": "3.0"}}
	)

	// 实例优先
	if v, ok := GetParam(elem, typ, "Length"); !ok || v != "10.0" {
		t.Errorf("实例参数读取不符: %q, %v", v, ok)
	}
	// 实例未设置(空值)时回退到类型
	if v, ok := GetParam(elem, typ, "Weight"); !ok || v != "3.0" {
		t.Errorf("空值应回退到类型参数: %q, %v", v, ok)
	}
	// 实例缺失时回退到类型
	if v, ok := GetParam(elem, typ, "CP_Weight"); !ok || v != "15.5" {
		t.Errorf("类型回退读取不符: %q, %v", v, ok)
	}
	// 两级都没有
	if _, ok := GetParam(elem, typ, "Size"); ok {
		t.Error("两级都缺失时应返回 false")
	}
	// 没有类型定义
	if _, ok := GetParam(elem, nil, "CP_Weight"); ok {
		t.Error("没有类型定义时不应命中")
	}
}

func TestGetParamFloat(t *testing.T) {
	elem := newElement(map[string]string{"Length": " 5.0 ", "Product Entry": "4x2"})

	if v, ok := GetParamFloat(elem, nil, "Length"); !ok || v != 5.0 {
		t.Errorf("浮点读取不符: %v, %v", v, ok)
	}
	if _, ok := GetParamFloat(elem, nil, "Product Entry"); ok {
		t.Error("非数字参数应返回 false")
	}
	if _, ok := GetParamFloat(elem, nil, "Weight"); ok {
		t.Error("缺失参数应返回 false")
	}
}

func TestGetParams_Merge(t *testing.T) {
	var (
		elem = newElement(map[string]string{"Weight": "10.0"})
		typ  = &elements.TypeDef{Params: map[string]string{"Weight": "3.0", "CP_Weight": "15.5"}}
	)

	params := GetParams(elem, typ)
	if params["Weight"] != "10.0" || params["CP_Weight"] != "15.5" {
		t.Errorf("参数合并不符: %v", params)
	}
}
