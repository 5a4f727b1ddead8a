package core

import (
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的构件导出片段
	data := "0\nPART\n1\nTap 4x2\n6\nLength\n7\n10.0\n0\nEOF\n"
	r := strings.NewReader(data)
	scanner := NewScanner(r)

	expected := []Tag{
		{0, "PART"},
		{1, "Tap 4x2"},
		{6, "Length"},
		{7, "10.0"},
		{0, "EOF"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag.Code != exp.Code || scanner.LastTag.Value != exp.Value {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}
}

func TestTag_Conversions(t *testing.T) {
	if got := (Tag{Code: 7, Value: " 15.5 "}).AsFloat(); got != 15.5 {
		t.Errorf("AsFloat 结果不符: 期望 15.5, 得到 %v", got)
	}
	if got := (Tag{Code: 0, Value: "abc"}).AsFloat(); got != 0 {
		t.Errorf("非法数字应返回 0, 得到 %v", got)
	}
	if got := (Tag{Code: 6, Value: "  CP_Weight "}).AsString(); got != "CP_Weight" {
		t.Errorf("AsString 结果不符: 得到 %q", got)
	}
}
