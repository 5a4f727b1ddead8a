package weight

import (
	"strings"
)

// Schedule 管道壁厚系列
type Schedule int

const (
	STD Schedule = iota // 标准壁厚，识别不出时的默认值
	SCH10
	SCH40
)

func (s Schedule) String() string {
	switch s {
	case SCH10:
		return "SCH10"
	case SCH40:
		return "SCH40"
	}
	return "STD"
}

// Classify 从规格描述中识别壁厚系列
// 匹配忽略大小写和空格("SCH 10" 和 "sch10" 等价)，按固定优先级:
// SCH10 > SCH40 > STD，都不匹配时默认 STD
func Classify(spec string) Schedule {
	s := strings.ToUpper(strings.ReplaceAll(spec, " ", ""))
	switch {
	case strings.Contains(s, "SCH10"):
		return SCH10
	case strings.Contains(s, "SCH40"):
		return SCH40
	case strings.Contains(s, "STD"):
		return STD
	}
	return STD
}
