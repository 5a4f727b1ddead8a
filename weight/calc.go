package weight

import (
	"math"

	"github.com/zooyer/fab/elements"
	"github.com/zooyer/fab/utils"
)

// KgToLb 千克转磅
const KgToLb = 2.20462

// 宿主模型中的参数名称(区分大小写)
const (
	ParamCPWeight = "CP_Weight"     // 装配件干重，磅
	ParamWeight   = "Weight"        // 预制管件质量，千克
	ParamLength   = "Length"        // 长度，英尺
	ParamEntry    = "Product Entry" // 产品条目，如 "4x2"
)

// Compute 计算构件干重(磅)，保留3位小数
//
// 按分类选择三种策略之一:
//   - RFA 装配件：直接读取 CP_Weight 参数，缺失为 0
//   - 鱼嘴件(产品条目形如 "4x2")：按规格选重量表，支管尺寸就近查表，
//     每英尺重量 × Length
//   - 其他预制管件：Weight 参数(千克)换算为磅
//
// 任何输入都有结果，参数缺失一律按 0 处理，不返回错误
func Compute(e *elements.Element, t *elements.TypeDef) float64 {
	if e.Classification != elements.FabricationPart {
		v, ok := utils.GetParamFloat(e, t, ParamCPWeight)
		if !ok {
			return 0
		}
		return Round3(v)
	}

	entry, _ := utils.GetParam(e, t, ParamEntry)
	if size, ok := ParseBranchSize(entry); ok {
		var (
			table     = Table(Classify(e.Specification))
			nominal   = ClosestSize(table, size)
			length, _ = utils.GetParamFloat(e, t, ParamLength)
		)
		return Round3(nominal.PerFoot * length)
	}

	kg, _ := utils.GetParamFloat(e, t, ParamWeight)
	return Round3(kg * KgToLb)
}

// Round3 四舍五入保留3位小数
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
