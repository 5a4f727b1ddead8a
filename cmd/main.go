package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/fab"
	"github.com/zooyer/fab/elements"
	"github.com/zooyer/fab/utils"
	"github.com/zooyer/fab/weight"
)

const (
	epsilon = 0.001 // 重量对比精度误差(结果保留3位小数)
)

// renderBool ✅/❌
func renderBool(b bool) string {
	if b {
		return "✅"
	}

	return "❌"
}

// renderStrategy 返回构件命中的计算策略名称
func renderStrategy(e *elements.Element, t *elements.TypeDef) string {
	if e.Classification != elements.FabricationPart {
		return "直读"
	}

	entry, _ := utils.GetParam(e, t, weight.ParamEntry)
	if _, ok := weight.ParseBranchSize(entry); ok {
		return "查表"
	}

	return "换算"
}

// verify 校验计算结果：预制管件上若存有参考重量 CP_Weight，与计算值对比
// 没有参考值时视为通过
func verify(e *elements.Element, t *elements.TypeDef, computed float64) bool {
	if e.Classification != elements.FabricationPart {
		return true
	}

	ref, ok := utils.GetParamFloat(e, t, weight.ParamCPWeight)
	if !ok {
		return true
	}

	return xmath.Equal(computed, weight.Round3(ref), epsilon)
}

func init() {
	if strings.HasPrefix(filepath.Base(os.Args[0]), "___go_build_") {
		os.Args = append(os.Args, "cmd/testdata/构件清单.fab")
	}

	if len(os.Args) < 2 {
		// 双击启动时弹出文件选择框
		filename, err := zenity.SelectFile(
			zenity.Title("请选择构件参数导出文件"),
			zenity.FileFilters{
				{Name: "构件清单", Patterns: []string{"*.fab", "*.txt"}},
			},
		)
		if err != nil || filename == "" {
			fmt.Println("请把构件参数导出文件拖入该程序上执行！")
			xos.PauseExit()
			os.Exit(1)
		}
		os.Args = append(os.Args, filename)
	}
}

func main() {
	defer xos.PauseExit()

	doc, err := fab.Open(os.Args[1])
	if err != nil {
		panic(err)
	}

	fmt.Printf("开始处理: %d 个构件...\n", len(doc.Elements))

	// 写入表头
	const header = "序号,句柄,名称,分类,规格,产品条目,策略,重量(lb),校验\n"
	var filename = strings.TrimSuffix(os.Args[1], filepath.Ext(os.Args[1])) + ".csv"
	_ = os.WriteFile(filename, []byte(header), 0644)
	fmt.Println("写入文件:", filename)
	fmt.Println()

	var (
		totalNum    int     // 构件总数
		totalWeight float64 // 总重量(lb)
		failedNum   int     // 校验失败数
	)

	for i, elem := range doc.Elements {
		var (
			typ      = doc.TypeOf(elem)
			entry, _ = utils.GetParam(elem, typ, weight.ParamEntry)
			pounds   = weight.Compute(elem, typ)
			strategy = renderStrategy(elem, typ)
			valid    = verify(elem, typ, pounds)
		)

		// 打印信息
		fmt.Printf("[%s.%02d] | %-24s | %s | %.3f lb %s\n",
			elem.Classification, i+1, elem.Name, strategy, pounds, renderBool(valid),
		)
		if strategy == "查表" {
			var (
				schedule = weight.Classify(elem.Specification)
				size, _  = weight.ParseBranchSize(entry)
				nominal  = weight.ClosestSize(weight.Table(schedule), size)
			)
			fmt.Printf("    |-- [%s] 支管 %g\" -> 公称 %g\" × %.4f lb/ft\n",
				schedule, size, nominal.Size, nominal.PerFoot,
			)
		}

		// 统计信息
		totalNum++
		totalWeight += pounds
		if !valid {
			failedNum++
		}

		var line = fmt.Sprintf("%d,%s,%s,%s,%s,%s,%s,%.3f,%s\n",
			i+1, elem.Handle(), elem.Name, elem.Classification, elem.Specification,
			entry, strategy, pounds, renderBool(valid),
		)

		if err = xos.AppendFile(filename, []byte(line), 0644); err != nil {
			panic(err)
		}
	}

	// 写入统计信息
	var stat = fmt.Sprintf("共%d构件,总重%.3f磅,校验失败%d,,,,,,\n", totalNum, totalWeight, failedNum)
	if err = xos.AppendFile(filename, []byte(stat), 0644); err != nil {
		panic(err)
	}

	fmt.Println()
	fmt.Printf("处理完成: 共 %d 构件, 总重 %.3f 磅, 校验失败 %d\n", totalNum, totalWeight, failedNum)
}
