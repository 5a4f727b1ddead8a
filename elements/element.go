package elements

import "github.com/zooyer/fab/core"

// Classification 构件分类
type Classification int

const (
	FabricationPart Classification = iota // 预制管件
	GenericAssembly                       // 普通装配件(RFA)
)

func (c Classification) String() string {
	if c == GenericAssembly {
		return "RFA"
	}
	return "PART"
}

// Element 代表宿主模型中的一个构件实例
type Element struct {
	BaseRecord
	Name           string
	TypeName       string            // 关联的类型定义名称
	Specification  string            // 规格描述，如 "SCH 40"
	Classification Classification
	Params         map[string]string // 实例参数，未出现即未设置
}

func init() {
	Register("PART", func() Record {
		return &Element{
			BaseRecord:     BaseRecord{KindName: "PART"},
			Classification: FabricationPart,
			Params:         map[string]string{},
		}
	})
	Register("RFA", func() Record {
		return &Element{
			BaseRecord:     BaseRecord{KindName: "RFA"},
			Classification: GenericAssembly,
			Params:         map[string]string{},
		}
	})
}

func (e *Element) Parse(scanner *core.Scanner) error {
	var pending string // 等待配对的参数名

	for {
		tag := scanner.LastTag
		switch tag.Code {
		case 1:
			e.Name = tag.AsString()
		case 2:
			e.TypeName = tag.AsString()
		case 4:
			e.Specification = tag.AsString()
		case 5:
			e.HandleID = tag.AsString()
		case 6:
			pending = tag.AsString()
		case 7:
			// 参数值必须跟在参数名之后，孤立的值直接丢弃
			if pending != "" {
				e.Params[pending] = tag.AsString()
				pending = ""
			}
		}
		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}
	return nil
}
