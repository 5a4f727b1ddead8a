package elements

import "github.com/zooyer/fab/core"

// TypeDef 代表类型定义，实例参数缺失时回退到这里查询
type TypeDef struct {
	BaseRecord
	Name   string
	Params map[string]string
}

func init() {
	Register("TYPE", func() Record {
		return &TypeDef{
			BaseRecord: BaseRecord{KindName: "TYPE"},
			Params:     map[string]string{},
		}
	})
}

func (t *TypeDef) Parse(scanner *core.Scanner) error {
	var pending string

	for {
		tag := scanner.LastTag
		switch tag.Code {
		case 2:
			t.Name = tag.AsString()
		case 5:
			t.HandleID = tag.AsString()
		case 6:
			pending = tag.AsString()
		case 7:
			if pending != "" {
				t.Params[pending] = tag.AsString()
				pending = ""
			}
		}
		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}
	return nil
}
