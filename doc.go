// Package fab 读取宿主模型的构件参数导出文件，并计算预制构件的干重(磅)。
//
// 导出文件是一条扁平的标签流，每组标签占两行：组码行 + 值行。
// 组码含义:
//
//	0  记录开始 (TYPE 类型定义 / PART 预制管件 / RFA 普通装配件 / EOF 结束)
//	1  构件名称
//	2  类型名称 (TYPE 上为定义名，PART/RFA 上为引用名)
//	4  规格描述 (如 "SCH 40"，构件自身的描述属性，不是参数)
//	5  句柄
//	6  参数名
//	7  参数值 (必须紧跟参数名)
package fab

import (
	"io"
	"os"
	"strings"

	"github.com/zooyer/fab/core"
	"github.com/zooyer/fab/elements"
)

type Document struct {
	Types    map[string]*elements.TypeDef
	Elements []*elements.Element
}

// TypeOf 查找构件关联的类型定义，没有则返回 nil
func (d *Document) TypeOf(e *elements.Element) *elements.TypeDef {
	if e == nil || e.TypeName == "" {
		return nil
	}
	return d.Types[strings.ToUpper(e.TypeName)]
}

func (d *Document) parseRecords(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "EOF" {
			break
		}
		if tag.Code == 0 {
			record := elements.CreateRecord(strings.ToUpper(strings.TrimSpace(tag.Value)))
			if record != nil {
				record.Parse(scanner)
				switch r := record.(type) {
				case *elements.TypeDef:
					d.Types[strings.ToUpper(r.Name)] = r
				case *elements.Element:
					d.Elements = append(d.Elements, r)
				}
				continue
			}
		}
		if !scanner.Next() {
			break
		}
	}
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		scanner  = core.NewScanner(reader)
		document = &Document{
			Types:    make(map[string]*elements.TypeDef),
			Elements: make([]*elements.Element, 0, 64),
		}
	)

	if scanner.Next() {
		document.parseRecords(scanner)
	}

	return document, scanner.Err()
}
