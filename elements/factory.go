package elements

import (
	"github.com/zooyer/fab/core"
)

// Record 是导出文件中一切记录的接口
type Record interface {
	Parse(scanner *core.Scanner) error
	Kind() string
	Handle() string
}

// BaseRecord 存放所有记录通用的属性（如句柄、记录类型）
type BaseRecord struct {
	KindName string
	HandleID string
}

func (b *BaseRecord) Kind() string { return b.KindName }

func (b *BaseRecord) Handle() string { return b.HandleID }

// RecordFactory 定义了如何从标签流中创建一条记录
type RecordFactory func() Record

var registry = map[string]RecordFactory{}

// Register 允许以后动态扩展新的记录类型
func Register(kindName string, factory RecordFactory) {
	registry[kindName] = factory
}

// CreateRecord 根据记录名称生产对应的结构体
func CreateRecord(kindName string) Record {
	if factory, ok := registry[kindName]; ok {
		return factory()
	}
	return nil
}
