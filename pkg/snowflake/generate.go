package snowflake

import (
	"errors"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// GeneratorType 区分不同业务对象的 ID 序列
type GeneratorType int

const (
	GeneratorTypeRoutine GeneratorType = iota
	GeneratorTypeGroup
	GeneratorTypeProof
	GeneratorTypeMessage
	generatorCount
)

var (
	nodes [generatorCount]*snowflake.Node
	once  sync.Once

	errInvalidMachineID   = errors.New("invalid snowflake machine id")
	errInvalidGenerator   = errors.New("invalid snowflake generator type")
	errGeneratorUninitial = errors.New("snowflake generator is not initialized")
)

// Init 初始化全部业务 ID 生成器
// datacenterID 和 machineID 都是 0~31，每类对象占用一个相邻的 node 槽位
func Init(machineID, dataCenterID int64) error {
	var initErr error

	once.Do(func() {
		if machineID < 0 || machineID > 31 {
			initErr = errInvalidMachineID
			return
		}

		base := (dataCenterID << 5) | machineID
		for i := range nodes {
			node, err := snowflake.NewNode((base + int64(i)) % 1024)
			if err != nil {
				initErr = err
				return
			}
			nodes[i] = node
		}
	})

	return initErr
}

// NextID 生成指定业务类型的下一个 ID
func NextID(t GeneratorType) (int64, error) {
	if t < 0 || t >= generatorCount {
		return 0, errInvalidGenerator
	}

	node := nodes[t]
	if node == nil {
		return 0, errGeneratorUninitial
	}

	return node.Generate().Int64(), nil
}
