package weight

import "math"

// ClosestSize 在重量表中查找与目标尺寸最接近的公称尺寸，返回整行
// 表按升序排列且只在严格更近时替换，距离相同时取较小的公称尺寸
func ClosestSize(table []TableEntry, target float64) TableEntry {
	best := table[0]
	for _, entry := range table[1:] {
		if math.Abs(entry.Size-target) < math.Abs(best.Size-target) {
			best = entry
		}
	}

	return best
}
