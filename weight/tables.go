package weight

// TableEntry 重量表中的一行：公称尺寸(英寸) → 每英尺重量(磅)
type TableEntry struct {
	Size    float64
	PerFoot float64
}

// 三张重量表按公称尺寸升序排列，覆盖 0.125 到 48 英寸的标准管径，
// 只读常量，进程内不会被修改

var stdTable = []TableEntry{
	{0.125, 0.24}, {0.25, 0.42}, {0.375, 0.57}, {0.5, 0.85},
	{0.75, 1.13}, {1.0, 1.68}, {1.25, 2.27}, {1.5, 2.72},
	{2.0, 3.65}, {2.5, 5.79}, {3.0, 7.58}, {3.5, 9.11},
	{4.0, 10.79}, {5.0, 14.62}, {6.0, 18.97}, {8.0, 28.55},
	{10.0, 40.48}, {12.0, 49.56}, {14.0, 54.57}, {16.0, 62.58},
	{18.0, 70.59}, {20.0, 78.60}, {24.0, 94.62}, {30.0, 118.65},
	{36.0, 142.68}, {42.0, 166.71}, {48.0, 190.74},
}

var sch10Table = []TableEntry{
	{0.125, 0.19}, {0.25, 0.33}, {0.375, 0.42}, {0.5, 0.54},
	{0.75, 0.74}, {1.0, 1.10}, {1.25, 1.81}, {1.5, 2.08},
	{2.0, 2.64}, {2.5, 3.53}, {3.0, 4.33}, {3.5, 4.97},
	{4.0, 5.61}, {5.0, 7.77}, {6.0, 9.29}, {8.0, 13.40},
	{10.0, 18.70}, {12.0, 24.16}, {14.0, 36.71}, {16.0, 42.05},
	{18.0, 47.39}, {20.0, 52.73}, {24.0, 63.41}, {30.0, 98.93},
	{36.0, 118.92}, {42.0, 138.86}, {48.0, 158.80},
}

var sch40Table = []TableEntry{
	{0.125, 0.24}, {0.25, 0.42}, {0.375, 0.57}, {0.5, 0.85},
	{0.75, 1.13}, {1.0, 1.68}, {1.25, 2.27}, {1.5, 2.72},
	{2.0, 2.638}, {2.5, 5.79}, {3.0, 7.58}, {3.5, 9.11},
	{4.0, 10.79}, {5.0, 14.62}, {6.0, 18.97}, {8.0, 28.55},
	{10.0, 40.48}, {12.0, 53.52}, {14.0, 63.44}, {16.0, 82.77},
	{18.0, 104.67}, {20.0, 123.11}, {24.0, 171.29}, {30.0, 215.27},
	{36.0, 259.34}, {42.0, 303.40}, {48.0, 347.47},
}

// Table 返回壁厚系列对应的重量表，默认 STD
func Table(s Schedule) []TableEntry {
	switch s {
	case SCH10:
		return sch10Table
	case SCH40:
		return sch40Table
	}
	return stdTable
}
