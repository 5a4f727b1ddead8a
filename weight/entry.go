package weight

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// 产品条目形如 "4x2"、"6x1 1/2"：主管尺寸 + x + 支管尺寸
// 不锚定开头，主管尺寸带分数时(如 "1 1/2x3/4")仍能定位到 x 分隔符
var entryRe = regexp.MustCompile(`([\d ]+)([xX])([\d ./]+)`)

// ParseBranchSize 从产品条目中提取支管尺寸(第二段)
// 条目不符合 "AxB" 形式、或支管尺寸不是合法数字时返回 false，
// 调用方按非鱼嘴件处理，不报错
func ParseBranchSize(entry string) (float64, bool) {
	match := entryRe.FindStringSubmatch(entry)
	if match == nil {
		return 0, false
	}

	size, err := convertToDecimal(match[3])
	if err != nil {
		return 0, false
	}

	return size, true
}

// convertToDecimal 将尺寸文本转换为十进制数
// 支持带分数("1 3/4")、真分数("3/4")和普通数字("2"、"1.5")
func convertToDecimal(text string) (float64, error) {
	text = strings.TrimSpace(text)

	if fields := strings.Fields(text); len(fields) == 2 {
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, err
		}
		frac, err := parseFraction(fields[1])
		if err != nil {
			return 0, err
		}
		return whole + frac, nil
	}

	if strings.Contains(text, "/") {
		return parseFraction(text)
	}

	return strconv.ParseFloat(text, 64)
}

func parseFraction(text string) (float64, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return 0, errors.New("非法的分数格式: " + text)
	}

	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, err
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, errors.New("分母不能为零: " + text)
	}

	return num / den, nil
}
