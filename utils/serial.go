package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NextSerialNumber 生成配置单的年度流水号，形如 2026-000001。
// 扫描当年已有流水号取最大值加一；解析不了的流水号直接忽略；
// 当年还没有流水号时从 000001 开始
func NextSerialNumber(existing []string, year int) string {
	max := 0
	prefix := strconv.Itoa(year)
	for _, serial := range existing {
		parts := strings.SplitN(serial, "-", 2)
		if len(parts) != 2 || parts[0] != prefix {
			continue
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%d-%06d", year, max+1)
}
