package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextSerialNumberEmpty(t *testing.T) {
	require.Equal(t, "2026-000001", NextSerialNumber(nil, 2026))
}

func TestNextSerialNumberIncrementsMax(t *testing.T) {
	existing := []string{"2026-000001", "2026-000007", "2026-000003"}
	require.Equal(t, "2026-000008", NextSerialNumber(existing, 2026))
}

func TestNextSerialNumberIgnoresOtherYears(t *testing.T) {
	// 跨年从 1 重新计数
	existing := []string{"2025-000042", "2025-000099"}
	require.Equal(t, "2026-000001", NextSerialNumber(existing, 2026))
}

func TestNextSerialNumberSkipsMalformed(t *testing.T) {
	existing := []string{"", "garbage", "2026-abc", "2026-000002"}
	require.Equal(t, "2026-000003", NextSerialNumber(existing, 2026))
}
