package utils

import (
	"encoding/json"
	"fmt"
)

// ParseStringList 解析JSON数组字符串，空字符串视为空数组
func ParseStringList(raw string) ([]string, error) {
	if raw == "" || raw == "[]" || raw == "null" {
		return []string{}, nil
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("解析字符串列表失败: %w", err)
	}
	return items, nil
}

// FormatStringList 将字符串数组格式化为JSON字符串
func FormatStringList(items []string) (string, error) {
	if len(items) == 0 {
		return "[]", nil
	}

	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("格式化字符串列表失败: %w", err)
	}
	return string(data), nil
}
