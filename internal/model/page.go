package model

// Page 分页结果，Total 与 Items 分别查询，并发写入时可能不一致
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}
