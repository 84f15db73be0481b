package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/nihatdadaloglu/oda/internal/apperror"
	"github.com/nihatdadaloglu/oda/internal/constants"
	"github.com/nihatdadaloglu/oda/internal/model"
	"github.com/nihatdadaloglu/oda/internal/utils"
)

// MaxLimit 单页最多返回的记录数
const MaxLimit = 200

// MatchMode 列表过滤方式
type MatchMode int

const (
	MatchEqual MatchMode = iota
	// MatchContains 不区分大小写的子串匹配
	MatchContains
)

// Filter 查询参数到列的映射
type Filter struct {
	Column string
	Match  MatchMode
}

// Schema 描述一种记录的表结构和列表查询规则
type Schema struct {
	Table string
	// Columns 除 id/created_at/updated_at 之外的列
	Columns      []string
	DefaultSort  string
	DefaultLimit int
	// SortKeys 对外字段名到列名
	SortKeys map[string]string
	// Filters 查询参数名到过滤规则
	Filters map[string]Filter
}

func (s Schema) hasColumn(name string) bool {
	switch name {
	case "id", "created_at", "updated_at":
		return true
	}
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}

func (s Schema) selectColumns() string {
	return "id, created_at, updated_at, " + strings.Join(s.Columns, ", ")
}

// ListQuery 列表查询条件
type ListQuery struct {
	Filters   map[string]string
	Sort      string
	Ascending bool
	Skip      int
	Limit     int
}

// Normalize 修正分页参数：负的 skip 视为0，limit 缺省取默认值且不超过 MaxLimit
func (q ListQuery) Normalize(defaultLimit int) ListQuery {
	if q.Skip < 0 {
		q.Skip = 0
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Store 按 Schema 读写一种记录的通用仓库
type Store[T any, P interface {
	*T
	model.Entity
}] struct {
	db     *sqlx.DB
	schema Schema
	now    func() time.Time
}

// NewStore 创建通用仓库
func NewStore[T any, P interface {
	*T
	model.Entity
}](db *sqlx.DB, schema Schema) *Store[T, P] {
	return &Store[T, P]{db: db, schema: schema, now: time.Now}
}

// Schema 返回仓库使用的表结构
func (s *Store[T, P]) Schema() Schema {
	return s.schema
}

// ParseID 校验并规范化记录ID
func ParseID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", apperror.ErrMalformedID
	}
	return parsed.String(), nil
}

// Create 写入新记录，生成ID和创建时间
func (s *Store[T, P]) Create(ctx context.Context, record P) error {
	now := model.NewTimestamp(s.now())
	meta := record.Meta()
	meta.ID = uuid.NewString()
	meta.CreatedAt = now
	meta.UpdatedAt = nil

	if sl, ok := any(record).(model.Sluggable); ok {
		sl.SetSlug(utils.Slugify(sl.SlugSource()))
	}
	if hook, ok := any(record).(model.CreateHook); ok {
		hook.BeforeCreate(now)
	}

	names := make([]string, 0, len(s.schema.Columns))
	for _, c := range s.schema.Columns {
		names = append(names, ":"+c)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:id, :created_at, :updated_at, %s)",
		s.schema.Table, s.schema.selectColumns(), strings.Join(names, ", "))
	if _, err := s.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("insert %s: %w", s.schema.Table, err)
	}
	return nil
}

// Get 根据ID获取记录
func (s *Store[T, P]) Get(ctx context.Context, id string) (P, error) {
	normalized, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	record := P(new(T))
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", s.schema.selectColumns(), s.schema.Table)
	if err := s.db.GetContext(ctx, record, s.db.Rebind(query), normalized); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", s.schema.Table, err)
	}
	return record, nil
}

// List 分页查询，总数和当前页分两次查询，并发写入时两者可能不一致
func (s *Store[T, P]) List(ctx context.Context, q ListQuery) (*model.Page[T], error) {
	q = q.Normalize(s.schema.DefaultLimit)

	column := s.schema.DefaultSort
	if q.Sort != "" {
		c, ok := s.schema.SortKeys[q.Sort]
		if !ok {
			return nil, apperror.MalformedInput(constants.ErrInvalidSort)
		}
		column = c
	}
	direction := "DESC"
	if q.Ascending {
		direction = "ASC"
	}

	where, args := s.whereClause(q.Filters)

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", s.schema.Table, where)
	if err := s.db.GetContext(ctx, &total, s.db.Rebind(countQuery), args...); err != nil {
		return nil, fmt.Errorf("count %s: %w", s.schema.Table, err)
	}

	items := make([]T, 0)
	listQuery := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s, id %s LIMIT ? OFFSET ?",
		s.schema.selectColumns(), s.schema.Table, where, column, direction, direction)
	if err := s.db.SelectContext(ctx, &items, s.db.Rebind(listQuery), append(args, q.Limit, q.Skip)...); err != nil {
		return nil, fmt.Errorf("list %s: %w", s.schema.Table, err)
	}

	return &model.Page[T]{Items: items, Total: total}, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func (s *Store[T, P]) whereClause(filters map[string]string) (string, []interface{}) {
	keys := make([]string, 0, len(filters))
	for k, v := range filters {
		if _, ok := s.schema.Filters[k]; ok && v != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", nil
	}
	sort.Strings(keys)

	conds := make([]string, 0, len(keys))
	args := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		f := s.schema.Filters[k]
		switch f.Match {
		case MatchContains:
			conds = append(conds, fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '!'", f.Column))
			args = append(args, "%"+likeEscaper.Replace(strings.ToLower(filters[k]))+"%")
		default:
			conds = append(conds, f.Column+" = ?")
			args = append(args, filters[k])
		}
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Update 覆盖记录的内容字段并设置更新时间，created_at 不变
func (s *Store[T, P]) Update(ctx context.Context, record P) error {
	meta := record.Meta()
	normalized, err := ParseID(meta.ID)
	if err != nil {
		return err
	}
	meta.ID = normalized

	if sl, ok := any(record).(model.Sluggable); ok {
		sl.SetSlug(utils.Slugify(sl.SlugSource()))
	}
	now := model.NewTimestamp(s.now())
	meta.UpdatedAt = &now

	sets := make([]string, 0, len(s.schema.Columns)+1)
	for _, c := range s.schema.Columns {
		sets = append(sets, c+" = :"+c)
	}
	sets = append(sets, "updated_at = :updated_at")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", s.schema.Table, strings.Join(sets, ", "))

	result, err := s.db.NamedExecContext(ctx, query, record)
	if err != nil {
		return fmt.Errorf("update %s: %w", s.schema.Table, err)
	}
	return requireAffected(result)
}

// Delete 删除记录
func (s *Store[T, P]) Delete(ctx context.Context, id string) error {
	normalized, err := ParseID(id)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", s.schema.Table)
	result, err := s.db.ExecContext(ctx, s.db.Rebind(query), normalized)
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.schema.Table, err)
	}
	return requireAffected(result)
}

// FindOne 返回所有列都相等的最新一条记录
func (s *Store[T, P]) FindOne(ctx context.Context, equals map[string]interface{}) (P, error) {
	where, args, err := s.equalityClause(equals, " AND ")
	if err != nil {
		return nil, err
	}
	return s.findFirst(ctx, where, args)
}

// FindFirstAny 返回任一列等于 value 的最新一条记录
func (s *Store[T, P]) FindFirstAny(ctx context.Context, columns []string, value interface{}) (P, error) {
	equals := make(map[string]interface{}, len(columns))
	for _, c := range columns {
		equals[c] = value
	}
	where, args, err := s.equalityClause(equals, " OR ")
	if err != nil {
		return nil, err
	}
	return s.findFirst(ctx, where, args)
}

// Count 统计所有列都相等的记录数，equals 为空时统计全部
func (s *Store[T, P]) Count(ctx context.Context, equals map[string]interface{}) (int64, error) {
	where, args, err := s.equalityClause(equals, " AND ")
	if err != nil {
		return 0, err
	}
	var total int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", s.schema.Table, where)
	if err := s.db.GetContext(ctx, &total, s.db.Rebind(query), args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", s.schema.Table, err)
	}
	return total, nil
}

func (s *Store[T, P]) findFirst(ctx context.Context, where string, args []interface{}) (P, error) {
	record := P(new(T))
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY created_at DESC, id DESC LIMIT 1",
		s.schema.selectColumns(), s.schema.Table, where)
	if err := s.db.GetContext(ctx, record, s.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", s.schema.Table, err)
	}
	return record, nil
}

func (s *Store[T, P]) equalityClause(equals map[string]interface{}, sep string) (string, []interface{}, error) {
	if len(equals) == 0 {
		return "", nil, nil
	}
	columns := make([]string, 0, len(equals))
	for c := range equals {
		if !s.schema.hasColumn(c) {
			return "", nil, fmt.Errorf("unknown column %q on %s", c, s.schema.Table)
		}
		columns = append(columns, c)
	}
	sort.Strings(columns)

	conds := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, c := range columns {
		conds = append(conds, c+" = ?")
		args = append(args, equals[c])
	}
	return " WHERE " + strings.Join(conds, sep), args, nil
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
