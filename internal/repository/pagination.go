package repository

import "gorm.io/gorm"

// applyOffsetLimit 应用 skip/take 偏移分页，统一处理非法参数。
func applyOffsetLimit(query *gorm.DB, skip, take int) *gorm.DB {
	if query == nil || take <= 0 {
		return query
	}
	if skip < 0 {
		skip = 0
	}
	return query.Offset(skip).Limit(take)
}
