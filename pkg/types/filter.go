package types

// Filter описывает параметры списковых запросов: поиск, фасеты, сортировка
// и пагинация. Разбирается из query-строки в pkg/utils.
type Filter struct {
	Search         string                 `json:"search,omitempty"`
	Sort           map[string]string      `json:"sort,omitempty"`
	Filter         map[string]interface{} `json:"filter,omitempty"`
	Limit          int                    `json:"limit"`
	Offset         int                    `json:"offset"`
	Page           int                    `json:"page"`
	WithPagination bool                   `json:"with_pagination"`
}

type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

// Пример: /api/equipment?search=осциллограф&sort[name]=asc&filter[category]=electronics&limit=20&withPagination=true
