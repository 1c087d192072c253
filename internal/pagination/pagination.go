package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Params carries 1-indexed page parameters. PerPage is clamped to
// [1, MaxPerPage].
type Params struct {
	Page    int
	PerPage int
}

// FromQuery reads page/per_page query parameters, falling back to defaults
// on missing or malformed values.
func FromQuery(c *gin.Context) Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(DefaultPerPage)))
	if err != nil {
		perPage = DefaultPerPage
	}
	return Params{Page: page, PerPage: perPage}.Normalize()
}

func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageInfo describes the position of a page within the full collection.
type PageInfo struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// Page is a paginated slice of items together with its page info.
type Page[T any] struct {
	Items    []T      `json:"items"`
	PageInfo PageInfo `json:"page_info"`
}

// NewPageInfo computes pages = ceil(total/per_page) and the has_next /
// has_prev flags for normalized params.
func NewPageInfo(total int64, p Params) PageInfo {
	pages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	return PageInfo{
		Total:   total,
		Page:    p.Page,
		PerPage: p.PerPage,
		Pages:   pages,
		HasNext: p.Page < pages,
		HasPrev: p.Page > 1,
	}
}

// Paginate counts then fetches one page of a gorm query. The query must
// already carry its filters and ordering.
func Paginate[T any](query *gorm.DB, p Params) (Page[T], error) {
	p = p.Normalize()

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[T]{}, err
	}

	var items []T
	if err := query.Offset(p.Offset()).Limit(p.PerPage).Find(&items).Error; err != nil {
		return Page[T]{}, err
	}
	if items == nil {
		items = []T{}
	}

	return Page[T]{Items: items, PageInfo: NewPageInfo(total, p)}, nil
}
