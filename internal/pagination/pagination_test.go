package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type widget struct {
	ID   uint `gorm:"primarykey"`
	Name string
}

func newTestDB(t *testing.T, rows int) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	for i := 0; i < rows; i++ {
		require.NoError(t, db.Create(&widget{Name: fmt.Sprintf("w%d", i)}).Error)
	}
	return db
}

func TestNormalizeClampsParams(t *testing.T) {
	p := Params{Page: 0, PerPage: 0}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)

	p = Params{Page: 3, PerPage: 500}.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxPerPage, p.PerPage)
}

func TestNewPageInfoCeiling(t *testing.T) {
	info := NewPageInfo(25, Params{Page: 2, PerPage: 10})
	assert.Equal(t, 3, info.Pages)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrev)

	info = NewPageInfo(30, Params{Page: 3, PerPage: 10})
	assert.Equal(t, 3, info.Pages)
	assert.False(t, info.HasNext)

	info = NewPageInfo(0, Params{Page: 1, PerPage: 10})
	assert.Equal(t, 0, info.Pages)
	assert.False(t, info.HasNext)
	assert.False(t, info.HasPrev)
}

func TestPaginate(t *testing.T) {
	db := newTestDB(t, 25)

	page, err := Paginate[widget](db.Model(&widget{}).Order("id asc"), Params{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.EqualValues(t, 25, page.PageInfo.Total)
	assert.Equal(t, 3, page.PageInfo.Pages)
	assert.False(t, page.PageInfo.HasNext)
	assert.True(t, page.PageInfo.HasPrev)
	assert.Equal(t, "w20", page.Items[0].Name)
}

func TestPaginateBeyondLastPageReturnsEmpty(t *testing.T) {
	db := newTestDB(t, 5)

	page, err := Paginate[widget](db.Model(&widget{}).Order("id asc"), Params{Page: 9, PerPage: 10})
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 5, page.PageInfo.Total)
}

func TestPaginateItemsNeverExceedPerPage(t *testing.T) {
	db := newTestDB(t, 25)

	for pageNum := 1; pageNum <= 4; pageNum++ {
		page, err := Paginate[widget](db.Model(&widget{}).Order("id asc"), Params{Page: pageNum, PerPage: 7})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(page.Items), 7)
	}
}
