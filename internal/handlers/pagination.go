package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// pageLimit lê os parâmetros "page" e "limit" com os defaults da API.
func pageLimit(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit"))
	switch {
	case limit > MaxLimit:
		limit = MaxLimit
	case limit <= 0:
		limit = DefaultLimit
	}
	return page, limit
}

// Paginate é um scope GORM que aplica offset e limit a partir dos parâmetros
// "page" e "limit" da requisição. offset = (page-1)*limit.
func Paginate(c *gin.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, limit := pageLimit(c)
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
