package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parsePage reads the page/limit query parameters, falling back to page
// 1 and the configured default page size.
func parsePage(c *gin.Context, defaultLimit int) (page, limit int) {
	page = 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	limit = defaultLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

// paginated builds the list envelope with absolute next/previous links
// derived from the request URL.
func paginated(c *gin.Context, count int64, page, limit int, results interface{}) gin.H {
	var next, previous *string
	if int64(page*limit) < count {
		next = pageLink(c, page+1)
	}
	if page > 1 {
		previous = pageLink(c, page-1)
	}
	return gin.H{
		"count":    count,
		"next":     next,
		"previous": previous,
		"results":  results,
	}
}

func pageLink(c *gin.Context, page int) *string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
