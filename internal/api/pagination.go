package api

import (
	"net/http"
	"strconv"
)

// parsePagination normalizes limit/offset query params.
// limit=50, offset=0. limit capped at 100, minimum 1.
// offset min 0
func parsePagination(r *http.Request) (int32, int32) {
	l := int32(50)
	o := int32(0)
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			l = int32(n)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			o = int32(n)
		}
	}
	if l > 100 {
		l = 100
	}
	if l < 1 {
		l = 1
	}
	if o < 0 {
		o = 0
	}
	return l, o
}
