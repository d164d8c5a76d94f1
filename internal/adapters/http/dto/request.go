package dto

import (
	"net/url"
	"strconv"

	"github.com/dankimjw/portfolio-api/internal/domain"
	"github.com/dankimjw/portfolio-api/internal/platform/config"
)

const (
	msgNonNegative = "must be a non-negative integer"
)

// ParsePage reads ?limit and ?offset. Absent values take the configured
// default limit and offset 0. A limit above the configured maximum is
// rejected rather than clamped.
func ParsePage(q url.Values, cfg config.PaginationConfig) (domain.Page, error) {
	page := domain.Page{Limit: cfg.DefaultLimit}
	fields := make(map[string]string)

	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || (cfg.MaxLimit > 0 && n > cfg.MaxLimit) {
			fields["limit"] = limitMessage(cfg.MaxLimit)
		} else {
			page.Limit = n
		}
	}
	if raw := q.Get("offset"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fields["offset"] = msgNonNegative
		} else {
			page.Offset = n
		}
	}

	if len(fields) > 0 {
		return domain.Page{}, &domain.ValidationError{Fields: fields}
	}
	return page, nil
}

func limitMessage(maxLimit int) string {
	if maxLimit <= 0 {
		return "must be a positive integer"
	}
	return "must be an integer between 1 and " + strconv.Itoa(maxLimit)
}
