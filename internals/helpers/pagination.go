package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListParams carries ?q=&sort=&direction= for the filtered list endpoints.
type ListParams struct {
	Q         string
	Sort      string
	Direction string
}

func ParseListParams(c *fiber.Ctx, defaultSort, defaultDirection string) ListParams {
	p := ListParams{
		Q:         strings.TrimSpace(c.Query("q")),
		Sort:      strings.ToLower(strings.TrimSpace(c.Query("sort"))),
		Direction: strings.ToLower(strings.TrimSpace(firstNonEmpty(c.Query("direction"), c.Query("order")))),
	}
	if p.Sort == "" {
		p.Sort = defaultSort
	}
	if p.Direction != SortAsc && p.Direction != SortDesc {
		p.Direction = defaultDirection
	}
	return p
}

// SafeOrderClause resolves sort against a whitelist of columns. Unknown keys
// fall back to defaultKey. The id column is appended as a tie-breaker.
func SafeOrderClause(allowed map[string]string, sort, direction, defaultKey string) string {
	col, ok := allowed[sort]
	if !ok {
		col = allowed[defaultKey]
	}
	dir := "ASC"
	if strings.EqualFold(direction, SortDesc) {
		dir = "DESC"
	}
	if col == "id" {
		return "id " + dir
	}
	return col + " " + dir + ", id " + dir
}

// Paging is limit/offset read from ?limit=&offset= (or ?page=&per_page=).
type Paging struct {
	Limit  int
	Offset int
}

func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	limit := atoiDefault(firstNonEmpty(c.Query("limit"), c.Query("per_page")), defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	offset := atoiDefault(c.Query("offset"), -1)
	if offset < 0 {
		page := atoiDefault(c.Query("page"), 1)
		if page < 1 {
			page = 1
		}
		offset = (page - 1) * limit
	}
	return Paging{Limit: limit, Offset: offset}
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// LikePattern wraps s as a substring pattern with LIKE wildcards escaped.
func LikePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
