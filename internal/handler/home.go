package handler // service index endpoints

import (
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
)

// Home: GET /
func Home(c echo.Context) error {
	return c.String(http.StatusOK, "Hello Contacts API!")
}

// RouteList: GET /route-list.  One "METHOD PATH" line per registered route.
func RouteList(c echo.Context) error {
	lines := make([]string, 0, len(c.Echo().Routes()))
	seen := make(map[string]bool)
	for _, r := range c.Echo().Routes() {
		// echo registers internal catch-all routes for groups
		if r.Method == echo.RouteNotFound || strings.HasSuffix(r.Path, "*") {
			continue
		}
		l := r.Method + " " + r.Path
		if !seen[l] {
			seen[l] = true
			lines = append(lines, l)
		}
	}
	sort.Strings(lines)
	return c.String(http.StatusOK, "Method Path\n"+strings.Join(lines, "\n")+"\n")
}
