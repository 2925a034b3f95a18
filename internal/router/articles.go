package router

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pagekit-go/pagekit/internal/apperr"
	"github.com/pagekit-go/pagekit/internal/domain"
	"github.com/pagekit-go/pagekit/internal/dto"
	"github.com/pagekit-go/pagekit/internal/storage"
	"github.com/pagekit-go/pagekit/pkg/pagedlist"
)

type ArticlesRouter struct {
	e      *echo.Echo
	reader storage.Reader
}

func NewArticlesRouter(e *echo.Echo, reader storage.Reader) *ArticlesRouter {
	return &ArticlesRouter{
		e:      e,
		reader: reader,
	}
}

func (r *ArticlesRouter) Bind() {
	r.e.GET("/articles", r.listHandler)
	r.e.GET("/articles/all", r.listAllHandler)
}

// listHandler godoc
// @Summary Browse the article collection one page at a time
// @Param page query int false "page number, out-of-range values are clamped"
// @Param size query int false "page size"
// @Success 200 {object} dto.ArticlePage
// @Router /articles [get]
func (r *ArticlesRouter) listHandler(c echo.Context) error {
	// Unparseable or out-of-range page numbers are tolerated: the list
	// clamps them to a real page. Only the page size is validated.
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}

	size := pagedlist.PageDefaultSize
	if raw := c.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apperr.NewValidation("size must be an integer")
		}
		size = pagedlist.ClampSize(parsed)
	}

	list, err := pagedlist.FromSource[domain.Article](c.Request().Context(), r.reader, page, size)
	if err != nil {
		return err
	}
	list.SetLocatorResolver(pageLocator(c))

	resp, err := dto.NewArticlePage(list)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// listAllHandler godoc
// @Summary Fetch the whole collection as a single unpaged page
// @Success 200 {object} dto.ArticlePage
// @Router /articles/all [get]
func (r *ArticlesRouter) listAllHandler(c echo.Context) error {
	ctx := c.Request().Context()

	count, err := r.reader.Count(ctx)
	if err != nil {
		return err
	}

	items := make([]domain.Article, 0)
	if count > 0 {
		items, err = r.reader.Slice(ctx, 0, int(count))
		if err != nil {
			return err
		}
	}

	list := pagedlist.FromSingleList(items)
	list.SetLocatorResolver(pageLocator(c))

	resp, err := dto.NewArticlePage(list)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// pageLocator resolves page numbers into request-relative URLs by rewriting
// the page query parameter and keeping everything else intact. The paged
// list stays ignorant of URL shapes; this is the only place that knows them.
func pageLocator(c echo.Context) pagedlist.LocatorResolver {
	return func(page int) string {
		u := *c.Request().URL
		q := u.Query()
		q.Set("page", strconv.Itoa(page))
		u.RawQuery = q.Encode()
		return u.RequestURI()
	}
}
