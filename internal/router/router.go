package router

import (
	"net/http"
	"slices"

	"github.com/gemgeek/alx-listing-app-deployed/internal/handler"
	"github.com/gin-gonic/gin"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListProperties(c *ginext.Context)
	GetProperty(c *ginext.Context)
	ListReviews(c *ginext.Context)
	CreateBooking(c *ginext.Context)
}

// verbs a route can be asked for. CORS preflights are answered by the
// middleware before they reach the OPTIONS handler.
var verbs = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Properties
		only(api.RouterGroup, "/properties", http.MethodGet, h.ListProperties)
		only(api.RouterGroup, "/properties/:id", http.MethodGet, h.GetProperty)

		// Reviews
		only(api.RouterGroup, "/properties/:id/reviews", http.MethodGet, h.ListReviews)

		// Bookings
		only(api.RouterGroup, "/bookings", http.MethodPost, h.CreateBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.NoRoute(handler.NotFound)

	return router
}

// only binds fn to method on path and answers every other verb with 405.
func only(r *gin.RouterGroup, path, method string, fn ginext.HandlerFunc) {
	r.Handle(method, path, fn)

	notAllowed := handler.MethodNotAllowed(method)
	for _, v := range verbs {
		if v == method {
			continue
		}
		r.Handle(v, path, notAllowed)
	}
}

// Routes lists the registered method/path pairs, mostly for startup logging.
func Routes(e *ginext.Engine) []string {
	var res []string
	for _, ri := range e.Routes() {
		res = append(res, ri.Method+" "+ri.Path)
	}
	slices.Sort(res)
	return res
}
