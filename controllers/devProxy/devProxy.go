package devProxy

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
)

// Proxy forwards the request to the frontend dev server at host.
func Proxy(host string) (gin.HandlerFunc, error) {
	target, err := url.Parse(host)
	if err != nil {
		return nil, err
	}
	proxy := httputil.NewSingleHostReverseProxy(target)
	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}, nil
}

// Static serves the built frontend from dir.
func Static(dir string) gin.HandlerFunc {
	return gin.WrapH(http.FileServer(http.Dir(dir)))
}
