package csrftest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/chi/v5"
)

// Routes returns a chi router with the backend's demo endpoints, all behind
// Protect:
//   - GET  /csrf-token  the current token as text/plain
//   - GET  /            greeting, sets the cookie on first visit
//   - any  /echo        echoes the method and the received token header
//   - POST /transfer    201 "ok" once the check passed
func (b *Backend) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(b.Protect)

	r.Get("/csrf-token", b.TokenHandler().ServeHTTP)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Hello!")
	})
	r.HandleFunc("/echo", b.echo)
	r.Post("/transfer", func(w http.ResponseWriter, r *http.Request) {
		// se chegou aqui, token bateu
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("ok"))
	})
	return r
}

func (b *Backend) echo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "%s %s", r.Method, r.Header.Get(b.cfg.HeaderName))
}

// GinMiddleware adapts Protect to Gin.
func (b *Backend) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		passed := false
		h := b.Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// keep gin context in sync with possibly modified *http.Request
			c.Request = r
			passed = true
			c.Next()
		}))
		h.ServeHTTP(c.Writer, c.Request)
		if !passed {
			c.Abort()
		}
	}
}

// GinRoutes mounts the same endpoints as Routes on a gin engine.
func (b *Backend) GinRoutes(r *gin.Engine) {
	app := r.Group("/")
	app.Use(b.GinMiddleware())

	app.GET("/csrf-token", gin.WrapH(b.TokenHandler()))
	app.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello!")
	})
	app.Any("/echo", func(c *gin.Context) {
		b.echo(c.Writer, c.Request)
	})
	app.POST("/transfer", func(c *gin.Context) {
		c.String(http.StatusCreated, "ok")
	})
}
