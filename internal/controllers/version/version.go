// Package version serves the build information of the running binary.
package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/fintrack-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version" example:"1.1.0"`      // Release of the fintrack backend
	GoVersion string `json:"goVersion" example:"go1.25.5"` // Go release the binary was built with
	Revision  string `json:"revision" example:"3f1c2a9e"`  // VCS revision. Empty when built outside of a repository
	Modified  bool   `json:"modified" example:"false"`     // Was the working tree dirty at build time?
}

// Of returns the build information for a release, completed from the
// metadata the Go toolchain embeds into the binary.
func Of(release string) Info {
	info := Info{
		Version:   release,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}

	return info
}

type Response struct {
	Data Info `json:"data"` // Build information
}

type controller struct {
	info Info
}

// RegisterRoutes registers the version endpoint. It always responds
// with the Info passed in.
func RegisterRoutes(r *gin.RouterGroup, info Info) {
	c := controller{info: info}

	r.GET("", c.Get)
	r.OPTIONS("", c.Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func (controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the release of the backend and the toolchain it was built with
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func (ctrl controller) Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: ctrl.info})
}
