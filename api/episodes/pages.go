package episodes

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/killallgit/feedcast/api/types"
	"github.com/killallgit/feedcast/internal/feed"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type indexPage struct {
	FeedTitle string
	Episodes  []types.Episode
}

type detailPage struct {
	FeedTitle   string
	Episode     types.Episode
	Description template.HTML
}

// Index renders the list of catalog episodes as links to their detail pages
func Index(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "index", indexPage{
			FeedTitle: deps.FeedTitle,
			Episodes:  collectEpisodes(deps),
		})
	}
}

// Detail renders a single episode with its audio player
func Detail(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			renderNotFound(c, deps)
			return
		}

		ep, ok := deps.Catalog.Get(id)
		if !ok {
			renderNotFound(c, deps)
			return
		}

		render(c, http.StatusOK, "detail", detailPage{
			FeedTitle: deps.FeedTitle,
			Episode:   types.FromFeedEpisode(id, ep),
			// Feed descriptions are HTML fragments from the configured feed
			Description: template.HTML(ep.Description),
		})
	}
}

func renderNotFound(c *gin.Context, deps *types.Dependencies) {
	render(c, http.StatusNotFound, "not_found", indexPage{FeedTitle: deps.FeedTitle})
}

func render(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		log.WithError(err).WithField("template", name).Error("Failed to render page")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

func collectEpisodes(deps *types.Dependencies) []types.Episode {
	if deps == nil {
		return []types.Episode{}
	}
	return lo.Map(deps.Catalog.All(), func(ep feed.Episode, i int) types.Episode {
		return types.FromFeedEpisode(i, ep)
	})
}
