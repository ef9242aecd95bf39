package api

import (
	"github.com/folium-app/folium/pkg/internal/cache"
	"github.com/gofiber/fiber/v2"
)

var timelineCache *cache.PageCache

func MapAPIs(app *fiber.App, timeline *cache.PageCache) {
	timelineCache = timeline

	api := app.Group("/api").Name("API")
	{
		api.Get("/timeline", listTimeline)
		api.Get("/feed", loginRequired, listFeed)

		groups := api.Group("/groups").Name("Groups API")
		{
			groups.Get("/", listGroup)
			groups.Get("/:slug/posts", listGroupPosts)
		}

		accounts := api.Group("/accounts").Name("Accounts API")
		{
			accounts.Get("/:name/posts", listAccountPosts)
			accounts.Post("/:name/follow", loginRequired, followAccount)
			accounts.Post("/:name/unfollow", loginRequired, unfollowAccount)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/:postId", getPost)
			posts.Post("/", loginRequired, createPost)
			posts.Put("/:postId", loginRequired, editPost)
			posts.Delete("/:postId", loginRequired, deletePost)
			posts.Post("/:postId/comments", loginRequired, createComment)
		}
	}
}
