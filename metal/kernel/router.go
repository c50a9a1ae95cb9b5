package kernel

import (
	baseHttp "net/http"

	"github.com/rmourey26/resendit-asset-intel-website-blog/database"
	"github.com/rmourey26/resendit-asset-intel-website-blog/database/repository"
	"github.com/rmourey26/resendit-asset-intel-website-blog/handler"
	"github.com/rmourey26/resendit-asset-intel-website-blog/metal/env"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/auth"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/endpoint"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/mail"
	"github.com/rmourey26/resendit-asset-intel-website-blog/pkg/middleware"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Db       *database.Connection
	Mail     *mail.Service
	Auth     *auth.Provider
}

// GuardedPipelineFor wraps a form endpoint with the per-IP failure limiter.
func (r *Router) GuardedPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.FormGuard.Handle,
		),
	)
}

func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(apiHandler),
	)
}

// Forms wires the four public lead-capture pipelines plus the hosted-auth
// confirmation relay.
func (r *Router) Forms() {
	inquiries := repository.Inquiries{DB: r.Db}
	newsletter := repository.Newsletter{DB: r.Db}
	waitlist := repository.Waitlist{DB: r.Db}

	contact := handler.MakeContactHandler(&inquiries, r.Mail)
	demo := handler.MakeDemoHandler(&inquiries, r.Mail)
	subscribe := handler.MakeNewsletterHandler(&newsletter, r.Mail)
	join := handler.MakeWaitlistHandler(&waitlist, r.Mail, &r.Env.Mail)
	confirmation := handler.MakeConfirmationHandler(r.Auth, &r.Env.App)

	r.Mux.HandleFunc("POST /api/contact", r.GuardedPipelineFor(contact.Handle))
	r.Mux.HandleFunc("POST /api/demo-request", r.GuardedPipelineFor(demo.Handle))
	r.Mux.HandleFunc("POST /api/newsletter", r.GuardedPipelineFor(subscribe.Handle))
	r.Mux.HandleFunc("POST /api/waitlist", r.GuardedPipelineFor(join.Handle))
	r.Mux.HandleFunc("POST /api/auth/send-confirmation", r.GuardedPipelineFor(confirmation.Handle))
}

func (r *Router) Mailer() {
	send := handler.MakeSendHandler(r.Mail)
	test := handler.MakeTestEmailHandler(r.Mail, r.Env)

	r.Mux.HandleFunc("POST /api/send", r.PipelineFor(send.Handle))
	r.Mux.HandleFunc("POST /api/test-email", r.PipelineFor(test.Handle))
	r.Mux.HandleFunc("GET /api/test-email", r.PipelineFor(test.Usage))
}

func (r *Router) Posts() {
	posts := repository.Posts{DB: r.Db}
	categories := repository.Categories{DB: r.Db}
	tags := repository.Tags{DB: r.Db}

	public := handler.MakePostsHandler(&posts)
	admin := handler.MakeAdminPostsHandler(&posts, &categories, &tags)

	r.Mux.HandleFunc("GET /api/posts", r.PipelineFor(public.Index))
	r.Mux.HandleFunc("GET /api/posts/{slug}", r.PipelineFor(public.Show))

	r.Mux.HandleFunc("POST /api/admin/posts", r.PipelineFor(admin.Store))
	r.Mux.HandleFunc("PUT /api/admin/posts/{uuid}", r.PipelineFor(admin.Update))
	r.Mux.HandleFunc("DELETE /api/admin/posts/{uuid}", r.PipelineFor(admin.Delete))
}

func (r *Router) Taxonomy() {
	categories := repository.Categories{DB: r.Db}
	tags := repository.Tags{DB: r.Db}

	abstract := handler.MakeTaxonomyHandler(&categories, &tags)

	r.Mux.HandleFunc("GET /api/categories", r.PipelineFor(abstract.IndexCategories))

	r.Mux.HandleFunc("POST /api/admin/categories", r.PipelineFor(abstract.StoreCategory))
	r.Mux.HandleFunc("DELETE /api/admin/categories/{uuid}", r.PipelineFor(abstract.DeleteCategory))
	r.Mux.HandleFunc("POST /api/admin/tags", r.PipelineFor(abstract.StoreTag))
	r.Mux.HandleFunc("DELETE /api/admin/tags/{uuid}", r.PipelineFor(abstract.DeleteTag))
}

func (r *Router) Ping() {
	abstract := handler.MakePingHandler(r.Db)

	r.Mux.HandleFunc("GET /ping", r.PipelineFor(abstract.Handle))
}

func (r *Router) Metrics() {
	abstract := handler.MakeMetricsHandler()

	r.Mux.Handle("GET /metrics", abstract)
}
