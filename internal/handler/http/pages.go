package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notice-web/internal/adapter"
	"github.com/MKhiriev/go-notice-web/internal/app"
	"github.com/MKhiriev/go-notice-web/internal/environment"
	"github.com/MKhiriev/go-notice-web/internal/logger"
	"github.com/MKhiriev/go-notice-web/internal/service"
	"github.com/MKhiriev/go-notice-web/models"
)

// Form fields of the webhook registration form. The reCAPTCHA widget posts
// its token as g-recaptcha-response.
const (
	formFieldURL            = "url"
	formFieldRecaptcha      = "g-recaptcha-response"
	formFieldRecaptchaToken = "recaptchaToken"
)

const (
	titleHome    = "홈"
	titleNotices = "입법예고"
)

type layoutData struct {
	Title string
	Env   environment.Resolved
	App   service.AppInfo
}

type webhookForm struct {
	URL     string
	Message string
	Success bool
}

type homePageData struct {
	layoutData
	service.HomeData
	Form webhookForm
}

type noticesPageData struct {
	layoutData
	service.NoticesData
}

func (h *Handler) homePage(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, http.StatusOK, webhookForm{})
}

func (h *Handler) noticesPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := noticesPageData{
		layoutData:  h.layout(r, titleNotices),
		NoticesData: h.services.PageService.LoadNotices(ctx),
	}
	h.render(w, r, http.StatusOK, pageNotices, data)
}

// registerWebhook handles the form on the home page and re-renders the page
// with the outcome. Invalid input never reaches the backend.
func (h *Handler) registerWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("failed to parse webhook form")
		h.renderHome(w, r, http.StatusBadRequest, webhookForm{Message: app.MsgBadRequest})
		return
	}

	req := models.WebhookRegistrationRequest{
		URL:            r.PostFormValue(formFieldURL),
		RecaptchaToken: r.PostFormValue(formFieldRecaptcha),
	}
	if req.RecaptchaToken == "" {
		req.RecaptchaToken = r.PostFormValue(formFieldRecaptchaToken)
	}

	result, err := h.services.WebhookService.Register(r.Context(), req)
	if err != nil {
		status := statusFromError(err)
		log.Warn().Err(err).Int("status", status).Msg("webhook registration failed")
		h.renderHome(w, r, status, webhookForm{
			URL:     req.URL,
			Message: adapter.Normalize(err).Message,
		})
		return
	}

	h.renderHome(w, r, http.StatusOK, webhookForm{Message: result.Message, Success: true})
}

func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, status int, form webhookForm) {
	data := homePageData{
		layoutData: h.layout(r, titleHome),
		HomeData:   h.services.PageService.LoadHome(r.Context()),
		Form:       form,
	}
	h.render(w, r, status, pageHome, data)
}

// layout prefers the configuration resolved by withBootstrap, so the page
// and its window.__ENV__ always agree.
func (h *Handler) layout(r *http.Request, title string) layoutData {
	env, ok := environment.FromContext(r.Context())
	if !ok {
		env = h.resolver.Resolve()
	}

	return layoutData{
		Title: title,
		Env:   env,
		App:   h.services.AppInfoService.GetAppInfo(r.Context()),
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	err := h.pages.render(w, status, page, data)
	if err == nil {
		return
	}

	logger.FromRequest(r).Err(err).Str("page", page).Msg("failed to render page")
	if errors.Is(err, ErrRenderingTemplate) || errors.Is(err, ErrUnknownPage) {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
