package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VANSHIKA-2727/portfolio/internal/assets"
	"github.com/VANSHIKA-2727/portfolio/internal/contact"
	"github.com/VANSHIKA-2727/portfolio/internal/shell"
)

// FormExpired is shown when a form outlived the registry's TTL.
const FormExpired = "This form has expired. Please send your message again."

type indexData struct {
	Page    shell.Page
	Contact contactView
}

type contactView struct {
	FormID   string
	Snapshot contact.Snapshot
	Ack      string
}

func newContactView(id string, snap contact.Snapshot) contactView {
	return contactView{FormID: id, Snapshot: snap, Ack: contact.Acknowledgment}
}

// index renders the whole page with a freshly minted contact form.
func (s *Server) index(c *gin.Context) {
	err := shell.Mounted(shell.New(s.content), shell.NewViewport(), func(sh *shell.Shell) error {
		c.HTML(http.StatusOK, "index.html", indexData{
			Page:    sh.View(),
			Contact: newContactView(s.forms.Mint(), contact.Snapshot{}),
		})
		return nil
	})
	if err != nil {
		s.log.Error("render page", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal error")
	}
}

type navQuery struct {
	Scroll int    `form:"scroll"`
	Open   bool   `form:"open"`
	Action string `form:"action"`
	Anchor string `form:"anchor"`
}

var errUnknownAction = errors.New("unknown nav action")

// nav replays the browser's navigation events on a fresh shell and returns
// the resulting <nav> fragment.
func (s *Server) nav(c *gin.Context) {
	var q navQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.String(http.StatusBadRequest, "bad navigation state")
		return
	}

	vp := shell.NewViewport()
	err := shell.Mounted(shell.New(s.content), vp, func(sh *shell.Shell) error {
		vp.Scroll(q.Scroll)
		if q.Open {
			sh.ToggleMenu()
		}

		switch q.Action {
		case "":
		case "toggle":
			sh.ToggleMenu()
		case "select":
			if err := sh.SelectAnchor(q.Anchor); err != nil {
				s.log.Debug("menu anchor", zap.Error(err))
			}
		default:
			return errUnknownAction
		}

		c.HTML(http.StatusOK, "nav.html", sh.View().Nav)
		return nil
	})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
	}
}

type contactForm struct {
	FormID  string `form:"form_id"`
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// submitContact hands the form to its controller and renders the outcome.
func (s *Server) submitContact(c *gin.Context) {
	var f contactForm
	if err := c.ShouldBind(&f); err != nil {
		c.String(http.StatusBadRequest, "bad form submission")
		return
	}

	ctrl, err := s.forms.Get(f.FormID)
	switch {
	case errors.Is(err, contact.ErrUnknownForm):
		// Expired or never rendered: hand out a fresh form with the values kept.
		c.HTML(http.StatusOK, "contact.html", newContactView(s.forms.Mint(), contact.Snapshot{
			Errors: contact.FieldErrors{contact.FormErrorKey: {FormExpired}},
			Values: contact.Fields{Name: f.Name, Email: f.Email, Subject: f.Subject, Message: f.Message},
		}))
		return
	case err != nil:
		c.String(http.StatusBadRequest, "bad form id, please reload the page")
		return
	}

	// The outbound call is not tied to this request: a closed tab must not
	// leave the form half-sent.
	ctx := context.WithoutCancel(c.Request.Context())
	snap, err := ctrl.Submit(ctx, contact.Fields{
		Name:    f.Name,
		Email:   f.Email,
		Subject: f.Subject,
		Message: f.Message,
	})

	status := http.StatusOK
	var missing *contact.MissingFieldsError
	switch {
	case errors.Is(err, contact.ErrInFlight):
		// htmx does not swap 4xx responses, so the page keeps the form the
		// first request disabled; its own response replaces it.
		status = http.StatusConflict
	case errors.Is(err, contact.ErrAlreadySent):
	case errors.As(err, &missing):
		snap.Errors = missing.FieldErrors()
	case err != nil:
		s.log.Warn("contact form not delivered",
			zap.String("form_id", f.FormID),
			zap.Error(err),
		)
	case snap.Sent():
		fields := []zap.Field{zap.String("form_id", f.FormID)}
		if client, ok := s.privacy.client(c); ok {
			fields = append(fields, zap.String("client", client))
		}
		s.log.Info("contact form sent", fields...)
	default:
		s.log.Info("contact form rejected",
			zap.String("form_id", f.FormID),
			zap.Int("fields", len(snap.Errors)),
		)
	}

	c.HTML(status, "contact.html", newContactView(f.FormID, snap))
}

// resume sends the browser to the hosted CV. There is no feedback path.
func (s *Server) resume(c *gin.Context) {
	c.Redirect(http.StatusFound, s.content.Resume.URL)
}

func (s *Server) notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{
		"Brand":      s.content.Owner.Brand,
		"Stylesheet": assets.Stylesheet,
		"Path":       c.Request.URL.Path,
	})
}
