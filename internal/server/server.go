// Package server exposes the composed pages over HTTP
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"runtime/debug"
	"time"

	"websubmit/portal/internal/config"
	"websubmit/portal/internal/domain"
	"websubmit/portal/internal/errorreport"
	"websubmit/portal/internal/mailer"
	"websubmit/portal/internal/webstyle"

	log "github.com/sirupsen/logrus"
)

type Server struct {
	composer  *webstyle.Composer
	scheduler mailer.Scheduler
	verbose   int
	http      *http.Server
}

func New(cfg config.ServerConfig, composer *webstyle.Composer, scheduler mailer.Scheduler) *Server {
	s := &Server{
		composer:  composer,
		scheduler: scheduler,
		verbose:   webstyle.VerboseErrors,
	}
	s.http = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routes wrapped in panic recovery
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("POST /error/send", s.handleErrorSend)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return s.recoverer(mux)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("🌐 Listening on %s", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("🛑 Shutting down HTTP server...")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}

func language(r *http.Request) string {
	return r.URL.Query().Get("ln")
}

func writeHTML(w http.ResponseWriter, status int, page template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(page)); err != nil {
		log.Debugf("Failed to write response: %v", err)
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	site := s.composer.Site()
	lang := language(r)
	if lang == "" {
		lang = site.DefaultLanguage
	}
	title := site.LocalName(lang)

	writeHTML(w, http.StatusOK, s.composer.Page(r, pageOptions(lang, title, "search",
		s.composer.NavTrailBox(lang, title, nil, " &gt; ", "", ""), "")))
}

func (s *Server) handleErrorSend(w http.ResponseWriter, r *http.Request) {
	lang := language(r)
	if err := r.ParseForm(); err != nil {
		writeHTML(w, http.StatusBadRequest, s.composer.Page(r, pageOptions(lang, "Error", "", "",
			s.composer.WarningMessage(lang, err.Error()))))
		return
	}

	report := errorreport.FromForm(r.PostForm)
	site := s.composer.Site()

	_, err := s.scheduler.ScheduleSend(r.Context(), domain.Email{
		From:    mailer.FromAddress(site.Name, site.SupportEmail),
		To:      []string{site.AdminEmail},
		Subject: report.Subject(),
		Body:    report.Body(),
	})
	if err != nil {
		log.Errorf("❌ Failed to schedule error report: %v", err)
		writeHTML(w, http.StatusInternalServerError, s.composer.Page(r, pageOptions(lang, "Error", "", "",
			s.composer.ErrorPage(lang, "500", false))))
		return
	}

	log.WithField("header", report.Header).Info("📨 Error report forwarded to administrators")

	body := s.composer.WriteWarning(s.composer.Translate(lang, "The error report has been sent."), "", "<p>", "</p>") +
		s.composer.WriteWarning(s.composer.Translate(lang, "Thank you for helping us improve the service."), "", "<p>", "</p>")
	writeHTML(w, http.StatusOK, s.composer.Page(r, pageOptions(lang, "Error Report", "", "", body)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// recoverer turns a panic in a handler into an error box page
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			stack := string(debug.Stack())
			cause, ok := rec.(error)
			if !ok {
				cause = fmt.Errorf("%v", rec)
			}
			log.WithField("uri", r.RequestURI).Errorf("❌ Panic while serving request: %v", cause)

			lang := language(r)
			box := s.composer.ErrorBox(webstyle.ErrorBoxInput{
				Lang:    lang,
				Verbose: s.verbose,
				Request: r,
				Cause:   cause,
				Stack:   stack,
			})
			writeHTML(w, http.StatusInternalServerError, s.composer.Page(r, pageOptions(lang, "Internal Error", "", "",
				s.composer.ErrorPage(lang, "500", false)+box)))
		}()
		next.ServeHTTP(w, r)
	})
}

// pageOptions fills the options shared by every page the server renders
func pageOptions(lang, title, navMenuID string, navTrail, body template.HTML) webstyle.PageOptions {
	return webstyle.PageOptions{
		Lang:        lang,
		Title:       title,
		NavMenuID:   navMenuID,
		NavTrailBox: navTrail,
		Body:        body,
	}
}
