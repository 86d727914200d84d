package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/VANSHIKA-2727/portfolio/internal/contact"
	"github.com/VANSHIKA-2727/portfolio/internal/formspree"
	"github.com/VANSHIKA-2727/portfolio/internal/tui"
	"github.com/VANSHIKA-2727/portfolio/internal/web"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	pageContent, err := loadContent(cfg)
	if err != nil {
		return err
	}

	gin.SetMode(ginMode(cfg))

	submitter := formspree.New(cfg.FormspreeEndpoint, cfg.FormID, cfg.SubmitTimeout)
	forms := contact.NewRegistry(submitter, cfg.FormTTL)

	srv, err := web.New(web.Options{
		Content: pageContent,
		Forms:   forms,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return forms.Run(ctx, cfg.FormTTL/2)
	})
	return g.Wait()
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	pageContent, err := loadContent(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "config ok (port %s, form %s)\n", cfg.Port, cfg.FormID)
	fmt.Fprintf(cmd.OutOrStdout(), "content ok (%d sections, %d projects, %d skills)\n",
		len(pageContent.Sections), len(pageContent.Projects), len(pageContent.Skills))
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	pageContent, err := loadContent(cfg)
	if err != nil {
		return err
	}
	return tui.Run(pageContent)
}
