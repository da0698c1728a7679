package errorreport

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"websubmit/portal/internal/config"
	"websubmit/portal/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Registrar logs failures that do not abort the current step and, when
// alerting is on, reports them to the administrators.
type Registrar struct {
	sender Sender
	alert  bool
	now    func() time.Time
}

func NewRegistrar(cfg config.ErrorReportConfig, sender Sender) *Registrar {
	return &Registrar{
		sender: sender,
		alert:  cfg.AlertAdmin,
		now:    time.Now,
	}
}

func (r *Registrar) Register(ctx context.Context, prefix string, err error) {
	log.WithError(err).Error("❌ " + prefix)

	if !r.alert || r.sender == nil {
		return
	}

	report := Report{
		Header:    prefix,
		URL:       "URI: " + domain.NotAvailable,
		Time:      "Time: " + r.now().Format("02/Jan/2006:15:04:05 -0700"),
		Client:    "Client: " + domain.NotAvailable,
		SysError:  fmt.Sprintf("\nSystem Error: %T %v\n", err, err),
		Traceback: "\nTraceback: \n" + string(debug.Stack()),
		Referer:   domain.NotAvailable,
	}
	if sendErr := r.sender.Send(ctx, report); sendErr != nil {
		log.Warnf("⚠️ Could not alert administrators: %v", sendErr)
	}
}
