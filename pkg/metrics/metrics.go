package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ApplicationsReceived = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "meeraai", Name: "applications_received_total", Help: "Number of job applications accepted for processing."},
	)
	ApplicationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "meeraai", Name: "application_failures_total", Help: "Number of failed job applications by reason."},
		[]string{"reason"},
	)
	MailSendFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "meeraai", Name: "mail_send_failures_total", Help: "Number of failed outbound mail sends."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ApplicationsReceived)
	reg.MustRegister(ApplicationFailures)
	reg.MustRegister(MailSendFailures)
}
