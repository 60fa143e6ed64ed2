package main

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/ahaeber/smsgw/gateway"
	"github.com/ahaeber/smsgw/request"
	"github.com/ahaeber/smsgw/sms"
)

var sendForm = template.Must(template.New("send").Parse(`<!DOCTYPE html>
<meta charset="utf-8">
<form method="POST">
<table>
<tr><td><label>To:</label></td><td><input name="to" value="{{.To}}"></td></tr>
<tr><td valign="top"><label>Message:</label></td><td><textarea name="msg" rows="4" cols="32">{{.Text}}</textarea></td></tr>
<tr><td></td><td><label><input type="checkbox" name="safe" value="1"> GSM only</label></td></tr>
<tr><td></td><td><input type="submit" value="Send"></td></tr>
</table>
</form>
`))

// server sends the form input through one gateway account.
type server struct {
	client *gateway.Client
	config *gateway.Config
	logger *logrus.Entry
}

func newRouter(s *server, reg prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestSize(1 << 16))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/send", http.StatusMovedPermanently)
	})
	r.Get("/send", s.form)
	r.Post("/send", s.send)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

func (s *server) form(w http.ResponseWriter, r *http.Request) {
	sendForm.Execute(w, struct{ To, Text string }{"+4741000000", "Test message"})
}

func (s *server) send(w http.ResponseWriter, r *http.Request) {
	to, text := r.FormValue("to"), r.FormValue("msg")
	logger := s.logger.WithField("to", to)
	b := request.NewSms(to, text).WithAutoDetectEncoding(!sms.IsGSM(text))
	if r.FormValue("safe") != "" {
		b.WithSafeRemoveNonGsmCharacters(true)
	}
	msg, err := b.Build()
	if err != nil {
		logger.WithError(err).Warning("Bad message")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	gw, err := s.config.NewRequest().Build()
	if err != nil {
		logger.WithError(err).Error("Request error")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	gw.AddMessage(msg)

	response, err := s.client.SendContext(r.Context(), gw)
	if err != nil {
		logger.WithError(err).Error("Send SMS error")
		http.Error(w, "Send SMS error: "+err.Error(), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, "<!DOCTYPE html>\n<meta charset=\"utf-8\">\n")
	for _, status := range response.MessageStatus {
		logger.WithFields(logrus.Fields{
			"code":      status.StatusCode,
			"messageId": status.MessageID,
		}).Info("Message status")
		fmt.Fprintf(w, "<p>%s: %d %s</p>\n",
			template.HTMLEscapeString(status.Recipient), status.StatusCode,
			template.HTMLEscapeString(status.StatusMessage))
	}
}
