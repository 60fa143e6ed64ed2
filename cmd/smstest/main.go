// Command smstest is a small web page for sending test messages through the
// gateway. Gateway call metrics are served on /metrics.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/ahaeber/smsgw/gateway"
)

var (
	addr           = ":8080"
	configFileName = "smsgw.yaml"
)

func main() {
	flag.StringVar(&addr, "http", addr, "HTTP server address & port")
	flag.StringVar(&configFileName, "config", configFileName, "configuration `fileName`")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warning("Error loading .env")
	}
	config := new(gateway.Config)
	if _, err := os.Stat(configFileName); err == nil {
		if config, err = gateway.LoadConfig(configFileName); err != nil {
			logrus.WithError(err).Fatal("Error loading config")
		}
	}
	if err := config.ApplyEnv(); err != nil {
		logrus.WithError(err).Fatal("Bad environment")
	}
	logger := logrus.StandardLogger().WithField("http", addr)
	config.Logger = logger

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	b, err := config.Builder()
	if err != nil {
		logger.WithError(err).Fatal("Gateway config error")
	}
	client, err := b.WithMetrics(gateway.NewMetrics(reg)).Build()
	if err != nil {
		logger.WithError(err).Fatal("Gateway client error")
	}
	defer client.Close()

	handler := newRouter(&server{client: client, config: config, logger: logger}, reg)
	logger.Info("Starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.WithError(err).Error("Server stopped")
	}
}
