// Command smsgw sends one message through the SMS gateway.
//
//	smsgw -config smsgw.yaml -to +4741000000 -text "Hello"
//
// Credentials may come from SMSGW_* environment variables or a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ahaeber/smsgw/gateway"
	"github.com/ahaeber/smsgw/request"
	"github.com/ahaeber/smsgw/sms"
	"github.com/ahaeber/smsgw/zabbix"
)

var (
	appName        = "SMSGW"
	version        = "1.0.0"
	build          = "" // git revision, set by the linker
	configFileName = "smsgw.yaml"
	recipient      string
	content        string
	reference      string
	debug          = false
	logFileName    string
	safe           = false
	useJSON        = false
)

// appConfig is the CLI configuration file: a gateway account plus the
// reporting options.
type appConfig struct {
	gateway.Config `yaml:",inline"`
	Zabbix         *zabbix.Sender `yaml:"zabbix,omitempty"`
	LogFile        string         `yaml:"logFile,omitempty"`
}

func init() {
	fmt.Fprintf(os.Stderr, "### %s %s", appName, version)
	if build != "" {
		fmt.Fprintf(os.Stderr, " [#%s]", build)
	}
	fmt.Fprintln(os.Stderr)

	flag.StringVar(&configFileName, "config", configFileName, "configuration `fileName`")
	flag.StringVar(&recipient, "to", "", "recipient `phone` number")
	flag.StringVar(&content, "text", "", "message `text`")
	flag.StringVar(&reference, "ref", "", "client `reference`, generated when empty")
	flag.BoolVar(&debug, "debug", debug, "log requests and print the full response")
	flag.StringVar(&logFileName, "log", "", "also write the log to `fileName`")
	flag.BoolVar(&safe, "safe", safe, "remove characters outside the GSM alphabet")
	flag.BoolVar(&useJSON, "json", useJSON, "send as application/json")
	flag.Parse()
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warning("Error loading .env")
	}
	config, err := loadConfig(configFileName)
	if err != nil {
		logrus.WithError(err).Fatal("Error loading config")
	}
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if logFileName == "" {
		logFileName = config.LogFile
	}
	if logFileName != "" {
		logrus.AddHook(lfshook.NewHook(logFileName, new(logrus.JSONFormatter)))
	}
	if recipient == "" || content == "" {
		flag.Usage()
		os.Exit(2)
	}
	if useJSON {
		config.MediaType = gateway.MediaTypeJSON
	}
	logger := logrus.StandardLogger().WithField("app", appName)
	config.Logger = logger

	client, err := config.NewClient()
	if err != nil {
		logger.WithError(err).Fatal("Gateway client error")
	}
	defer client.Close()

	gw, err := config.NewRequest().WithBatchReference(uuid.NewString()).Build()
	if err != nil {
		logger.WithError(err).Fatal("Request error")
	}
	msg, err := newMessage(logger)
	if err != nil {
		logger.WithError(err).Fatal("Message error")
	}
	gw.AddMessage(msg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	response, err := client.SendContext(ctx, gw)
	if err != nil {
		report(ctx, config.Zabbix, logger, 0, 1)
		logger.WithError(err).Fatal("Send error")
	}
	if debug {
		pretty.Println(response)
	}
	failed := response.Failed()
	report(ctx, config.Zabbix, logger, len(response.MessageStatus)-len(failed), len(failed))
	for _, status := range failed {
		logger.WithFields(logrus.Fields{
			"recipient": status.Recipient,
			"code":      status.StatusCode,
		}).Error(status.StatusMessage)
	}
	if len(failed) > 0 {
		os.Exit(1)
	}
	for _, status := range response.MessageStatus {
		fmt.Println(status.MessageID)
	}
}

func loadConfig(filename string) (*appConfig, error) {
	config := new(appConfig)
	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// environment only
	default:
		return nil, err
	}
	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// newMessage builds the message from the flags and warns about the parts
// it will be split into.
func newMessage(logger *logrus.Entry) (request.Sms, error) {
	text := content
	if safe {
		text = sms.Sanitize(text)
	}
	coding := sms.Detect(text)
	if parts := sms.Parts(text); parts > 1 || coding != sms.GSM7 {
		logger.WithFields(logrus.Fields{
			"coding": coding,
			"parts":  parts,
		}).Warning("Message is not a single GSM part")
	}
	if reference == "" {
		reference = uuid.NewString()
	}
	b := request.NewSms(recipient, text).
		WithClientReference(reference).
		WithAutoDetectEncoding(coding != sms.GSM7)
	if safe {
		b.WithSafeRemoveNonGsmCharacters(true)
	}
	return b.Build()
}

func report(ctx context.Context, z *zabbix.Sender, logger *logrus.Entry, sent, failed int) {
	for key, value := range map[string]int{"smsgw.sent": sent, "smsgw.failed": failed} {
		if err := z.Send(ctx, key, strconv.Itoa(value)); err != nil {
			logger.WithError(err).Warning("Zabbix error")
		}
	}
}
