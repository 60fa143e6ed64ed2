// Package zabbix reports send results to a Zabbix server with zabbix_sender.
package zabbix

import (
	"context"
	"os/exec"
)

// Sender pushes item values for one monitored host.
type Sender struct {
	Server string `yaml:"server"`
	Host   string `yaml:"host"`           // monitored host name
	Path   string `yaml:"path,omitempty"` // zabbix_sender by default
}

// Send reports one value. A nil Sender or one without a server does nothing.
func (z *Sender) Send(ctx context.Context, key, value string) error {
	if z == nil || z.Server == "" {
		return nil
	}
	return z.command(ctx, key, value).Run()
}

func (z *Sender) command(ctx context.Context, key, value string) *exec.Cmd {
	path := z.Path
	if path == "" {
		path = "zabbix_sender"
	}
	return exec.CommandContext(ctx, path,
		"-z", z.Server,
		"-s", z.Host,
		"-k", key,
		"-o", value)
}
