package cmd

import (
	"fmt"
	"net/http"
	"time"

	"ccconfig/config/models"
	"ccconfig/internal/probe"
	"ccconfig/internal/utils"

	"github.com/spf13/cobra"
)

func newPingCommand(cli *CLI) *cobra.Command {
	var (
		timeout    time.Duration
		method     string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ping [name]",
		Short: "Test a profile's connectivity",
		Long: `Send a request to a profile's base URL (the active profile by default)
with its auth token and report the status and latency.

A non-success status usually means the base URL does not answer simple
HEAD/GET requests; the API itself may still work for Claude Code.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, profile, err := cli.resolveProfile(args)
			if err != nil {
				return err
			}

			opts := []probe.Option{probe.WithTimeout(timeout), probe.WithMethod(method)}
			if cli.httpClient != nil {
				opts = append(opts, probe.WithHTTPClient(cli.httpClient))
			}

			p := cli.printer(cmd)
			if !outputJSON {
				p.Printf("Testing profile: %s\n", name)
			}

			result, err := probe.New(opts...).Probe(cmd.Context(), name, profile)
			if err != nil {
				return err
			}
			cli.log.Debug().Interface("result", result).Msg("probe finished")

			if outputJSON {
				data, err := models.EncodeJSON(result, "  ")
				if err != nil {
					return err
				}
				p.Println(string(data))
			} else {
				printProbeResult(cli, cmd, result)
			}

			if !result.Reachable {
				return fmt.Errorf("connection failed: %s", result.Error)
			}
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", probe.DefaultTimeout, "request timeout")
	cmd.Flags().StringVarP(&method, "method", "X", http.MethodHead, "request method")
	cmd.Flags().BoolVarP(&outputJSON, "json", "j", false, "JSON output")
	return cmd
}

func printProbeResult(cli *CLI, cmd *cobra.Command, r *probe.Result) {
	p := cli.printer(cmd)

	host := utils.ExtractHost(r.URL)
	if !r.Reachable {
		p.Error("Connection failed: %s", r.Error)
		if host != "" {
			p.KeyValue("Host", host)
		}
		return
	}

	p.Success("Connection successful!")
	p.KeyValue("URL", r.URL)
	p.KeyValue("Host", host)
	p.KeyValue("Method", r.Method)
	p.KeyValue("Status Code", fmt.Sprintf("%d %s", r.StatusCode, r.StatusText))
	p.KeyValue("Response Time", fmt.Sprintf("%dms", r.DurationMs))
	p.KeyValue("Timeout", (time.Duration(r.TimeoutMs) * time.Millisecond).String())

	if !r.Success {
		p.Warn("Server returned a non-success status code (%s)", r.Category)
		p.Info("%s", r.UserMessage)
	}
}
