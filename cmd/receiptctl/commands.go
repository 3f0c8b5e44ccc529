package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/adapter"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/renderer"
	"github.com/wcpos/woocommerce-pos-receipts/internal/config"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/entity"
	"github.com/wcpos/woocommerce-pos-receipts/internal/domain/enum"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/logger"
	"github.com/wcpos/woocommerce-pos-receipts/pkg/money"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		logLevel string
		log      zerolog.Logger
	)

	rootCmd := &cobra.Command{
		Use:   "receiptctl",
		Short: "Render WooCommerce POS receipts offline",
		Long: `receiptctl converts a canonical receipt payload (JSON) into HTML or a
printer command language, or renders it through a receipt template.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.NewWithWriter(logLevel, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newTransformCmd())
	rootCmd.AddCommand(newRenderCmd(&log))

	return rootCmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range enum.OutputFormats() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

func newTransformCmd() *cobra.Command {
	var (
		format      string
		contextKV   []string
		device      string
		devicesFile string
		output      string
	)

	cmd := &cobra.Command{
		Use:   "transform <payload.json>",
		Short: "Convert a payload to a device command string",
		Example: `  receiptctl transform order.json --format zpl --context print_qr=yes
  receiptctl transform order.json --device counter --devices devices.yaml -o out.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(args[0])
			if err != nil {
				return err
			}

			dc := adapter.DeviceContext{}
			if device != "" {
				profiles, err := config.LoadDeviceProfiles(devicesFile)
				if err != nil {
					return err
				}
				profile, ok := profiles.Lookup(device)
				if !ok {
					return fmt.Errorf("device profile %q not found", device)
				}
				for k, v := range profile.Context {
					dc[k] = v
				}
				if !cmd.Flags().Changed("format") {
					format = profile.Format
				}
			}
			for _, kv := range contextKV {
				key, value, ok := strings.Cut(kv, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid context %q, expected key=value", kv)
				}
				dc[key] = value
			}

			a := adapter.ForID(format, money.Default())
			return writeOutput(cmd, output, a.Transform(payload, dc))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", enum.OutputFormatHTML.String(), "Output format")
	cmd.Flags().StringArrayVarP(&contextKV, "context", "c", nil, "Device context entry key=value (repeatable)")
	cmd.Flags().StringVar(&device, "device", "", "Device profile name")
	cmd.Flags().StringVar(&devicesFile, "devices", "", "Device profiles YAML file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func newRenderCmd(log *zerolog.Logger) *cobra.Command {
	var (
		templateFile string
		engine       string
		tempDir      string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "render <payload.json>",
		Short: "Render a payload through a receipt template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(args[0])
			if err != nil {
				return err
			}

			r := renderer.ForID(engine, renderer.Options{
				TempDir:   tempDir,
				Formatter: money.Default(),
				Logger:    *log,
			})
			tpl := entity.ReceiptTemplate{Engine: engine, FilePath: templateFile}

			var sb strings.Builder
			if err := r.Render(&sb, tpl, nil, payload); err != nil {
				return err
			}
			return writeOutput(cmd, output, sb.String())
		},
	}

	cmd.Flags().StringVarP(&templateFile, "template", "t", "", "Template file")
	cmd.Flags().StringVarP(&engine, "engine", "e", enum.RenderEngineLogicless.String(), "Render engine (logicless or legacy)")
	cmd.Flags().StringVar(&tempDir, "temp-dir", "", "Directory for legacy template temp files")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func readPayload(path string) (entity.ReceiptPayload, error) {
	var payload entity.ReceiptPayload

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return payload, fmt.Errorf("open payload: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode payload: %w", err)
	}
	return payload, nil
}

func writeOutput(cmd *cobra.Command, path, body string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), body)
		return err
	}
	return os.WriteFile(path, []byte(body), 0o644)
}
