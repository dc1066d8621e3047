package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"urmonov-web/pkg/config"
	"urmonov-web/pkg/content"
	"urmonov-web/pkg/locale"
)

var (
	fetchLang  string
	fetchField string
	fetchRaw   bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <path>",
	Short: "Fetch a content API endpoint and print its localized fields",
	Example: `  urmonov-web fetch /services/ --lang ru
  urmonov-web fetch /blog/3f2a... --field description --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		l, ok := locale.Parse(fetchLang)
		if !ok {
			return fmt.Errorf("unsupported --lang %q (uz, ru, en)", fetchLang)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		client := content.NewClient(cfg.APIURL, cfg.HTTPTimeout)
		var body any
		if err := client.Get(ctx, endpointPath(args[0]), &body); err != nil {
			return fmt.Errorf("fetch: %w", err)
		}

		if fetchRaw {
			out, _ := json.MarshalIndent(body, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		switch v := body.(type) {
		case []any:
			if len(v) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No records.")
				return nil
			}
			for i, item := range v {
				record, _ := item.(map[string]any)
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, describe(record, l))
			}
		case map[string]any:
			fmt.Fprintln(cmd.OutOrStdout(), describe(v, l))
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", v)
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchLang, "lang", "uz", "locale to print (uz, ru, en)")
	fetchCmd.Flags().StringVar(&fetchField, "field", "title", "localized field name without the _uz/_ru/_en suffix")
	fetchCmd.Flags().BoolVar(&fetchRaw, "raw", false, "print the JSON body as is")
	rootCmd.AddCommand(fetchCmd)
}

func endpointPath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func describe(record map[string]any, l locale.Locale) string {
	text := locale.Field(record, fetchField, l)
	if text == "" {
		text = "(no " + fetchField + ")"
	}
	if id, ok := record["uuid"].(string); ok && id != "" {
		return text + " [" + id + "]"
	}
	return text
}
