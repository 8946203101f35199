package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kalambet/vizprefs/internal/config"
	"github.com/kalambet/vizprefs/internal/prefs"
	"github.com/kalambet/vizprefs/internal/vizconfig"
)

// --- prefs ---

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect and edit the stored visualization defaults",
	Long: `Inspect and edit the stored visualization defaults that new sessions start from.

Examples:
  vizprefs prefs show
  vizprefs prefs set background_color ff0000ff
  vizprefs prefs set camera_position "[0.0, 0.0, 2500.0]"
  vizprefs prefs reset show_edges
  vizprefs prefs export --output viz.yaml
  vizprefs prefs import viz.yaml`,
}

// withPrefs opens the configured preferences for the duration of fn.
func withPrefs(fn func(p *prefs.Preferences, namespace string) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	p, err := config.OpenPreferences(cfg)
	if err != nil {
		return err
	}
	defer p.Close()
	return fn(p, cfg.Prefs.Namespace)
}

var prefsShowCmd = &cobra.Command{
	Use:   "show [name...]",
	Short: "Show effective defaults and where they come from",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(func(p *prefs.Preferences, _ string) error {
			return showPrefs(cmd.OutOrStdout(), p, args...)
		})
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Store a new default for a property",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withPrefs(func(p *prefs.Preferences, _ string) error {
			v, err := setPref(p, args[0], args[1])
			if err != nil {
				return err
			}
			text, _ := vizconfig.EncodeValue(v)
			printSuccess("Set %s = %s", args[0], text)
			return nil
		})
	},
}

var prefsResetCmd = &cobra.Command{
	Use:   "reset [name...]",
	Short: "Remove stored defaults so the built-in values apply again",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if !all && len(args) == 0 {
			return fmt.Errorf("name a property or pass --all")
		}
		return withPrefs(func(p *prefs.Preferences, _ string) error {
			n, err := resetPrefs(p, all, args...)
			if err != nil {
				return err
			}
			printSuccess("Reset %d stored default(s)", n)
			return nil
		})
	},
}

var prefsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the effective defaults as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		return withPrefs(func(p *prefs.Preferences, namespace string) error {
			if output == "" {
				return exportPrefs(cmd.OutOrStdout(), p, namespace)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			if err := exportPrefs(f, p, namespace); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			printSuccess("Exported defaults to %s", output)
			return nil
		})
	},
}

var prefsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Store the defaults from a YAML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		return withPrefs(func(p *prefs.Preferences, namespace string) error {
			n, err := importPrefs(f, p, namespace)
			if err != nil {
				return err
			}
			printSuccess("Imported %d default(s) from %s", n, args[0])
			return nil
		})
	},
}

func init() {
	prefsResetCmd.Flags().Bool("all", false, "reset every stored default")
	prefsExportCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")

	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsResetCmd)
	prefsCmd.AddCommand(prefsExportCmd)
	prefsCmd.AddCommand(prefsImportCmd)
}

func showPrefs(w io.Writer, p *prefs.Preferences, names ...string) error {
	store, err := vizconfig.New(p)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = store.Names()
	}

	for _, name := range names {
		v, err := store.Property(name)
		if err != nil {
			return err
		}
		text, err := vizconfig.EncodeValue(v)
		if err != nil {
			return err
		}

		note := "built-in"
		if !vizconfig.Persisted(v.Kind()) {
			note = "session only"
		} else if stored, err := p.Has(vizconfig.PreferenceKey(name)); err != nil {
			return err
		} else if stored {
			note = "stored"
		}
		printProperty(w, name, v.Kind().String(), text, note)
	}
	return nil
}

// setPref decodes text as the property's built-in kind and stores it.
func setPref(p *prefs.Preferences, name, text string) (vizconfig.Value, error) {
	def, ok := vizconfig.DefaultValue(name)
	if !ok {
		return vizconfig.Value{}, &vizconfig.PropertyNotAvailableError{Name: name}
	}
	v, err := vizconfig.DecodeValue(name, def.Kind(), text)
	if err != nil {
		return vizconfig.Value{}, err
	}
	if err := vizconfig.PersistValue(p, name, v); err != nil {
		return vizconfig.Value{}, err
	}
	return v, nil
}

// resetPrefs removes stored defaults and returns how many were present.
// With all set it clears every key belonging to a known property.
func resetPrefs(p *prefs.Preferences, all bool, names ...string) (int, error) {
	var keys []string
	if all {
		stored, err := p.Keys()
		if err != nil {
			return 0, err
		}
		for _, k := range stored {
			if _, ok := vizconfig.PropertyName(k); ok {
				keys = append(keys, k)
			}
		}
	} else {
		for _, name := range names {
			if !vizconfig.Recognized(name) {
				return 0, &vizconfig.PropertyNotAvailableError{Name: name}
			}
			keys = append(keys, vizconfig.PreferenceKey(name))
		}
	}

	removed := 0
	for _, k := range keys {
		ok, err := p.Has(k)
		if err != nil {
			return removed, err
		}
		if !ok {
			continue
		}
		if err := p.Remove(k); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func exportPrefs(w io.Writer, p *prefs.Preferences, namespace string) error {
	store, err := vizconfig.New(p)
	if err != nil {
		return err
	}
	doc, err := vizconfig.Export(store, namespace)
	if err != nil {
		return err
	}
	return doc.Write(w)
}

func importPrefs(r io.Reader, p *prefs.Preferences, namespace string) (int, error) {
	doc, err := vizconfig.ReadDocument(r)
	if err != nil {
		return 0, err
	}
	if doc.Namespace != "" && doc.Namespace != namespace {
		printWarning("document namespace %q differs from %q, importing anyway", doc.Namespace, namespace)
	}
	return doc.Apply(p)
}
