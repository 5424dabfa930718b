// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	unitext "github.com/dolthub/go-unitext"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "unitext",
		Short:         "Locale aware case mapping and ICU regular expressions",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			lvl, err := logrus.ParseLevel(level)
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		caseCmd("lower", "Convert text to lowercase", unitext.ToLower),
		caseCmd("upper", "Convert text to uppercase", unitext.ToUpper),
		caseCmd("title", "Convert text to titlecase", unitext.ToTitle),
		foldCmd(),
		matchCmd(),
		enginesCmd(),
	)
	return rootCmd
}

// forEachInput calls f with every argument, or with every line of the
// command input when there are no arguments.
func forEachInput(cmd *cobra.Command, args []string, f func(string) error) error {
	if len(args) > 0 {
		for _, a := range args {
			if err := f(a); err != nil {
				return err
			}
		}
		return nil
	}

	s := bufio.NewScanner(cmd.InOrStdin())
	for s.Scan() {
		if err := f(s.Text()); err != nil {
			return err
		}
	}
	return s.Err()
}

func caseCmd(name, short string, f func(in, locale string) (string, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " [text...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, _ := cmd.Flags().GetString("locale")
			return forEachInput(cmd, args, func(s string) error {
				res, err := f(s, locale)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res)
				return nil
			})
		},
	}
	cmd.Flags().StringP("locale", "l", "", "locale, e.g. tr_TR or de-DE (default: UNITEXT_DEFAULT_LOCALE or C)")
	return cmd
}

func foldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fold [text...]",
		Short: "Case fold text for caseless comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := unitext.FoldDefault
			if turkic, _ := cmd.Flags().GetBool("turkic"); turkic {
				opts = unitext.FoldTurkic
			}

			return forEachInput(cmd, args, func(s string) error {
				res, err := unitext.FoldCase(s, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res)
				return nil
			})
		},
	}
	cmd.Flags().BoolP("turkic", "t", false, "fold I to dotless ı and İ to i")
	return cmd
}

func matchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match pattern [subject...]",
		Short: "Match subjects against a regular expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _ := cmd.Flags().GetString("engine")
			flagStr, _ := cmd.Flags().GetString("flags")

			flags, err := unitext.ParseRegexFlags(flagStr)
			if err != nil {
				return err
			}

			var re *unitext.Regex
			if engine == "" {
				re, err = unitext.NewRegex(args[0], flags)
			} else {
				re, err = unitext.NewRegexWithEngine(engine, args[0], flags)
			}
			if err != nil {
				return err
			}
			defer re.Close()

			return forEachInput(cmd, args[1:], func(s string) error {
				ok, err := re.Match(s)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", s, ok)
				return nil
			})
		},
	}
	cmd.Flags().StringP("engine", "e", "", "regex engine (default: UNITEXT_REGEX_ENGINE or icu)")
	cmd.Flags().StringP("flags", "f", "", "match flags: i, m, s, x, l, d, w, e")
	return cmd
}

func enginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "List the available regex engines",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, e := range unitext.RegexEngines() {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
		},
	}
}
